package planner_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/occupancy"
	"github.com/katalvlaran/gridnav/planner"
)

// ExamplePlanner_Plan plans across a small camera frame with one dark
// obstacle pixel grown by a one-cell margin.
func ExamplePlanner_Plan() {
	cfg, err := planner.ParseConfig([]byte("inflation_iterations: 1\nalgorithm: astar\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := planner.New(cfg, nil)

	frame := [][]int{
		{255, 255, 255, 255, 255},
		{255, 255, 255, 255, 255},
		{255, 255, 0, 255, 255},
		{255, 255, 255, 255, 255},
		{255, 255, 255, 255, 255},
	}
	plan, err := p.Plan(frame, occupancy.Pos(2, 0), occupancy.Pos(2, 4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("obstacles:", plan.Grid.ObstacleCount())
	fmt.Println("steps:", plan.Result.Steps())
	fmt.Printf("clearance: %.0f\n", plan.Clearance)
	// Output:
	// obstacles: 9
	// steps: 8
	// clearance: 1
}
