package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridnav/gridio"
	"github.com/katalvlaran/gridnav/occupancy"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/worldframe"
)

// defaultWorldSize is the arena side length, in metres, seen by the camera.
const defaultWorldSize = 5.0

type planFlags struct {
	grid       string
	start      string
	goal       string
	startWorld string
	goalWorld  string
	worldSize  float64
	cfg        configFlags
}

func newPlanCmd(a *app) *cobra.Command {
	f := &planFlags{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inflate a grid and search it for a path",
		Long: `Plan reads an intensity grid, inflates its obstacles and searches for a
path between two cells. Endpoints are given either as grid cells (row,col)
or as world coordinates (x,y) relative to the frame centre.

A start or goal that lies outside the grid or on an inflated obstacle is an
error; a goal that simply cannot be reached is reported as "found: false".`,
		Example: `  gridplan plan --grid frame.pgm --start 10,12 --goal 400,380
  gridplan plan --grid frame.png --start-world -1.5,2 --goal-world 1.2,-0.4 -o geojson
  gridplan plan --grid frame.txt --start 0,0 --goal 4,4 --algorithm beam --beam-width 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPlan(cmd, f)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.grid, "grid", "", "Intensity grid file (.txt, .pgm or .png)")
	fs.StringVar(&f.start, "start", "", "Start cell as row,col")
	fs.StringVar(&f.goal, "goal", "", "Goal cell as row,col")
	fs.StringVar(&f.startWorld, "start-world", "", "Start in world coordinates as x,y")
	fs.StringVar(&f.goalWorld, "goal-world", "", "Goal in world coordinates as x,y")
	fs.Float64Var(&f.worldSize, "world-size", defaultWorldSize, "World length spanned by the grid rows")
	f.cfg.register(cmd)

	_ = cmd.MarkFlagRequired("grid")
	cmd.MarkFlagsMutuallyExclusive("start", "start-world")
	cmd.MarkFlagsOneRequired("start", "start-world")
	cmd.MarkFlagsMutuallyExclusive("goal", "goal-world")
	cmd.MarkFlagsOneRequired("goal", "goal-world")
	return cmd
}

func (a *app) runPlan(cmd *cobra.Command, f *planFlags) error {
	raw, err := gridio.ReadFile(f.grid)
	if err != nil {
		return err
	}
	frame, err := worldframe.New(f.worldSize, len(raw), len(raw[0]))
	if err != nil {
		return err
	}
	start, err := endpoint(frame, f.start, f.startWorld)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	goal, err := endpoint(frame, f.goal, f.goalWorld)
	if err != nil {
		return fmt.Errorf("goal: %w", err)
	}

	p, err := planner.New(f.cfg.apply(cmd, a.cfg), a.logger)
	if err != nil {
		return err
	}
	plan, err := p.Plan(raw, start, goal)
	if err != nil {
		return err
	}
	return a.printPlan(cmd.OutOrStdout(), frame, plan)
}

// endpoint resolves a cell given either as "row,col" or as world "x,y".
func endpoint(frame worldframe.Frame, cell, world string) (occupancy.Position, error) {
	if cell != "" {
		return parsePosition(cell)
	}
	pt, err := parsePoint(world)
	if err != nil {
		return occupancy.Position{}, err
	}
	return frame.Locate(pt)
}

// planReport is the yaml view of a Plan.
type planReport struct {
	Algorithm   string   `yaml:"algorithm"`
	Found       bool     `yaml:"found"`
	Reachable   bool     `yaml:"reachable"`
	Steps       int      `yaml:"steps"`
	Cost        float64  `yaml:"cost"`
	CostUnit    string   `yaml:"cost_unit"`
	Expanded    int      `yaml:"expanded"`
	Clearance   float64  `yaml:"clearance"`
	WorldLength float64  `yaml:"world_length"`
	Path        [][2]int `yaml:"path,flow"`
}

func newPlanReport(frame worldframe.Frame, plan *planner.Plan) planReport {
	res := plan.Result
	rep := planReport{
		Algorithm:   res.Algorithm.String(),
		Found:       res.Found,
		Reachable:   plan.Reachable,
		Steps:       res.Steps(),
		Cost:        res.Cost,
		CostUnit:    string(res.CostUnit()),
		Expanded:    res.Expanded,
		Clearance:   plan.Clearance,
		WorldLength: frame.Length(res.Path),
		Path:        make([][2]int, len(res.Path)),
	}
	for i, c := range res.Path {
		rep.Path[i] = [2]int{c.Row, c.Col}
	}
	return rep
}

func (a *app) printPlan(w io.Writer, frame worldframe.Frame, plan *planner.Plan) error {
	rep := newPlanReport(frame, plan)
	switch OutputFormat(a.output) {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()

	case FormatGeoJSON:
		props := map[string]any{
			"algorithm": rep.Algorithm,
			"expanded":  rep.Expanded,
			"cost":      rep.Cost,
			"cost_unit": rep.CostUnit,
		}
		// JSON has no infinity
		if !math.IsInf(rep.Clearance, 0) {
			props["clearance"] = rep.Clearance
		}
		data, err := frame.MarshalGeoJSON(plan.Result.Path, plan.Grid, props)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	if !rep.Found {
		_, err := fmt.Fprintf(w, "algorithm: %s\nfound: false\nreachable: %t\nexpanded: %d\n",
			rep.Algorithm, rep.Reachable, rep.Expanded)
		return err
	}
	cells := make([]string, len(plan.Result.Path))
	for i, c := range plan.Result.Path {
		cells[i] = c.String()
	}
	_, err := fmt.Fprintf(w, "algorithm: %s\nfound: true\nsteps: %d\ncost: %.3f %s\nexpanded: %d\nclearance: %.3f\nworld length: %.3f\npath: %s\n",
		rep.Algorithm, rep.Steps, rep.Cost, rep.CostUnit, rep.Expanded, rep.Clearance, rep.WorldLength, strings.Join(cells, " "))
	return err
}
