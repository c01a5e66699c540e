// Package planner wires the occupancy, gridgraph and search packages into a
// single configurable pipeline:
//
//	raw intensities → Inflate → GridGraph → Search → clearance
//
// Configuration is a flat YAML document (see Config). Every field has a
// default, unknown keys are rejected, and an invalid value is reported as an
// error wrapping ErrInvalidConfig rather than being clamped.
//
// A Planner is safe for concurrent use: Plan builds fresh per-call state,
// including its own random heuristic when one is configured.
package planner
