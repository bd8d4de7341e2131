// Package scenario defines the capability set the planner needs from a
// manipulation scenario: state/action schemas, goal distance, sampling of
// valid configurations and actions, and goal placement. The planner is
// scenario-agnostic; everything rope-specific lives in RopeScenario.
package scenario

import (
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/armlab/ropeplan/internal/space"
)

// #region environment

// Extent is an axis-aligned workspace rectangle.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether p lies inside the extent.
func (e Extent) Contains(p r2.Point) bool {
	return p.X >= e.XMin && p.X <= e.XMax && p.Y >= e.YMin && p.Y <= e.YMax
}

// Environment is the static occupancy snapshot for one planning episode.
// The planner never predicts or mutates it; it is passed unchanged to
// every dynamics and classifier call.
type Environment struct {
	Extent     Extent
	Resolution float64
	Grid       []float64
}

// #endregion environment

// #region scenario

// Scenario is the fixed capability set the planner and driver require.
type Scenario interface {
	// Name identifies the scenario in logs and persisted results.
	Name() string

	// Schema declares the planned state fields. The reserved stdev and
	// num_diverged scalars are appended by space.NewSchema.
	Schema() *space.Schema

	// ActionDim is the width of one action vector.
	ActionDim() int

	// DistanceToGoal measures how far a state is from the goal point.
	DistanceToGoal(s space.State, goal r2.Point) float64

	// SampleValidState draws a uniformly random configuration satisfying
	// the scenario's configuration-space constraints within the extent.
	SampleValidState(rng *rand.Rand, extent Extent) space.State

	// PlaceAtGoal rigidly translates a valid configuration so that its
	// control point coincides with the goal, preserving validity.
	PlaceAtGoal(s space.State, goal r2.Point) space.State

	// SampleAction draws a random action. last is the action on the tree
	// edge into the state being extended, nil at the root.
	SampleAction(rng *rand.Rand, env Environment, s space.State, last []float64) []float64
}

// SampleGoalPoint draws a random goal uniformly inside the workspace
// extent; the trial driver samples each trial's goal with it.
func SampleGoalPoint(rng *rand.Rand, e Extent) r2.Point {
	return r2.Point{
		X: e.XMin + rng.Float64()*(e.XMax-e.XMin),
		Y: e.YMin + rng.Float64()*(e.YMax-e.YMin),
	}
}

// #endregion scenario
