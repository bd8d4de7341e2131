package planner

import (
	"fmt"
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

// #region goal-region

// GoalRegion is the stochastic goal test plus the goal-biased sampler:
// a state satisfies the goal when its scenario distance falls below the
// threshold, and Sample draws valid configurations rigidly placed so the
// control point sits on the goal.
type GoalRegion struct {
	Goal      r2.Point
	Threshold float64

	scen           scenario.Scenario
	maxSampleCount int
}

// NewGoalRegion builds a goal region for one planning episode.
func NewGoalRegion(scen scenario.Scenario, goal r2.Point, threshold float64, maxSampleCount int) *GoalRegion {
	return &GoalRegion{
		Goal:           goal,
		Threshold:      threshold,
		scen:           scen,
		maxSampleCount: maxSampleCount,
	}
}

// Distance is the scenario's distance from the state to the goal point.
func (g *GoalRegion) Distance(s space.State) float64 {
	return g.scen.DistanceToGoal(s, g.Goal)
}

// Satisfied reports whether the state is inside the goal region.
func (g *GoalRegion) Satisfied(s space.State) bool {
	return g.Distance(s) < g.Threshold
}

// Sample draws a random valid configuration and translates it so the
// control point coincides with the goal. Configurations whose translated
// geometry leaves the extent are rejected and resampled; after
// maxSampleCount attempts the sampler reports exhaustion instead of
// looping forever.
func (g *GoalRegion) Sample(rng *rand.Rand, extent scenario.Extent) (space.State, error) {
	for attempt := 0; attempt < g.maxSampleCount; attempt++ {
		s := g.scen.SampleValidState(rng, extent)
		placed := g.scen.PlaceAtGoal(s, g.Goal)
		if stateWithinExtent(placed, extent) {
			return placed, nil
		}
	}
	return nil, fmt.Errorf("goal sampler exhausted after %d attempts", g.maxSampleCount)
}

// #endregion goal-region

// #region helpers

// stateWithinExtent checks every planar point of every non-reserved field
// against the extent.
func stateWithinExtent(s space.State, extent scenario.Extent) bool {
	for name, v := range s {
		if name == space.FieldStdev || name == space.FieldNumDiverged {
			continue
		}
		for i := 0; i+1 < len(v); i += 2 {
			if !extent.Contains(r2.Point{X: v[i], Y: v[i+1]}) {
				return false
			}
		}
	}
	return true
}

// #endregion helpers
