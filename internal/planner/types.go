package planner

import (
	"time"

	"github.com/armlab/ropeplan/internal/space"
)

// #region status

// Status is the terminal outcome of one planning episode.
type Status string

const (
	// StatusExact means the returned path ends inside the goal region.
	StatusExact Status = "exact"
	// StatusApproximate means the budget expired; the returned path ends
	// at the accepted tree node nearest the goal.
	StatusApproximate Status = "approximate"
	// StatusFailure means no path made progress toward the goal within
	// the budget.
	StatusFailure Status = "failure"
)

// Solved reports whether the episode produced a usable path.
func (s Status) Solved() bool {
	return s == StatusExact || s == StatusApproximate
}

// #endregion status

// #region params

// Params configures one planner instance. ClassifierHorizon and
// AcceptThreshold drive the divergence bookkeeping; the rest bound tree
// growth.
type Params struct {
	AcceptThreshold   float64       // classifier probability above which a transition is accepted
	ClassifierHorizon int           // paths prune at num_diverged >= horizon-1
	GoalThreshold     float64       // distance below which a state satisfies the goal
	GoalBias          float64       // fraction of samples drawn from the goal region
	Timeout           time.Duration // wall-clock budget per episode
	MinControlSteps   int           // min consecutive applications of one sampled action
	MaxControlSteps   int           // max consecutive applications of one sampled action
	MaxSampleCount    int           // goal sampler attempt cap before reporting exhaustion
}

// DefaultParams returns the planner defaults used in sim trials.
func DefaultParams() Params {
	return Params{
		AcceptThreshold:   0.5,
		ClassifierHorizon: 3,
		GoalThreshold:     0.05,
		GoalBias:          0.1,
		Timeout:           60 * time.Second,
		MinControlSteps:   1,
		MaxControlSteps:   50,
		MaxSampleCount:    100,
	}
}

// #endregion params

// #region stats

// Stats is per-episode bookkeeping, persisted with the plan result.
type Stats struct {
	Expansions           int // nodes added to the tree
	ClassifierRejections int // transitions rejected by the classifier
	PredictionFailures   int // dynamics failures that pruned a transition
	PrunedBranches       int // branches cut at the divergence horizon
	GoalSamples          int // samples drawn from the goal region
}

// #endregion stats

// #region result

// Result is the immutable output of one planning episode: a path of
// states and the actions between them (len(Path) == len(Actions)+1 when
// solved), the terminal status, and the wall-clock planning time.
type Result struct {
	Status       Status
	Path         []space.State
	Actions      [][]float64
	PlanningTime time.Duration
	Stats        Stats
}

// #endregion result
