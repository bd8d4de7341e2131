// Package model wraps the external learned-model collaborators behind
// narrow interfaces: the forward dynamics model, the feasibility
// classifier, and the trajectory executor. The planner only ever sees
// these interfaces; the gRPC plumbing lives in the sim client.
package model

import (
	"context"
	"errors"

	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

// ErrPrediction marks a dynamics-model failure. The propagator treats it
// as an ordinary invalid transition and prunes the branch; it must never
// surface as a stale or zero state.
var ErrPrediction = errors.New("dynamics prediction failed")

// #region interfaces

// Dynamics is the learned forward model: given a start state and an
// action sequence it predicts the resulting state sequence, one state per
// action. Returned states carry the stdev field set from the model's
// predictive uncertainty.
type Dynamics interface {
	Propagate(ctx context.Context, env scenario.Environment, start space.State, actions [][]float64) ([]space.State, error)
}

// Classifier is the learned feasibility checker: given a window of
// consecutive states and the actions between them (len(states) ==
// len(actions)+1), it returns an accept probability in [0,1]. The caller
// applies the acceptance threshold.
type Classifier interface {
	Check(ctx context.Context, env scenario.Environment, states []space.State, actions [][]float64) (float64, error)

	// Horizon is the classifier's trained sequence horizon; paths
	// accumulate at most Horizon-1 consecutive rejections before pruning.
	Horizon() int
}

// Executor runs trajectories on the robot/simulator. Execute blocks until
// the trajectory finishes (the sim may stop early on safety violations)
// and returns the states that actually occurred. Observe returns the
// current ground-truth state and a fresh environment snapshot.
type Executor interface {
	Execute(ctx context.Context, actions [][]float64, dt float64) ([]space.State, error)
	Observe(ctx context.Context) (space.State, scenario.Environment, error)
}

// #endregion interfaces
