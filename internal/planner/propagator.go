package planner

import (
	"context"
	"errors"

	"github.com/armlab/ropeplan/internal/metrics"
	"github.com/armlab/ropeplan/internal/model"
	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

// #region propagator

// propagator is the state-transition function the tree search invokes on
// every expansion attempt: predict the next state with the learned
// dynamics, re-check the classifier over the still-diverging ancestor
// suffix, and update the divergence counter.
type propagator struct {
	dynamics   model.Dynamics
	classifier model.Classifier
	env        scenario.Environment
	params     Params
	stats      *Stats
}

// propagate attempts the transition from tree node parentIdx under
// action. ok=false marks an ordinary invalid transition (prediction
// failure) that the search consumes by pruning; a non-nil error is an
// adapter-level fault and aborts the episode.
func (p *propagator) propagate(ctx context.Context, tree *Tree, parentIdx int, action []float64) (space.State, bool, error) {
	parent := tree.Node(parentIdx)

	predictedSeq, err := p.dynamics.Propagate(ctx, p.env, parent.State, [][]float64{action})
	if err != nil {
		if errors.Is(err, model.ErrPrediction) {
			p.stats.PredictionFailures++
			metrics.PredictionFailures.Inc()
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(predictedSeq) == 0 {
		p.stats.PredictionFailures++
		metrics.PredictionFailures.Inc()
		return nil, false, nil
	}
	predicted := predictedSeq[len(predictedSeq)-1].Clone()

	states, actions := p.window(tree, parentIdx, predicted, action)

	prob, err := p.classifier.Check(ctx, p.env, states, actions)
	if err != nil {
		return nil, false, err
	}

	if prob > p.params.AcceptThreshold {
		predicted.SetNumDiverged(0)
	} else {
		predicted.SetNumDiverged(parent.State.NumDiverged() + 1)
		p.stats.ClassifierRejections++
		metrics.ClassifierRejections.Inc()
	}
	return predicted, true, nil
}

// #endregion propagator

// #region window

// window assembles the classifier evaluation window: the candidate
// transition plus the contiguous ancestor suffix that is still
// accumulating divergence. Walking back from the parent, each ancestor's
// state is included and the walk stops at the first ancestor with
// num_diverged == 0; that boundary ancestor's own incoming action is
// excluded, because it belongs to the transition before the window.
// The root always has num_diverged == 0, so the walk terminates.
func (p *propagator) window(tree *Tree, parentIdx int, predicted space.State, action []float64) ([]space.State, [][]float64) {
	states := []space.State{predicted}
	actions := [][]float64{action}
	for idx := parentIdx; idx != -1; idx = tree.Node(idx).Parent {
		n := tree.Node(idx)
		states = append([]space.State{n.State}, states...)
		if n.State.NumDiverged() == 0 {
			break
		}
		actions = append([][]float64{n.Action}, actions...)
	}
	return states, actions
}

// #endregion window

// #region path-validity

// branchValid is the path validity rule: a bounded number of consecutive
// rejections is tolerated, but a terminal node at num_diverged >=
// horizon-1 kills the branch.
func (p *propagator) branchValid(s space.State) bool {
	return s.NumDiverged() < p.params.ClassifierHorizon-1
}

// #endregion path-validity
