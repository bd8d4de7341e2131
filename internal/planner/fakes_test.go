package planner

import (
	"context"
	"math"

	"github.com/armlab/ropeplan/internal/model"
	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

// #region fake-dynamics

// translateDynamics is a perfect in-process dynamics model: an action
// [heading, magnitude] rigidly translates the whole rope.
type translateDynamics struct {
	fail bool
}

func (d translateDynamics) Propagate(_ context.Context, _ scenario.Environment, start space.State, actions [][]float64) ([]space.State, error) {
	if d.fail {
		return nil, model.ErrPrediction
	}
	states := make([]space.State, len(actions))
	cur := start
	for i, a := range actions {
		next := cur.Clone()
		rope := next[scenario.FieldRope]
		dx := a[1] * math.Cos(a[0])
		dy := a[1] * math.Sin(a[0])
		for j := 0; j < len(rope); j += 2 {
			rope[j] += dx
			rope[j+1] += dy
		}
		next.SetStdev(0.01)
		states[i] = next
		cur = next
	}
	return states, nil
}

// #endregion fake-dynamics

// #region fake-classifiers

// constClassifier always returns the same accept probability.
type constClassifier struct {
	prob    float64
	horizon int
}

func (c constClassifier) Check(context.Context, scenario.Environment, []space.State, [][]float64) (float64, error) {
	return c.prob, nil
}

func (c constClassifier) Horizon() int { return c.horizon }

// recordingClassifier returns scripted probabilities in order and records
// the window shape of every call.
type recordingClassifier struct {
	probs        []float64
	horizon      int
	windowStates []int
	windowActs   []int
}

func (c *recordingClassifier) Check(_ context.Context, _ scenario.Environment, states []space.State, actions [][]float64) (float64, error) {
	c.windowStates = append(c.windowStates, len(states))
	c.windowActs = append(c.windowActs, len(actions))
	p := c.probs[0]
	if len(c.probs) > 1 {
		c.probs = c.probs[1:]
	}
	return p, nil
}

func (c *recordingClassifier) Horizon() int { return c.horizon }

// #endregion fake-classifiers
