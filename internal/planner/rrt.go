package planner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/armlab/ropeplan/internal/metrics"
	"github.com/armlab/ropeplan/internal/model"
	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

// #region planner

// Planner grows a kinodynamic RRT: nearest-neighbor extension under the
// learned dynamics model, with the feasibility classifier driving the
// divergence bookkeeping that prunes unreliable branches.
type Planner struct {
	scen       scenario.Scenario
	schema     *space.Schema
	dynamics   model.Dynamics
	classifier model.Classifier
	params     Params
	rng        *rand.Rand
	log        *zap.Logger
}

// New wires a planner. The RNG is owned by this planner and must not be
// shared, so planning episodes stay reproducible from the seed. A zero
// ClassifierHorizon falls back to the classifier's trained horizon.
func New(
	scen scenario.Scenario,
	dynamics model.Dynamics,
	classifier model.Classifier,
	params Params,
	seed int64,
	log *zap.Logger,
) (*Planner, error) {
	if params.ClassifierHorizon == 0 {
		params.ClassifierHorizon = classifier.Horizon()
	}
	if params.ClassifierHorizon < 2 {
		return nil, fmt.Errorf("classifier horizon must be >= 2, got %d", params.ClassifierHorizon)
	}
	if params.MinControlSteps < 1 || params.MaxControlSteps < params.MinControlSteps {
		return nil, fmt.Errorf("invalid control duration bounds [%d, %d]", params.MinControlSteps, params.MaxControlSteps)
	}
	if params.MaxSampleCount < 1 {
		return nil, fmt.Errorf("max sample count must be >= 1, got %d", params.MaxSampleCount)
	}
	return &Planner{
		scen:       scen,
		schema:     scen.Schema(),
		dynamics:   dynamics,
		classifier: classifier,
		params:     params,
		rng:        rand.New(rand.NewSource(seed)),
		log:        log,
	}, nil
}

// #endregion planner

// #region plan

// Plan runs one planning episode from start toward goal within the
// environment snapshot. Exact solutions end inside the goal region;
// approximate solutions end at the accepted node nearest the goal when
// the wall-clock budget expires; failure means no accepted node made
// progress. The terminal node of any returned path is always an accepted
// (non-diverged) one.
func (p *Planner) Plan(ctx context.Context, env scenario.Environment, start space.State, goal r2.Point) (Result, error) {
	if err := p.checkStart(start); err != nil {
		return Result{Status: StatusFailure}, err
	}

	root := start.Clone()
	root.SetStdev(0)
	root.SetNumDiverged(0)

	tree := NewTree(p.schema, root)
	region := NewGoalRegion(p.scen, goal, p.params.GoalThreshold, p.params.MaxSampleCount)
	stats := &Stats{}
	prop := &propagator{
		dynamics:   p.dynamics,
		classifier: p.classifier,
		env:        env,
		params:     p.params,
		stats:      stats,
	}

	t0 := time.Now()
	deadline := t0.Add(p.params.Timeout)

	// Root is index 0; an approximate solution must improve on it.
	bestIdx := 0
	bestDist := region.Distance(root)

	for time.Now().Before(deadline) && ctx.Err() == nil {
		target := p.sampleTarget(region, env.Extent, stats)
		nearIdx := tree.Nearest(p.schema.Encode(target), p.schema.Distance)
		near := tree.Node(nearIdx)

		action := p.scen.SampleAction(p.rng, env, near.State, near.Action)
		steps := p.params.MinControlSteps + p.rng.Intn(p.params.MaxControlSteps-p.params.MinControlSteps+1)

		// Apply the same action for a random number of steps, adding each
		// intermediate state as a node until the transition goes invalid
		// or the branch hits the divergence horizon.
		cur := nearIdx
		for i := 0; i < steps; i++ {
			next, ok, err := prop.propagate(ctx, tree, cur, action)
			if err != nil {
				return p.finish(StatusFailure, nil, nil, t0, stats), err
			}
			if !ok {
				break
			}
			if !prop.branchValid(next) {
				stats.PrunedBranches++
				metrics.PrunedBranches.Inc()
				break
			}

			cur = tree.Add(Node{
				State:  next,
				Flat:   p.schema.Encode(next),
				Action: cloneAction(action),
				Parent: cur,
			})
			stats.Expansions++
			metrics.Expansions.Inc()

			if next.NumDiverged() != 0 {
				continue
			}
			if d := region.Distance(next); d < bestDist {
				bestIdx, bestDist = cur, d
			}
			if region.Satisfied(next) {
				states, actions := tree.PathTo(cur)
				return p.finish(StatusExact, states, actions, t0, stats), nil
			}
		}
	}

	if bestIdx == 0 {
		p.log.Info("planning failed",
			zap.Int("tree_size", tree.Len()),
			zap.Float64("best_distance", bestDist))
		return p.finish(StatusFailure, nil, nil, t0, stats), nil
	}
	states, actions := tree.PathTo(bestIdx)
	return p.finish(StatusApproximate, states, actions, t0, stats), nil
}

// #endregion plan

// #region sampling

// sampleTarget draws the expansion target: goal-biased toward valid
// configurations placed at the goal, uniform otherwise. Goal sampler
// exhaustion degrades to a uniform sample for this expansion.
func (p *Planner) sampleTarget(region *GoalRegion, extent scenario.Extent, stats *Stats) space.State {
	if p.rng.Float64() < p.params.GoalBias {
		stats.GoalSamples++
		s, err := region.Sample(p.rng, extent)
		if err == nil {
			return s
		}
		p.log.Warn("goal sampler exhausted, falling back to uniform", zap.Error(err))
	}
	return p.scen.SampleValidState(p.rng, extent)
}

// #endregion sampling

// #region helpers

// checkStart validates the start state against the schema so a
// misconfigured scenario fails with a diagnostic instead of a panic deep
// inside the search.
func (p *Planner) checkStart(start space.State) error {
	for _, f := range p.schema.Fields() {
		if f.Name == space.FieldStdev || f.Name == space.FieldNumDiverged {
			continue
		}
		v, ok := start[f.Name]
		if !ok {
			return fmt.Errorf("start state missing field %q", f.Name)
		}
		if len(v) != f.Width {
			return fmt.Errorf("start state field %q has width %d, schema declares %d", f.Name, len(v), f.Width)
		}
	}
	return nil
}

func (p *Planner) finish(status Status, path []space.State, actions [][]float64, t0 time.Time, stats *Stats) Result {
	elapsed := time.Since(t0)
	metrics.Plans.WithLabelValues(string(status)).Inc()
	metrics.PlanningSeconds.Observe(elapsed.Seconds())
	p.log.Info("planning episode finished",
		zap.String("status", string(status)),
		zap.Duration("planning_time", elapsed),
		zap.Int("expansions", stats.Expansions),
		zap.Int("classifier_rejections", stats.ClassifierRejections),
		zap.Int("prediction_failures", stats.PredictionFailures),
		zap.Int("pruned_branches", stats.PrunedBranches))
	return Result{
		Status:       status,
		Path:         path,
		Actions:      actions,
		PlanningTime: elapsed,
		Stats:        *stats,
	}
}

func cloneAction(a []float64) []float64 {
	cp := make([]float64, len(a))
	copy(cp, a)
	return cp
}

// #endregion helpers
