// Package execute runs planning trials end to end: plan toward a goal,
// execute the plan on the robot or simulator, watch for divergence
// between the planned and actual trajectories, and replan from observed
// ground truth until the goal is reached or the trial budget runs out.
package execute

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/golang/geo/r2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/armlab/ropeplan/internal/metrics"
	"github.com/armlab/ropeplan/internal/model"
	"github.com/armlab/ropeplan/internal/planner"
	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

// #region types

// Outcome is the terminal result of one trial.
type Outcome string

const (
	// OutcomeGoalReached means execution ended inside the goal region.
	OutcomeGoalReached Outcome = "goal_reached"
	// OutcomePlanOnly means planning succeeded and execution was skipped.
	OutcomePlanOnly Outcome = "plan_only"
	// OutcomeFailed means planning failed and the retry policy gave up.
	OutcomeFailed Outcome = "failed"
	// OutcomeTimeout means the attempt or wall-clock budget ran out.
	OutcomeTimeout Outcome = "timeout"
)

// Planner is the planning capability the driver depends on.
type Planner interface {
	Plan(ctx context.Context, env scenario.Environment, start space.State, goal r2.Point) (planner.Result, error)
}

// Sink receives plan results and trial records for persistence. A nil
// sink disables persistence.
type Sink interface {
	SavePlan(ctx context.Context, trialID string, goal r2.Point, res planner.Result) error
	SaveTrial(ctx context.Context, rec TrialRecord) error
}

// Config bounds one trial and sets the driver policies.
type Config struct {
	MaxAttempts         int           // planning attempts per trial
	Timeout             time.Duration // wall-clock budget per trial
	RetryOnFailure      bool          // resample the goal after a failed plan
	NoExecution         bool          // plan-only trials, e.g. dataset generation
	DivergenceTolerance float64       // planned-vs-actual distance that triggers a replan
	GoalThreshold       float64       // distance below which the goal counts as reached
	Dt                  float64       // control period handed to the executor
}

// DefaultConfig returns the trial defaults used in sim.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:         10,
		Timeout:             10 * time.Minute,
		RetryOnFailure:      true,
		NoExecution:         false,
		DivergenceTolerance: 0.25,
		GoalThreshold:       0.05,
		Dt:                  1.0,
	}
}

// AttemptRecord captures one plan-execute round inside a trial.
type AttemptRecord struct {
	Status        planner.Status
	PlanningTime  time.Duration
	ExecutedSteps int
	Diverged      bool
	FinalDistance float64
}

// TrialRecord is the persisted summary of one trial.
type TrialRecord struct {
	ID         string
	Scenario   string
	Goal       r2.Point
	Outcome    Outcome
	Attempts   []AttemptRecord
	Replans    int
	StartedAt  time.Time
	FinishedAt time.Time
}

// #endregion types

// #region driver

// Driver owns one trial at a time. The RNG drives goal resampling and
// must not be shared with the planner's.
type Driver struct {
	scen     scenario.Scenario
	planner  Planner
	executor model.Executor
	sink     Sink
	cfg      Config
	rng      *rand.Rand
	log      *zap.Logger
}

// NewDriver wires a trial driver. sink may be nil.
func NewDriver(
	scen scenario.Scenario,
	pl Planner,
	executor model.Executor,
	sink Sink,
	cfg Config,
	seed int64,
	log *zap.Logger,
) *Driver {
	return &Driver{
		scen:     scen,
		planner:  pl,
		executor: executor,
		sink:     sink,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		log:      log,
	}
}

// RunTrial executes one full trial: observe the ground truth, sample a
// goal, then alternate planning and execution until the goal is reached
// or the budget runs out. Divergence during execution replans from the
// last observed state; a failed plan resamples the goal when
// RetryOnFailure is set.
func (d *Driver) RunTrial(ctx context.Context) (TrialRecord, error) {
	rec := TrialRecord{
		ID:        uuid.NewString(),
		Scenario:  d.scen.Name(),
		StartedAt: time.Now(),
	}
	deadline := rec.StartedAt.Add(d.cfg.Timeout)

	current, env, err := d.executor.Observe(ctx)
	if err != nil {
		return rec, fmt.Errorf("observing initial state: %w", err)
	}
	rec.Goal = scenario.SampleGoalPoint(d.rng, env.Extent)

	d.log.Info("trial started",
		zap.String("trial_id", rec.ID),
		zap.Float64("goal_x", rec.Goal.X),
		zap.Float64("goal_y", rec.Goal.Y))

	rec.Outcome = OutcomeTimeout
	for attempt := 0; attempt < d.cfg.MaxAttempts && time.Now().Before(deadline); attempt++ {
		if ctx.Err() != nil {
			break
		}

		res, err := d.planner.Plan(ctx, env, current, rec.Goal)
		if err != nil {
			return d.close(ctx, rec, OutcomeFailed), fmt.Errorf("planning attempt %d: %w", attempt, err)
		}
		att := AttemptRecord{Status: res.Status, PlanningTime: res.PlanningTime}
		if d.sink != nil {
			if err := d.sink.SavePlan(ctx, rec.ID, rec.Goal, res); err != nil {
				d.log.Warn("persisting plan result", zap.Error(err))
			}
		}

		if !res.Status.Solved() {
			rec.Attempts = append(rec.Attempts, att)
			if !d.cfg.RetryOnFailure {
				return d.close(ctx, rec, OutcomeFailed), nil
			}
			// A fresh goal gives the next attempt a different problem
			// instead of re-running a hopeless one.
			rec.Goal = scenario.SampleGoalPoint(d.rng, env.Extent)
			d.log.Info("plan failed, resampling goal",
				zap.Float64("goal_x", rec.Goal.X),
				zap.Float64("goal_y", rec.Goal.Y))
			continue
		}

		if d.cfg.NoExecution {
			rec.Attempts = append(rec.Attempts, att)
			return d.close(ctx, rec, OutcomePlanOnly), nil
		}

		actual, err := d.executor.Execute(ctx, res.Actions, d.cfg.Dt)
		if err != nil {
			return d.close(ctx, rec, OutcomeFailed), fmt.Errorf("executing trajectory: %w", err)
		}
		att.ExecutedSteps = len(actual)
		if len(actual) == 0 {
			return d.close(ctx, rec, OutcomeFailed), fmt.Errorf("executor returned no states for %d actions", len(res.Actions))
		}

		divergedAt := d.firstDivergence(res.Path, actual)
		att.Diverged = divergedAt >= 0

		// Replan from ground truth, never from the stale plan: the next
		// attempt starts at the last state that actually occurred.
		current, env, err = d.executor.Observe(ctx)
		if err != nil {
			return d.close(ctx, rec, OutcomeFailed), fmt.Errorf("observing after execution: %w", err)
		}
		att.FinalDistance = d.scen.DistanceToGoal(current, rec.Goal)
		rec.Attempts = append(rec.Attempts, att)

		if att.Diverged {
			rec.Replans++
			metrics.Replans.Inc()
			d.log.Info("execution diverged, replanning from observed state",
				zap.Int("diverged_at_step", divergedAt),
				zap.Float64("distance_to_goal", att.FinalDistance))
			continue
		}
		if att.FinalDistance < d.cfg.GoalThreshold {
			return d.close(ctx, rec, OutcomeGoalReached), nil
		}
		// Clean execution of an approximate plan: keep planning from here.
		rec.Replans++
		metrics.Replans.Inc()
	}

	return d.close(ctx, rec, rec.Outcome), nil
}

// #endregion driver

// #region helpers

// firstDivergence compares the executed states against the planned path
// step by step and returns the first step whose deviation exceeds the
// tolerance, or -1 when the whole execution tracked the plan. planned[0]
// is the start state; actual[i] corresponds to planned[i+1].
func (d *Driver) firstDivergence(planned []space.State, actual []space.State) int {
	schema := d.scen.Schema()
	n := len(actual)
	if len(planned)-1 < n {
		n = len(planned) - 1
	}
	for i := 0; i < n; i++ {
		if schema.StateDistance(planned[i+1], actual[i]) > d.cfg.DivergenceTolerance {
			return i
		}
	}
	return -1
}

func (d *Driver) close(ctx context.Context, rec TrialRecord, outcome Outcome) TrialRecord {
	rec.Outcome = outcome
	rec.FinishedAt = time.Now()
	if d.sink != nil {
		if err := d.sink.SaveTrial(ctx, rec); err != nil {
			d.log.Warn("persisting trial record", zap.Error(err))
		}
	}
	d.log.Info("trial finished",
		zap.String("trial_id", rec.ID),
		zap.String("outcome", string(outcome)),
		zap.Int("attempts", len(rec.Attempts)),
		zap.Int("replans", rec.Replans),
		zap.Duration("elapsed", rec.FinishedAt.Sub(rec.StartedAt)))
	return rec
}

// #endregion helpers
