package execute

import (
	"context"
	"testing"
	"time"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/armlab/ropeplan/internal/planner"
	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

// The degenerate extent pins the sampled goal to exactly (0.7, -0.3), so
// scripted trajectories can land on it.
var testGoal = r2.Point{X: 0.7, Y: -0.3}

var testEnv = scenario.Environment{
	Extent: scenario.Extent{XMin: testGoal.X, XMax: testGoal.X, YMin: testGoal.Y, YMax: testGoal.Y},
}

func testScenario() *scenario.RopeScenario {
	cfg := scenario.DefaultRopeConfig()
	cfg.NumLinks = 1
	return scenario.NewRopeScenario(cfg)
}

// ropeState is a one-link rope with its tail at (x, y).
func ropeState(x, y float64) space.State {
	s := space.State{scenario.FieldRope: []float64{x, y, x + 0.5, y}}
	s.SetStdev(0)
	s.SetNumDiverged(0)
	return s
}

// pathFrom builds a straight planned path of n actions toward the goal.
func pathFrom(start space.State, n int, to r2.Point) ([]space.State, [][]float64) {
	scen := testScenario()
	tail := scen.Tail(start)
	states := []space.State{start}
	var actions [][]float64
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n)
		states = append(states, ropeState(tail.X+(to.X-tail.X)*f, tail.Y+(to.Y-tail.Y)*f))
		actions = append(actions, []float64{0, 0.1})
	}
	return states, actions
}

// #region fakes

type scriptedPlanner struct {
	results []planner.Result
	starts  []space.State
	goals   []r2.Point
}

func (p *scriptedPlanner) Plan(_ context.Context, _ scenario.Environment, start space.State, goal r2.Point) (planner.Result, error) {
	p.starts = append(p.starts, start.Clone())
	p.goals = append(p.goals, goal)
	res := p.results[0]
	if len(p.results) > 1 {
		p.results = p.results[1:]
	}
	return res, nil
}

type scriptedExecutor struct {
	observations []space.State
	executions   [][]space.State
	executed     [][][]float64
}

func (e *scriptedExecutor) Execute(_ context.Context, actions [][]float64, _ float64) ([]space.State, error) {
	e.executed = append(e.executed, actions)
	out := e.executions[0]
	if len(e.executions) > 1 {
		e.executions = e.executions[1:]
	}
	return out, nil
}

func (e *scriptedExecutor) Observe(context.Context) (space.State, scenario.Environment, error) {
	s := e.observations[0]
	if len(e.observations) > 1 {
		e.observations = e.observations[1:]
	}
	return s.Clone(), testEnv, nil
}

// #endregion fakes

// #region divergence-tests

func TestDivergedExecutionReplansFromObservedState(t *testing.T) {
	scen := testScenario()
	start := ropeState(0, 0)

	// first plan: five steps to the goal
	path1, actions1 := pathFrom(start, 5, testGoal)

	// execution tracks step 1, then diverges at step 2
	diverged := ropeState(-0.5, 0.8)
	actual1 := []space.State{path1[1].Clone(), diverged}

	// second plan starts at the diverged state and its execution tracks
	// perfectly onto the goal
	path2, actions2 := pathFrom(diverged, 3, testGoal)
	actual2 := []space.State{path2[1].Clone(), path2[2].Clone(), path2[3].Clone()}

	pl := &scriptedPlanner{results: []planner.Result{
		{Status: planner.StatusExact, Path: path1, Actions: actions1},
		{Status: planner.StatusExact, Path: path2, Actions: actions2},
	}}
	exec := &scriptedExecutor{
		observations: []space.State{start, diverged, path2[3]},
		executions:   [][]space.State{actual1, actual2},
	}

	d := NewDriver(scen, pl, exec, nil, DefaultConfig(), 1, zap.NewNop())
	rec, err := d.RunTrial(context.Background())
	require.NoError(t, err)

	require.Len(t, pl.starts, 2, "driver must replan after divergence")
	assert.Zero(t, scen.Schema().StateDistance(diverged, pl.starts[1]),
		"second plan must start from the observed ground-truth state")
	assert.Equal(t, testGoal, pl.goals[1], "goal is kept across a divergence replan")

	assert.Equal(t, OutcomeGoalReached, rec.Outcome)
	assert.Equal(t, 1, rec.Replans)
	require.Len(t, rec.Attempts, 2)
	assert.True(t, rec.Attempts[0].Diverged)
	assert.False(t, rec.Attempts[1].Diverged)
}

func TestCleanExecutionReachesGoal(t *testing.T) {
	scen := testScenario()
	start := ropeState(0, 0)
	path, actions := pathFrom(start, 4, testGoal)
	actual := []space.State{path[1].Clone(), path[2].Clone(), path[3].Clone(), path[4].Clone()}

	pl := &scriptedPlanner{results: []planner.Result{
		{Status: planner.StatusExact, Path: path, Actions: actions},
	}}
	exec := &scriptedExecutor{
		observations: []space.State{start, path[4]},
		executions:   [][]space.State{actual},
	}

	d := NewDriver(scen, pl, exec, nil, DefaultConfig(), 1, zap.NewNop())
	rec, err := d.RunTrial(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeGoalReached, rec.Outcome)
	assert.Zero(t, rec.Replans)
	require.Len(t, exec.executed, 1)
	assert.Equal(t, actions, exec.executed[0])
}

// #endregion divergence-tests

// #region policy-tests

func TestNoExecutionStopsAfterPlanning(t *testing.T) {
	scen := testScenario()
	start := ropeState(0, 0)
	path, actions := pathFrom(start, 3, testGoal)

	pl := &scriptedPlanner{results: []planner.Result{
		{Status: planner.StatusExact, Path: path, Actions: actions},
	}}
	exec := &scriptedExecutor{observations: []space.State{start}}

	cfg := DefaultConfig()
	cfg.NoExecution = true
	d := NewDriver(scen, pl, exec, nil, cfg, 1, zap.NewNop())
	rec, err := d.RunTrial(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomePlanOnly, rec.Outcome)
	assert.Len(t, pl.starts, 1)
	assert.Empty(t, exec.executed)
}

func TestFailedPlanWithoutRetryAborts(t *testing.T) {
	pl := &scriptedPlanner{results: []planner.Result{{Status: planner.StatusFailure}}}
	exec := &scriptedExecutor{observations: []space.State{ropeState(0, 0)}}

	cfg := DefaultConfig()
	cfg.RetryOnFailure = false
	d := NewDriver(testScenario(), pl, exec, nil, cfg, 1, zap.NewNop())
	rec, err := d.RunTrial(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeFailed, rec.Outcome)
	assert.Len(t, pl.starts, 1)
}

func TestFailedPlanWithRetryResamplesGoal(t *testing.T) {
	pl := &scriptedPlanner{results: []planner.Result{{Status: planner.StatusFailure}}}
	exec := &scriptedExecutor{observations: []space.State{ropeState(0, 0)}}

	cfg := DefaultConfig()
	cfg.MaxAttempts = 3
	cfg.RetryOnFailure = true
	d := NewDriver(testScenario(), pl, exec, nil, cfg, 1, zap.NewNop())
	rec, err := d.RunTrial(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeTimeout, rec.Outcome)
	assert.Len(t, pl.starts, 3)
	assert.Len(t, rec.Attempts, 3)
}

func TestTrialTimeoutBudget(t *testing.T) {
	pl := &scriptedPlanner{results: []planner.Result{{Status: planner.StatusFailure}}}
	exec := &scriptedExecutor{observations: []space.State{ropeState(0, 0)}}

	cfg := DefaultConfig()
	cfg.Timeout = -time.Second // already expired
	d := NewDriver(testScenario(), pl, exec, nil, cfg, 1, zap.NewNop())
	rec, err := d.RunTrial(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeTimeout, rec.Outcome)
	assert.Empty(t, pl.starts)
}

// #endregion policy-tests
