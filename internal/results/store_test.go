package results

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armlab/ropeplan/internal/execute"
	"github.com/armlab/ropeplan/internal/planner"
	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	scen := scenario.NewRopeScenario(scenario.DefaultRopeConfig())
	store, err := NewStore(filepath.Join(t.TempDir(), "results.db"), scen.Schema())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testState(x float64) space.State {
	s := space.State{scenario.FieldRope: []float64{x, 0, x + 0.5, 0, x + 1.0, 0}}
	s.SetStdev(0.25)
	s.SetNumDiverged(0)
	return s
}

// #region plan-tests

func TestSavePlanRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	res := planner.Result{
		Status:       planner.StatusExact,
		Path:         []space.State{testState(0), testState(0.25), testState(0.5)},
		Actions:      [][]float64{{0, 0.25}, {0, 0.25}},
		PlanningTime: 1500 * time.Millisecond,
		Stats:        planner.Stats{Expansions: 12, ClassifierRejections: 3},
	}
	require.NoError(t, store.SavePlan(ctx, "trial-1", r2.Point{X: 0.5, Y: 0}, res))

	plans, err := store.ListPlans(ctx, "trial-1")
	require.NoError(t, err)
	require.Len(t, plans, 1)

	got := plans[0]
	assert.Equal(t, planner.StatusExact, got.Status)
	assert.Equal(t, int64(1500), got.PlanningTimeMs)
	assert.Equal(t, 12, got.Stats.Expansions)
	assert.Equal(t, 3, got.Stats.ClassifierRejections)
	assert.InDelta(t, 0.5, got.Goal.X, 1e-9)

	// float32 storage, so compare within float32 precision
	require.Len(t, got.Path, 3)
	require.Len(t, got.Actions, 2)
	for i := range res.Path {
		for name, want := range res.Path[i] {
			for j := range want {
				assert.InDelta(t, want[j], got.Path[i][name][j], 1e-6)
			}
		}
	}
	assert.InDelta(t, 0.25, got.Actions[0][1], 1e-6)
}

func TestSavePlanWithEmptyPath(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePlan(ctx, "trial-2", r2.Point{}, planner.Result{
		Status: planner.StatusFailure,
	}))

	plans, err := store.ListPlans(ctx, "trial-2")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Empty(t, plans[0].Path)
	assert.Empty(t, plans[0].Actions)
}

// #endregion plan-tests

// #region trial-tests

func TestSaveTrialAndSummarize(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.SaveTrial(ctx, execute.TrialRecord{
		ID:         "t1",
		Scenario:   "link_rope",
		Goal:       r2.Point{X: 1, Y: 2},
		Outcome:    execute.OutcomeGoalReached,
		Attempts:   []execute.AttemptRecord{{Status: planner.StatusExact}},
		StartedAt:  now,
		FinishedAt: now.Add(time.Minute),
	}))
	require.NoError(t, store.SaveTrial(ctx, execute.TrialRecord{
		ID:         "t2",
		Scenario:   "link_rope",
		Outcome:    execute.OutcomeFailed,
		StartedAt:  now,
		FinishedAt: now,
	}))
	require.NoError(t, store.SavePlan(ctx, "t1", r2.Point{}, planner.Result{
		Status: planner.StatusExact, PlanningTime: 2 * time.Second,
	}))
	require.NoError(t, store.SavePlan(ctx, "t2", r2.Point{}, planner.Result{
		Status: planner.StatusFailure, PlanningTime: 4 * time.Second,
	}))

	sum, err := store.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Trials)
	assert.Equal(t, 1, sum.GoalReached)
	assert.InDelta(t, 0.5, sum.SuccessRate, 1e-9)
	assert.Equal(t, 2, sum.Plans)
	assert.Equal(t, 1, sum.ExactPlans)
	assert.InDelta(t, 3000, sum.MeanPlanningMs, 1e-9)
}

func TestSummarizeEmptyStore(t *testing.T) {
	store := newTestStore(t)

	sum, err := store.Summarize(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.Trials)
	assert.Zero(t, sum.Plans)
	assert.Zero(t, sum.SuccessRate)
}

// #endregion trial-tests
