package planner

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

// countingScenario counts valid-state draws so sampler attempt caps can
// be asserted exactly.
type countingScenario struct {
	*scenario.RopeScenario
	validSamples int
}

func (c *countingScenario) SampleValidState(rng *rand.Rand, extent scenario.Extent) space.State {
	c.validSamples++
	return c.RopeScenario.SampleValidState(rng, extent)
}

// #region sample-tests

func TestGoalRegionSamplePlacesTailOnGoal(t *testing.T) {
	scen := scenario.NewRopeScenario(scenario.DefaultRopeConfig())
	goal := r2.Point{X: 0.5, Y: -0.5}
	region := NewGoalRegion(scen, goal, 0.05, 100)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		s, err := region.Sample(rng, propTestExtent)
		require.NoError(t, err)

		tail := scen.Tail(s)
		assert.InDelta(t, goal.X, tail.X, 1e-9)
		assert.InDelta(t, goal.Y, tail.Y, 1e-9)
		assert.True(t, region.Satisfied(s))

		rope := s[scenario.FieldRope]
		for j := 0; j+1 < len(rope); j += 2 {
			assert.True(t, propTestExtent.Contains(r2.Point{X: rope[j], Y: rope[j+1]}))
		}
		for _, l := range scen.LinkLengths(s) {
			assert.InDelta(t, scen.Config().LinkLength, l, 1e-9)
		}
	}
}

func TestGoalRegionSampleExhaustsForUnreachableGoal(t *testing.T) {
	scen := &countingScenario{RopeScenario: scenario.NewRopeScenario(scenario.DefaultRopeConfig())}
	extent := scenario.Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	// every placed configuration lands outside the extent
	region := NewGoalRegion(scen, r2.Point{X: 100, Y: 100}, 0.05, 25)
	rng := rand.New(rand.NewSource(12))

	s, err := region.Sample(rng, extent)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "exhausted")
	assert.Equal(t, 25, scen.validSamples, "sampler must stop at the attempt cap")
}

// #endregion sample-tests
