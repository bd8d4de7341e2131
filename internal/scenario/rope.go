package scenario

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/armlab/ropeplan/internal/space"
)

// FieldRope is the rope configuration field: n_links+1 planar points
// flattened as [x0 y0 x1 y1 ...], tail first. The tail is the control
// point used for goal distance.
const FieldRope = "rope"

const repeatActionProb = 0.80

// #region config

// RopeConfig parameterizes the planar rope scenario.
type RopeConfig struct {
	NumLinks    int     // chain segments; NumLinks+1 points
	LinkLength  float64 // fixed segment length, meters
	MaxAngleRad float64 // max bend between consecutive links when sampling
	MaxSpeed    float64 // gripper speed cap, m/s
	Dt          float64 // control step duration, seconds
}

// DefaultRopeConfig matches the sim's three-link rope.
func DefaultRopeConfig() RopeConfig {
	return RopeConfig{
		NumLinks:    2,
		LinkLength:  0.5,
		MaxAngleRad: math.Pi / 6,
		MaxSpeed:    0.25,
		Dt:          1.0,
	}
}

// #endregion config

// #region rope-scenario

// RopeScenario is the planar rope-dragging scenario: the state is a chain
// of fixed-length links, the action moves the head gripper by a planar
// displacement.
type RopeScenario struct {
	cfg    RopeConfig
	schema *space.Schema
}

// NewRopeScenario builds the scenario and its state schema.
func NewRopeScenario(cfg RopeConfig) *RopeScenario {
	width := 2 * (cfg.NumLinks + 1)
	schema := space.NewSchema([]space.Field{
		{Name: FieldRope, Width: width, Weight: 1},
	})
	return &RopeScenario{cfg: cfg, schema: schema}
}

func (r *RopeScenario) Name() string { return "link_rope" }

func (r *RopeScenario) Schema() *space.Schema { return r.schema }

// ActionDim is 2: heading angle and displacement magnitude.
func (r *RopeScenario) ActionDim() int { return 2 }

// Config returns the rope parameters.
func (r *RopeScenario) Config() RopeConfig { return r.cfg }

// #endregion rope-scenario

// #region distance

// DistanceToGoal is the Euclidean distance from the rope's tail point to
// the goal.
func (r *RopeScenario) DistanceToGoal(s space.State, goal r2.Point) float64 {
	rope := s[FieldRope]
	return math.Hypot(rope[0]-goal.X, rope[1]-goal.Y)
}

// Tail returns the rope's free-end control point.
func (r *RopeScenario) Tail(s space.State) r2.Point {
	rope := s[FieldRope]
	return r2.Point{X: rope[0], Y: rope[1]}
}

// #endregion distance

// #region sampling

// SampleValidState draws a random rope configuration: uniform tail point
// in the extent, uniform initial heading, then each successive link bends
// by at most MaxAngleRad. Link lengths are exact by construction.
func (r *RopeScenario) SampleValidState(rng *rand.Rand, extent Extent) space.State {
	n := r.cfg.NumLinks + 1
	rope := make([]float64, 2*n)
	rope[0] = extent.XMin + rng.Float64()*(extent.XMax-extent.XMin)
	rope[1] = extent.YMin + rng.Float64()*(extent.YMax-extent.YMin)
	theta := (rng.Float64()*2 - 1) * math.Pi
	for i := 1; i < n; i++ {
		theta += (rng.Float64()*2 - 1) * r.cfg.MaxAngleRad
		rope[2*i] = rope[2*(i-1)] + math.Cos(theta)*r.cfg.LinkLength
		rope[2*i+1] = rope[2*(i-1)+1] + math.Sin(theta)*r.cfg.LinkLength
	}
	s := space.State{FieldRope: rope}
	s.SetStdev(0)
	s.SetNumDiverged(0)
	return s
}

// PlaceAtGoal rigidly translates the configuration so the tail sits on
// the goal. Relative link geometry, and therefore validity, is preserved.
func (r *RopeScenario) PlaceAtGoal(s space.State, goal r2.Point) space.State {
	out := s.Clone()
	rope := out[FieldRope]
	dx := goal.X - rope[0]
	dy := goal.Y - rope[1]
	for i := 0; i < len(rope); i += 2 {
		rope[i] += dx
		rope[i+1] += dy
	}
	return out
}

// SampleAction resamples the previous action with 80% probability, which
// keeps the gripper moving in a consistent direction and improves
// exploration; otherwise it draws a fresh heading and displacement.
func (r *RopeScenario) SampleAction(rng *rand.Rand, env Environment, s space.State, last []float64) []float64 {
	if last != nil && rng.Float64() < repeatActionProb {
		cp := make([]float64, len(last))
		copy(cp, last)
		return cp
	}
	maxDelta := r.cfg.MaxSpeed * r.cfg.Dt
	return []float64{
		(rng.Float64()*2 - 1) * math.Pi,
		rng.Float64() * maxDelta,
	}
}

// LinkLengths returns the length of each segment, for validity checks.
func (r *RopeScenario) LinkLengths(s space.State) []float64 {
	rope := s[FieldRope]
	out := make([]float64, r.cfg.NumLinks)
	for i := 0; i < r.cfg.NumLinks; i++ {
		dx := rope[2*(i+1)] - rope[2*i]
		dy := rope[2*(i+1)+1] - rope[2*i+1]
		out[i] = math.Hypot(dx, dy)
	}
	return out
}

// #endregion sampling
