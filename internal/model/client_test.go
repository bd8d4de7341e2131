package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/armlab/ropeplan/gen/ropesim"
	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

// #region mock

type mockRopeSim struct {
	pb.RopeSimClient

	propagateResp *pb.PropagateResponse
	propagateErr  error

	checkResp *pb.CheckResponse
	checkErr  error

	executeResp *pb.ExecuteResponse
	executeErr  error

	observeResp *pb.ObservationResponse
	observeErr  error
}

func (m *mockRopeSim) Propagate(_ context.Context, _ *pb.PropagateRequest, _ ...grpc.CallOption) (*pb.PropagateResponse, error) {
	return m.propagateResp, m.propagateErr
}

func (m *mockRopeSim) CheckConstraint(_ context.Context, _ *pb.CheckRequest, _ ...grpc.CallOption) (*pb.CheckResponse, error) {
	return m.checkResp, m.checkErr
}

func (m *mockRopeSim) ExecuteTrajectory(_ context.Context, _ *pb.ExecuteRequest, _ ...grpc.CallOption) (*pb.ExecuteResponse, error) {
	return m.executeResp, m.executeErr
}

func (m *mockRopeSim) GetObservation(_ context.Context, _ *pb.ObservationRequest, _ ...grpc.CallOption) (*pb.ObservationResponse, error) {
	return m.observeResp, m.observeErr
}

// #endregion mock

func testEnv() scenario.Environment {
	return scenario.Environment{
		Extent:     scenario.Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1},
		Resolution: 0.01,
	}
}

func protoState(vals ...float64) *pb.State {
	return &pb.State{Fields: []*pb.NamedVector{{Name: scenario.FieldRope, Values: vals}}}
}

// #region constructor-tests

func TestNewSimClientLazyWithoutDialTimeout(t *testing.T) {
	c, err := NewSimClient("localhost:1", 3, 0)
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}

func TestNewSimClientDialTimeoutFailsWhenUnreachable(t *testing.T) {
	start := time.Now()
	_, err := NewSimClient("localhost:1", 3, 100*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready")
	assert.Less(t, time.Since(start), 5*time.Second)
}

// #endregion constructor-tests

// #region propagate-tests

func TestPropagate_Success(t *testing.T) {
	mock := &mockRopeSim{
		propagateResp: &pb.PropagateResponse{
			States: []*pb.State{protoState(0.1, 0, 0.6, 0), protoState(0.2, 0, 0.7, 0)},
			Stdevs: []float64{0.01, 0.02},
		},
	}
	c := NewSimClientWithService(mock, 3)

	start := space.State{scenario.FieldRope: []float64{0, 0, 0.5, 0}}
	states, err := c.Propagate(context.Background(), testEnv(), start, [][]float64{{0, 0.1}, {0, 0.1}})
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, []float64{0.2, 0, 0.7, 0}, states[1][scenario.FieldRope])
	assert.Equal(t, 0.01, states[0].Stdev())
	assert.Equal(t, 0.02, states[1].Stdev())
}

func TestPropagate_ModelFailureWrapsErrPrediction(t *testing.T) {
	mock := &mockRopeSim{
		propagateErr: status.Error(codes.Internal, "nan in prediction"),
	}
	c := NewSimClientWithService(mock, 3)

	_, err := c.Propagate(context.Background(), testEnv(), space.State{}, [][]float64{{0, 0.1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrediction))
}

func TestPropagate_TransportFailureIsFatal(t *testing.T) {
	mock := &mockRopeSim{
		propagateErr: status.Error(codes.Unavailable, "connection refused"),
	}
	c := NewSimClientWithService(mock, 3)

	_, err := c.Propagate(context.Background(), testEnv(), space.State{}, [][]float64{{0, 0.1}})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrPrediction))
}

func TestPropagate_StateCountMismatchIsPrediction(t *testing.T) {
	mock := &mockRopeSim{
		propagateResp: &pb.PropagateResponse{States: []*pb.State{protoState(0, 0)}},
	}
	c := NewSimClientWithService(mock, 3)

	_, err := c.Propagate(context.Background(), testEnv(), space.State{}, [][]float64{{0, 0.1}, {0, 0.1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrediction))
}

// #endregion propagate-tests

// #region check-tests

func TestCheck_Success(t *testing.T) {
	mock := &mockRopeSim{checkResp: &pb.CheckResponse{Probability: 0.85}}
	c := NewSimClientWithService(mock, 3)

	states := []space.State{
		{scenario.FieldRope: []float64{0, 0}},
		{scenario.FieldRope: []float64{0.1, 0}},
	}
	prob, err := c.Check(context.Background(), testEnv(), states, [][]float64{{0, 0.1}})
	require.NoError(t, err)
	assert.Equal(t, 0.85, prob)
	assert.Equal(t, 3, c.Horizon())
}

func TestCheck_Error(t *testing.T) {
	mock := &mockRopeSim{checkErr: errors.New("check failed")}
	c := NewSimClientWithService(mock, 3)

	_, err := c.Check(context.Background(), testEnv(), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mock.checkErr))
}

// #endregion check-tests

// #region executor-tests

func TestExecute_Success(t *testing.T) {
	mock := &mockRopeSim{
		executeResp: &pb.ExecuteResponse{
			Actual: []*pb.State{protoState(0.1, 0), protoState(0.2, 0)},
		},
	}
	c := NewSimClientWithService(mock, 3)

	actual, err := c.Execute(context.Background(), [][]float64{{0, 0.1}, {0, 0.1}}, 1.0)
	require.NoError(t, err)
	require.Len(t, actual, 2)
	assert.Equal(t, []float64{0.2, 0}, actual[1][scenario.FieldRope])
}

func TestObserve_Success(t *testing.T) {
	mock := &mockRopeSim{
		observeResp: &pb.ObservationResponse{
			State: protoState(1, 2),
			Environment: &pb.Environment{
				XMin: -3, XMax: 3, YMin: -2, YMax: 2, Resolution: 0.05,
			},
		},
	}
	c := NewSimClientWithService(mock, 3)

	s, env, err := c.Observe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s[scenario.FieldRope])
	assert.Equal(t, -3.0, env.Extent.XMin)
	assert.Equal(t, 0.05, env.Resolution)
}

// #endregion executor-tests
