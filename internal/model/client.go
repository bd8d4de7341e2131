package model

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/armlab/ropeplan/gen/ropesim"
	"github.com/armlab/ropeplan/internal/scenario"
	"github.com/armlab/ropeplan/internal/space"
)

// #region client-struct

// SimClient talks to the Python ropesim service, which hosts the learned
// dynamics model, the classifier, and the Gazebo executor. It implements
// Dynamics, Classifier, and Executor.
type SimClient struct {
	conn    *grpc.ClientConn
	client  pb.RopeSimClient
	horizon int
}

// #endregion client-struct

// #region constructor

// NewSimClient connects to the ropesim gRPC service. horizon is the
// classifier's trained sequence horizon (the service does not report it).
// A positive dialTimeout blocks until the connection is ready, so an
// unreachable service fails at startup with a diagnostic instead of on
// the first mid-trial RPC; zero keeps the lazy connect.
func NewSimClient(addr string, horizon int, dialTimeout time.Duration) (*SimClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	if dialTimeout > 0 {
		if err := waitReady(conn, dialTimeout); err != nil {
			conn.Close()
			return nil, fmt.Errorf("ropesim at %s: %w", addr, err)
		}
	}
	return &SimClient{
		conn:    conn,
		client:  pb.NewRopeSimClient(conn),
		horizon: horizon,
	}, nil
}

func waitReady(conn *grpc.ClientConn, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	conn.Connect()
	for {
		s := conn.GetState()
		if s == connectivity.Ready {
			return nil
		}
		if !conn.WaitForStateChange(ctx, s) {
			return fmt.Errorf("connection not ready within %s", timeout)
		}
	}
}

// NewSimClientWithService creates a SimClient with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewSimClientWithService(svc pb.RopeSimClient, horizon int) *SimClient {
	return &SimClient{client: svc, horizon: horizon}
}

// Close shuts down the gRPC connection.
func (c *SimClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region dynamics

// Propagate runs the learned dynamics model over the action sequence.
// Model-side failures (Internal/Unknown status) wrap ErrPrediction so the
// propagator prunes the branch; transport-level failures surface as-is,
// which aborts the trial.
func (c *SimClient) Propagate(ctx context.Context, env scenario.Environment, start space.State, actions [][]float64) ([]space.State, error) {
	resp, err := c.client.Propagate(ctx, &pb.PropagateRequest{
		Environment: environmentToProto(env),
		Start:       stateToProto(start),
		Actions:     actionsToProto(actions),
	})
	if err != nil {
		if code := status.Code(err); code == codes.Internal || code == codes.Unknown {
			return nil, fmt.Errorf("%w: %v", ErrPrediction, err)
		}
		return nil, fmt.Errorf("propagate rpc: %w", err)
	}
	if len(resp.States) != len(actions) {
		return nil, fmt.Errorf("%w: got %d states for %d actions", ErrPrediction, len(resp.States), len(actions))
	}

	states := make([]space.State, len(resp.States))
	for i, ps := range resp.States {
		s := stateFromProto(ps)
		if i < len(resp.Stdevs) {
			s.SetStdev(resp.Stdevs[i])
		}
		states[i] = s
	}
	return states, nil
}

// #endregion dynamics

// #region classifier

// Check runs the feasibility classifier over a transition window.
func (c *SimClient) Check(ctx context.Context, env scenario.Environment, states []space.State, actions [][]float64) (float64, error) {
	resp, err := c.client.CheckConstraint(ctx, &pb.CheckRequest{
		Environment: environmentToProto(env),
		States:      statesToProto(states),
		Actions:     actionsToProto(actions),
	})
	if err != nil {
		return 0, fmt.Errorf("check constraint rpc: %w", err)
	}
	return resp.Probability, nil
}

// Horizon returns the classifier's trained sequence horizon.
func (c *SimClient) Horizon() int {
	return c.horizon
}

// #endregion classifier

// #region executor

// Execute runs the action sequence on the simulator and returns the
// states that actually occurred.
func (c *SimClient) Execute(ctx context.Context, actions [][]float64, dt float64) ([]space.State, error) {
	resp, err := c.client.ExecuteTrajectory(ctx, &pb.ExecuteRequest{
		Actions: actionsToProto(actions),
		Dt:      dt,
	})
	if err != nil {
		return nil, fmt.Errorf("execute trajectory rpc: %w", err)
	}
	actual := make([]space.State, len(resp.Actual))
	for i, ps := range resp.Actual {
		actual[i] = stateFromProto(ps)
	}
	return actual, nil
}

// Observe fetches the current ground-truth state and environment.
func (c *SimClient) Observe(ctx context.Context) (space.State, scenario.Environment, error) {
	resp, err := c.client.GetObservation(ctx, &pb.ObservationRequest{})
	if err != nil {
		return nil, scenario.Environment{}, fmt.Errorf("get observation rpc: %w", err)
	}
	return stateFromProto(resp.State), environmentFromProto(resp.Environment), nil
}

// #endregion executor

// #region conversions

func stateToProto(s space.State) *pb.State {
	out := &pb.State{Fields: make([]*pb.NamedVector, 0, len(s))}
	for _, name := range space.SortedNames(s) {
		out.Fields = append(out.Fields, &pb.NamedVector{Name: name, Values: s[name]})
	}
	return out
}

func statesToProto(states []space.State) []*pb.State {
	out := make([]*pb.State, len(states))
	for i, s := range states {
		out[i] = stateToProto(s)
	}
	return out
}

func stateFromProto(ps *pb.State) space.State {
	s := make(space.State, len(ps.GetFields()))
	for _, f := range ps.GetFields() {
		v := make([]float64, len(f.Values))
		copy(v, f.Values)
		s[f.Name] = v
	}
	return s
}

func actionsToProto(actions [][]float64) []*pb.Action {
	out := make([]*pb.Action, len(actions))
	for i, a := range actions {
		out[i] = &pb.Action{Values: a}
	}
	return out
}

func environmentToProto(env scenario.Environment) *pb.Environment {
	return &pb.Environment{
		XMin:       env.Extent.XMin,
		XMax:       env.Extent.XMax,
		YMin:       env.Extent.YMin,
		YMax:       env.Extent.YMax,
		Resolution: env.Resolution,
		Grid:       env.Grid,
	}
}

func environmentFromProto(pe *pb.Environment) scenario.Environment {
	return scenario.Environment{
		Extent: scenario.Extent{
			XMin: pe.GetXMin(),
			XMax: pe.GetXMax(),
			YMin: pe.GetYMin(),
			YMax: pe.GetYMax(),
		},
		Resolution: pe.GetResolution(),
		Grid:       pe.GetGrid(),
	}
}

// #endregion conversions
