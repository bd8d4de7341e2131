package main

import (
	"fmt"
	"math"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/armlab/ropeplan/internal/config"
	"github.com/armlab/ropeplan/internal/execute"
	"github.com/armlab/ropeplan/internal/logging"
	"github.com/armlab/ropeplan/internal/model"
	"github.com/armlab/ropeplan/internal/planner"
	"github.com/armlab/ropeplan/internal/results"
	"github.com/armlab/ropeplan/internal/scenario"
)

var (
	flagTrials      int
	flagNoExecution bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run planning trials against the ropesim service",
	Long: `Run plan-execute-replan trials. Each trial samples a goal, plans a
trajectory under the learned dynamics model, executes it, and replans
from the observed state whenever execution diverges from the plan.

Examples:
  # One trial with defaults
  ropeplan run

  # Plan-only dataset generation
  ropeplan run --trials 100 --no-execution`,
	RunE: runTrials,
}

func init() {
	runCmd.Flags().IntVar(&flagTrials, "trials", 0, "number of trials (overrides config)")
	runCmd.Flags().BoolVar(&flagNoExecution, "no-execution", false, "plan only, skip execution")
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if flagTrials > 0 {
		cfg.Trial.Count = flagTrials
	}
	if flagNoExecution {
		cfg.Trial.NoExecution = true
	}

	logger, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	scen := scenario.NewRopeScenario(scenario.RopeConfig{
		NumLinks:    cfg.Rope.NumLinks,
		LinkLength:  cfg.Rope.LinkLength,
		MaxAngleRad: cfg.Rope.MaxAngleDeg * math.Pi / 180,
		MaxSpeed:    cfg.Rope.MaxSpeed,
		Dt:          cfg.Rope.Dt,
	})

	sim, err := model.NewSimClient(cfg.Sim.Addr, cfg.Sim.ClassifierHorizon, cfg.Sim.DialTimeout)
	if err != nil {
		return fmt.Errorf("connecting to ropesim at %s: %w", cfg.Sim.Addr, err)
	}
	defer sim.Close()

	store, err := results.NewStore(cfg.DBPath, scen.Schema())
	if err != nil {
		return fmt.Errorf("opening results db: %w", err)
	}
	defer store.Close()

	seed := cfg.Planner.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pl, err := planner.New(scen, sim, sim, planner.Params{
		AcceptThreshold:   cfg.Planner.AcceptThreshold,
		ClassifierHorizon: cfg.Sim.ClassifierHorizon,
		GoalThreshold:     cfg.Planner.GoalThreshold,
		GoalBias:          cfg.Planner.GoalBias,
		Timeout:           cfg.Planner.Timeout,
		MinControlSteps:   cfg.Planner.MinControlSteps,
		MaxControlSteps:   cfg.Planner.MaxControlSteps,
		MaxSampleCount:    cfg.Planner.MaxSampleCount,
	}, seed, logger)
	if err != nil {
		return err
	}

	driver := execute.NewDriver(scen, pl, sim, store, execute.Config{
		MaxAttempts:         cfg.Trial.MaxAttempts,
		Timeout:             cfg.Trial.Timeout,
		RetryOnFailure:      cfg.Trial.RetryOnFailure,
		NoExecution:         cfg.Trial.NoExecution,
		DivergenceTolerance: cfg.Trial.DivergenceTolerance,
		GoalThreshold:       cfg.Planner.GoalThreshold,
		Dt:                  cfg.Rope.Dt,
	}, seed+1, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting trials",
		zap.Int("count", cfg.Trial.Count),
		zap.String("sim_addr", cfg.Sim.Addr),
		zap.Int64("seed", seed))

	for i := 0; i < cfg.Trial.Count; i++ {
		if ctx.Err() != nil {
			logger.Info("interrupted", zap.Int("completed_trials", i))
			break
		}
		rec, err := driver.RunTrial(ctx)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}
		fmt.Printf("trial %d/%d %s: %s (%d attempts, %d replans)\n",
			i+1, cfg.Trial.Count, rec.ID, rec.Outcome, len(rec.Attempts), rec.Replans)
	}
	return nil
}
