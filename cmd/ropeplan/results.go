package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/armlab/ropeplan/internal/config"
	"github.com/armlab/ropeplan/internal/results"
	"github.com/armlab/ropeplan/internal/scenario"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Summarize persisted trials and plans",
	RunE:  runResults,
}

func runResults(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	scen := scenario.NewRopeScenario(scenario.RopeConfig{
		NumLinks:    cfg.Rope.NumLinks,
		LinkLength:  cfg.Rope.LinkLength,
		MaxAngleRad: cfg.Rope.MaxAngleDeg * math.Pi / 180,
		MaxSpeed:    cfg.Rope.MaxSpeed,
		Dt:          cfg.Rope.Dt,
	})

	store, err := results.NewStore(cfg.DBPath, scen.Schema())
	if err != nil {
		return fmt.Errorf("opening results db: %w", err)
	}
	defer store.Close()

	sum, err := store.Summarize(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("trials:             %d\n", sum.Trials)
	fmt.Printf("goal reached:       %d (%.1f%%)\n", sum.GoalReached, sum.SuccessRate*100)
	fmt.Printf("plans:              %d\n", sum.Plans)
	fmt.Printf("exact plans:        %d\n", sum.ExactPlans)
	fmt.Printf("mean planning time: %.0f ms\n", sum.MeanPlanningMs)
	return nil
}
