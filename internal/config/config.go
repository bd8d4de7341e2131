// Package config loads the ropeplan configuration with precedence
// defaults < YAML file < environment (ROPEPLAN_ prefix).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "ROPEPLAN_"

// #region types

// SimConfig locates the external simulation/inference service.
type SimConfig struct {
	Addr              string        `koanf:"addr"`
	ClassifierHorizon int           `koanf:"classifier_horizon"`
	DialTimeout       time.Duration `koanf:"dial_timeout"`
}

// PlannerConfig holds the per-episode planner parameters.
type PlannerConfig struct {
	AcceptThreshold float64       `koanf:"accept_threshold"`
	GoalThreshold   float64       `koanf:"goal_threshold"`
	GoalBias        float64       `koanf:"goal_bias"`
	Timeout         time.Duration `koanf:"timeout"`
	MinControlSteps int           `koanf:"min_control_steps"`
	MaxControlSteps int           `koanf:"max_control_steps"`
	MaxSampleCount  int           `koanf:"max_sample_count"`
	Seed            int64         `koanf:"seed"`
}

// RopeConfig describes the rope being planned for.
type RopeConfig struct {
	NumLinks    int     `koanf:"num_links"`
	LinkLength  float64 `koanf:"link_length"`
	MaxAngleDeg float64 `koanf:"max_angle_deg"`
	MaxSpeed    float64 `koanf:"max_speed"`
	Dt          float64 `koanf:"dt"`
}

// TrialConfig bounds the execute/replan loop.
type TrialConfig struct {
	Count               int           `koanf:"count"`
	MaxAttempts         int           `koanf:"max_attempts"`
	Timeout             time.Duration `koanf:"timeout"`
	RetryOnFailure      bool          `koanf:"retry_on_failure"`
	NoExecution         bool          `koanf:"no_execution"`
	DivergenceTolerance float64       `koanf:"divergence_tolerance"`
}

// Config is the full ropeplan configuration.
type Config struct {
	Sim      SimConfig     `koanf:"sim"`
	Planner  PlannerConfig `koanf:"planner"`
	Rope     RopeConfig    `koanf:"rope"`
	Trial    TrialConfig   `koanf:"trial"`
	DBPath   string        `koanf:"db_path"`
	LogLevel string        `koanf:"log_level"`
	// MetricsAddr exposes /metrics when non-empty, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`
}

// #endregion types

// #region load

// Load reads the configuration. configPath may be empty; a missing file
// is not an error, the defaults and environment still apply.
//
// Environment mapping: ROPEPLAN_PLANNER_GOAL_BIAS -> planner.goal_bias,
// ROPEPLAN_DB_PATH -> db_path.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	// Split on the first underscore only: section, then field name with
	// its underscores intact.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 || !isSection(parts[0]) {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func isSection(name string) bool {
	switch name {
	case "sim", "planner", "rope", "trial":
		return true
	}
	return false
}

// #endregion load

// #region defaults

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sim: SimConfig{
			Addr:              "localhost:50051",
			ClassifierHorizon: 3,
			DialTimeout:       5 * time.Second,
		},
		Planner: PlannerConfig{
			AcceptThreshold: 0.5,
			GoalThreshold:   0.05,
			GoalBias:        0.1,
			Timeout:         60 * time.Second,
			MinControlSteps: 1,
			MaxControlSteps: 50,
			MaxSampleCount:  100,
			Seed:            0,
		},
		Rope: RopeConfig{
			NumLinks:    2,
			LinkLength:  0.5,
			MaxAngleDeg: 30,
			MaxSpeed:    0.25,
			Dt:          1.0,
		},
		Trial: TrialConfig{
			Count:               1,
			MaxAttempts:         10,
			Timeout:             10 * time.Minute,
			RetryOnFailure:      true,
			NoExecution:         false,
			DivergenceTolerance: 0.25,
		},
		DBPath:   "ropeplan.db",
		LogLevel: "info",
	}
}

// #endregion defaults

// #region validate

// Validate rejects configurations the planner cannot run with.
func (c *Config) Validate() error {
	if c.Sim.Addr == "" {
		return fmt.Errorf("sim.addr must be set")
	}
	if c.Sim.ClassifierHorizon < 2 {
		return fmt.Errorf("sim.classifier_horizon must be >= 2, got %d", c.Sim.ClassifierHorizon)
	}
	if c.Planner.AcceptThreshold < 0 || c.Planner.AcceptThreshold > 1 {
		return fmt.Errorf("planner.accept_threshold must be in [0,1], got %v", c.Planner.AcceptThreshold)
	}
	if c.Planner.GoalBias < 0 || c.Planner.GoalBias > 1 {
		return fmt.Errorf("planner.goal_bias must be in [0,1], got %v", c.Planner.GoalBias)
	}
	if c.Planner.MinControlSteps < 1 || c.Planner.MaxControlSteps < c.Planner.MinControlSteps {
		return fmt.Errorf("invalid planner control step bounds [%d, %d]",
			c.Planner.MinControlSteps, c.Planner.MaxControlSteps)
	}
	if c.Rope.NumLinks < 1 {
		return fmt.Errorf("rope.num_links must be >= 1, got %d", c.Rope.NumLinks)
	}
	if c.Rope.LinkLength <= 0 {
		return fmt.Errorf("rope.link_length must be > 0, got %v", c.Rope.LinkLength)
	}
	if c.Trial.MaxAttempts < 1 {
		return fmt.Errorf("trial.max_attempts must be >= 1, got %d", c.Trial.MaxAttempts)
	}
	if c.Trial.DivergenceTolerance <= 0 {
		return fmt.Errorf("trial.divergence_tolerance must be > 0, got %v", c.Trial.DivergenceTolerance)
	}
	return nil
}

// #endregion validate
