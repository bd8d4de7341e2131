// Package main implements the ropeplan CLI: rope-manipulation planning
// trials against the ropesim inference service, plus results analysis.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "ropeplan",
	Short:   "Kinodynamic planner for rope manipulation under learned dynamics",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resultsCmd)
}
