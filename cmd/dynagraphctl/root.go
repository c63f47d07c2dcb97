package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dynagraph/dynagraph/internal/telemetry"
)

var buildVersion = "dev"

var (
	flagVertices    int
	flagMetricsAddr string
	flagTrace       bool
	flagLogFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "dynagraphctl",
	Short: "Drive a dynagraph dynamic-connectivity solver from the command line",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.NewString()
		logger := telemetry.NewLogger(telemetry.LogFormat(flagLogFormat))
		logger.Info("dynagraphctl version", "version", buildVersion, "run_id", runID)
		fmt.Printf("dynagraphctl %s (run %s)\n", buildVersion, runID)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "json", "log output format: json|text")

	runCmd.Flags().IntVar(&flagVertices, "n", 0, "fixed vertex count (required)")
	runCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Prometheus listen address, e.g. :9090")
	runCmd.Flags().BoolVar(&flagTrace, "trace", false, "emit one stdout span per operation")
	_ = runCmd.MarkFlagRequired("n")

	rootCmd.AddCommand(runCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
