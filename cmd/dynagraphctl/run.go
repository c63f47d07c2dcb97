package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dynagraph/dynagraph/core2c"
	"github.com/dynagraph/dynagraph/internal/telemetry"
)

// runCmd drives a single in-process solver from stdin: one command per
// line, one result (or a stderr diagnostic) per line.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a solver over a fixed vertex count, reading commands from stdin",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := newCLIConfig(
		WithVertices(flagVertices),
		WithMetricsAddr(flagMetricsAddr),
		WithTrace(flagTrace),
		WithLogFormat(flagLogFormat),
	)

	logger := telemetry.NewLogger(cfg.logFormat)

	var tracer *telemetry.Tracer
	if cfg.trace {
		t, err := telemetry.NewStdoutTracer()
		if err != nil {
			return fmt.Errorf("starting tracer: %w", err)
		}
		tracer = t
		defer func() { _ = tracer.Shutdown(context.Background()) }()
	}

	var metrics *telemetry.Metrics
	if cfg.metricsAddr != "" {
		metrics = telemetry.NewMetrics()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := metrics.Serve(ctx, cfg.metricsAddr); err != nil {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
	}

	sess := &session{
		solver:  core2c.New(cfg.vertices),
		metrics: metrics,
		tracer:  tracer,
		logger:  logger,
	}

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	hadError := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if err := sess.dispatch(ctx, fields); err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			hadError = true
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	if hadError {
		os.Exit(1)
	}
	return nil
}
