package main

import "github.com/dynagraph/dynagraph/internal/telemetry"

// Option customizes a cliConfig. Mirrors the functional-options shape
// used for constructing graph builders: each option mutates the
// config in place and ignores invalid input rather than panicking.
type Option func(cfg *cliConfig)

type cliConfig struct {
	vertices   int
	metricsAddr string
	trace      bool
	logFormat  telemetry.LogFormat
}

// DefaultConfig returns a cliConfig with sensible defaults: no metrics
// listener, no tracing, JSON logs.
func DefaultConfig() cliConfig {
	return cliConfig{
		vertices:  0,
		logFormat: telemetry.LogFormatJSON,
	}
}

func newCLIConfig(opts ...Option) cliConfig {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithVertices sets the solver's fixed vertex count.
func WithVertices(n int) Option {
	return func(cfg *cliConfig) {
		if n > 0 {
			cfg.vertices = n
		}
	}
}

// WithMetricsAddr enables the Prometheus listener at addr.
func WithMetricsAddr(addr string) Option {
	return func(cfg *cliConfig) {
		if addr != "" {
			cfg.metricsAddr = addr
		}
	}
}

// WithTrace enables stdout span tracing.
func WithTrace(on bool) Option {
	return func(cfg *cliConfig) { cfg.trace = on }
}

// WithLogFormat selects the slog handler format.
func WithLogFormat(format string) Option {
	return func(cfg *cliConfig) {
		if format == string(telemetry.LogFormatText) {
			cfg.logFormat = telemetry.LogFormatText
		} else {
			cfg.logFormat = telemetry.LogFormatJSON
		}
	}
}
