// Package telemetry is the host-attached observability layer for
// cmd/dynagraphctl: structured logging, Prometheus metrics, and
// OpenTelemetry tracing. Nothing here is imported by core2c, ett, lct,
// or seq — those packages take no logger, do no logging, and stay
// dependency-free of this package's stack.
package telemetry
