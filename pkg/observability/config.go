// Package observability provides metrics and structured logging for
// the misctools CLI. Metrics flow through an OTel meter into a
// Prometheus registry and land in a textfile on shutdown, where a
// node-exporter textfile collector can pick them up; logging is slog.
package observability

import "log/slog"

const (
	// defaultServiceName is the OTel resource service name.
	defaultServiceName = "misctools"

	// defaultShutdownTimeoutSec is the default shutdown timeout in seconds.
	defaultShutdownTimeoutSec = 5
)

// Config holds all observability configuration.
type Config struct {
	// ServiceName is the OTel resource service name.
	ServiceName string

	// ServiceVersion is the semantic version of the running binary.
	ServiceVersion string

	// MetricsFile is the Prometheus textfile written on shutdown.
	// Empty disables metrics; the meter becomes a no-op.
	MetricsFile string

	// LogLevel controls the minimum slog severity.
	LogLevel slog.Level

	// LogJSON enables JSON-formatted log output.
	LogJSON bool

	// ShutdownTimeoutSec is the maximum seconds to wait for the
	// textfile write and pipeline teardown on shutdown.
	ShutdownTimeoutSec int
}

// DefaultConfig returns a Config with sensible defaults for zero-config startup.
func DefaultConfig() Config {
	return Config{
		ServiceName:        defaultServiceName,
		LogLevel:           slog.LevelInfo,
		ShutdownTimeoutSec: defaultShutdownTimeoutSec,
	}
}
