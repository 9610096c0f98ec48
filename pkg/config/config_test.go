package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rodrigo1392/misc-tools/pkg/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Metrics.File)
	assert.Equal(t, 10*time.Second, cfg.Notify.Timeout)
	assert.Equal(t, "abaqus", cfg.Runner.Solver)
	assert.Equal(t, []string{"avi", "mkv", "mp4", "ts"}, cfg.Scan.Extensions)
	assert.Equal(t, 0, cfg.Scan.Workers)
	assert.InDelta(t, 0.005, cfg.Data.PeerTimeStep, 1e-12)
	assert.Equal(t, "light", cfg.Plot.Theme)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	configContent := `
logging:
  level: debug
  format: json

notify:
  token: "bot-token"
  chat_id: "12345"
  timeout: 30s

runner:
  solver: "abaqus-2021"

scan:
  extensions: ["avi"]
  workers: 4

data:
  peer_time_step: 0.01

plot:
  theme: dark
`

	tmpDir := t.TempDir()

	tmpFile, err := os.CreateTemp(tmpDir, "test-config-*.yaml")
	require.NoError(t, err)

	_, writeErr := tmpFile.WriteString(configContent)
	require.NoError(t, writeErr)

	tmpFile.Close()

	cfg, loadErr := config.LoadConfig(tmpFile.Name())
	require.NoError(t, loadErr)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "bot-token", cfg.Notify.Token)
	assert.Equal(t, "12345", cfg.Notify.ChatID)
	assert.Equal(t, 30*time.Second, cfg.Notify.Timeout)
	assert.Equal(t, "abaqus-2021", cfg.Runner.Solver)
	assert.Equal(t, []string{"avi"}, cfg.Scan.Extensions)
	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.InDelta(t, 0.01, cfg.Data.PeerTimeStep, 1e-12)
	assert.Equal(t, "dark", cfg.Plot.Theme)
}

func TestLoadConfigGoldenRoundTrip(t *testing.T) {
	t.Parallel()

	golden := map[string]any{
		"logging": map[string]any{"level": "error", "format": "json"},
		"metrics": map[string]any{"file": "/var/lib/misctools/run.prom"},
		"scan":    map[string]any{"workers": 2},
	}

	raw, err := yaml.Marshal(golden)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	cfg, loadErr := config.LoadConfig(path)
	require.NoError(t, loadErr)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/var/lib/misctools/run.prom", cfg.Metrics.File)
	assert.Equal(t, 2, cfg.Scan.Workers)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("MISCTOOLS_LOGGING_LEVEL", "warn")
	t.Setenv("MISCTOOLS_RUNNER_SOLVER", "abaqus-2022")
	t.Setenv("MISCTOOLS_NOTIFY_CHAT_ID", "67890")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "abaqus-2022", cfg.Runner.Solver)
	assert.Equal(t, "67890", cfg.Notify.ChatID)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{
			name:     "bad_log_level",
			content:  "logging:\n  level: loud\n",
			expected: config.ErrInvalidLogLevel,
		},
		{
			name:     "bad_log_format",
			content:  "logging:\n  format: xml\n",
			expected: config.ErrInvalidLogFormat,
		},
		{
			name:     "negative_workers",
			content:  "scan:\n  workers: -1\n",
			expected: config.ErrInvalidWorkers,
		},
		{
			name:     "zero_time_step",
			content:  "data:\n  peer_time_step: 0\n",
			expected: config.ErrInvalidTimeStep,
		},
		{
			name:     "bad_theme",
			content:  "plot:\n  theme: sepia\n",
			expected: config.ErrInvalidTheme,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			_, err := config.LoadConfig(path)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoggingConfigSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected slog.Level
	}{
		{name: "debug", level: "debug", expected: slog.LevelDebug},
		{name: "info", level: "info", expected: slog.LevelInfo},
		{name: "warn", level: "warn", expected: slog.LevelWarn},
		{name: "error", level: "error", expected: slog.LevelError},
		{name: "unknown_falls_back_to_info", level: "loud", expected: slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lc := config.LoggingConfig{Level: tc.level}
			assert.Equal(t, tc.expected, lc.SlogLevel())
		})
	}
}
