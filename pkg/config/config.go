// Package config provides configuration loading and validation for the
// misctools CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rodrigo1392/misc-tools/pkg/runner"
	"github.com/rodrigo1392/misc-tools/pkg/tabular"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel  = errors.New("invalid logging level")
	ErrInvalidLogFormat = errors.New("invalid logging format")
	ErrInvalidWorkers   = errors.New("scan workers must not be negative")
	ErrInvalidTimeStep  = errors.New("peer time step must be positive")
	ErrInvalidTheme     = errors.New("invalid plot theme")
)

// Default configuration values.
const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultNotifyTimeout = "10s"
	defaultTheme         = "light"
)

// Allowed enumeration values.
var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
	themes     = []string{"light", "dark"}
)

// defaultScanExtensions lists the container extensions the media scan
// checks by default.
var defaultScanExtensions = []string{"avi", "mkv", "mp4", "ts"}

// Config holds all configuration for the misctools CLI.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Notify  NotifyConfig  `mapstructure:"notify"`
	Runner  RunnerConfig  `mapstructure:"runner"`
	Scan    ScanConfig    `mapstructure:"scan"`
	Data    DataConfig    `mapstructure:"data"`
	Plot    PlotConfig    `mapstructure:"plot"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SlogLevel maps the configured level name to its slog severity.
func (lc LoggingConfig) SlogLevel() slog.Level {
	switch lc.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MetricsConfig holds the metrics textfile configuration.
type MetricsConfig struct {
	// File is the Prometheus textfile written on exit. Empty disables
	// metrics.
	File string `mapstructure:"file"`
}

// NotifyConfig holds the Telegram notifier configuration.
type NotifyConfig struct {
	Token   string        `mapstructure:"token"`
	ChatID  string        `mapstructure:"chat_id"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RunnerConfig holds the solver runner configuration.
type RunnerConfig struct {
	Solver      string `mapstructure:"solver"`
	OptionsFile string `mapstructure:"options_file"`
}

// ScanConfig holds the media scan configuration.
type ScanConfig struct {
	Extensions []string `mapstructure:"extensions"`
	// Workers is the scan concurrency; zero selects one worker per CPU.
	Workers int `mapstructure:"workers"`
}

// DataConfig holds result post-processing configuration.
type DataConfig struct {
	PeerTimeStep float64 `mapstructure:"peer_time_step"`
}

// PlotConfig holds report page configuration.
type PlotConfig struct {
	Theme string `mapstructure:"theme"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("config")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/misctools")
	}

	viperCfg.SetEnvPrefix("MISCTOOLS")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Logging defaults.
	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.format", defaultLogFormat)

	// Metrics defaults.
	viperCfg.SetDefault("metrics.file", "")

	// Notify defaults. Token and chat id default to empty so the keys
	// are registered and can be set from the environment alone.
	viperCfg.SetDefault("notify.token", "")
	viperCfg.SetDefault("notify.chat_id", "")
	viperCfg.SetDefault("notify.timeout", defaultNotifyTimeout)

	// Runner defaults.
	viperCfg.SetDefault("runner.solver", runner.DefaultSolver)
	viperCfg.SetDefault("runner.options_file", "")

	// Scan defaults.
	viperCfg.SetDefault("scan.extensions", defaultScanExtensions)
	viperCfg.SetDefault("scan.workers", 0)

	// Data defaults.
	viperCfg.SetDefault("data.peer_time_step", tabular.DefaultTimeStep)

	// Plot defaults.
	viperCfg.SetDefault("plot.theme", defaultTheme)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if !slices.Contains(logLevels, config.Logging.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	if !slices.Contains(logFormats, config.Logging.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	if config.Scan.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, config.Scan.Workers)
	}

	if config.Data.PeerTimeStep <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidTimeStep, config.Data.PeerTimeStep)
	}

	if !slices.Contains(themes, config.Plot.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, config.Plot.Theme)
	}

	return nil
}
