// Package commands implements CLI command handlers for misctools.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/config"
	"github.com/rodrigo1392/misc-tools/pkg/observability"
	"github.com/rodrigo1392/misc-tools/pkg/version"
)

// App carries the loaded configuration and the observability providers
// shared by every subcommand. Commands receive it from the root
// constructor; its fields are populated by bootstrap before any RunE
// fires.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.OpMetrics

	shutdown func(ctx context.Context) error
}

// Close flushes the metrics textfile and releases observability
// resources. Safe to call when bootstrap never ran.
func (a *App) Close(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}

	return a.shutdown(ctx)
}

// timeOp runs fn and records its duration and outcome under the given
// operation name.
func (a *App) timeOp(ctx context.Context, op string, fn func() error) error {
	start := time.Now()

	err := fn()

	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError
	}

	a.Metrics.RecordOp(ctx, op, status, time.Since(start))

	return err
}

type rootOptions struct {
	configPath string
	verbose    bool
	quiet      bool
	noColor    bool
}

func (a *App) bootstrap(opts rootOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if opts.noColor {
		color.NoColor = true
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.MetricsFile = cfg.Metrics.File
	obsCfg.LogLevel = cfg.Logging.SlogLevel()
	obsCfg.LogJSON = cfg.Logging.Format == "json"

	if opts.verbose {
		obsCfg.LogLevel = slog.LevelDebug
	}

	if opts.quiet {
		obsCfg.LogLevel = slog.LevelError
	}

	providers, initErr := observability.Init(obsCfg)
	if initErr != nil {
		return fmt.Errorf("init observability: %w", initErr)
	}

	metrics, metricsErr := observability.NewOpMetrics(providers.Meter)
	if metricsErr != nil {
		return fmt.Errorf("create metrics: %w", metricsErr)
	}

	a.Config = cfg
	a.Logger = providers.Logger
	a.Metrics = metrics
	a.shutdown = providers.Shutdown

	return nil
}

// Execute runs the misctools command tree and flushes observability on
// the way out, even when the command failed.
func Execute() error {
	app := &App{}
	rootCmd := newRootCommand(app)

	runErr := rootCmd.Execute()

	closeErr := app.Close(context.Background())
	if runErr != nil {
		return runErr
	}

	return closeErr
}

func newRootCommand(app *App) *cobra.Command {
	opts := rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "misctools",
		Short: "Utilities for parametric simulation campaigns",
		Long: `misctools collects the helpers used around parametric simulation
campaigns: campaign input files, solver runs, result stores, CSV
post-processing, media integrity scans and HTML report pages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.bootstrap(opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress non-error logs")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	// Add commands.
	rootCmd.AddCommand(NewFilesCommand())
	rootCmd.AddCommand(NewParamsCommand())
	rootCmd.AddCommand(NewMathCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewDatasetCommand())
	rootCmd.AddCommand(NewDataCommand(app))
	rootCmd.AddCommand(NewScanCommand(app))
	rootCmd.AddCommand(NewNotifyCommand(app))
	rootCmd.AddCommand(NewJobsCommand(app))
	rootCmd.AddCommand(NewPlotCommand(app))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
