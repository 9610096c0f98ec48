package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/mediacheck"
)

// NewScanCommand builds the media integrity scan command.
func NewScanCommand(app *App) *cobra.Command {
	var (
		exts    []string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Check media files for corrupted containers",
		Long: `Check every media file under a directory for a corrupted container,
descending into subdirectories. A file fails when its header does not
match the signature of its extension's container format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			scanExts := exts
			if len(scanExts) == 0 && app.Config != nil {
				scanExts = app.Config.Scan.Extensions
			}

			scanWorkers := workers
			if !cmd.Flags().Changed("workers") && app.Config != nil {
				scanWorkers = app.Config.Scan.Workers
			}

			errOut := cmd.ErrOrStderr()
			progress := func(done, total int) {
				fmt.Fprintf(errOut, "\rChecking file %d of %d", done, total)
			}

			var summary mediacheck.Summary

			err := app.timeOp(ctx, "scan", func() error {
				var scanErr error
				summary, scanErr = mediacheck.Scan(ctx, args[0], scanExts, scanWorkers, progress)

				return scanErr
			})

			if summary.Total() > 0 {
				fmt.Fprintln(errOut)
			}

			if err != nil {
				return err
			}

			app.Metrics.AddItems(ctx, "scan", "file", int64(summary.Total()))
			app.Metrics.AddItems(ctx, "scan", "corrupt", int64(summary.Bad))
			app.Logger.DebugContext(ctx, "scan finished",
				slog.String("dir", args[0]),
				slog.Int("good", summary.Good),
				slog.Int("bad", summary.Bad))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Good files: %d\n", summary.Good)
			fmt.Fprintf(out, "Bad files: %d\n", summary.Bad)

			for _, failure := range summary.Failures {
				warnColor.Fprintf(out, "%s: %s\n", failure.Path, failure.Reason)
			}

			if summary.Bad == 0 {
				okColor.Fprintf(out, "Media files in %s in good condition\n", args[0])
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&exts, "ext", "e", nil, "Container extensions to check")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent checks (0 = one per CPU)")

	return cmd
}
