package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/tabular"
)

// NewDataCommand groups the raw result file subcommands.
func NewDataCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Reformat raw result records",
	}

	cmd.AddCommand(newDataPeerCommand(app))

	return cmd
}

func newDataPeerCommand(app *App) *cobra.Command {
	var timeStep float64

	cmd := &cobra.Command{
		Use:   "peer <file>",
		Short: "Reformat a PEER strong-motion record as a time series CSV",
		Long: `Reformat a PEER strong-motion record as a two-column CSV of time and
acceleration. The record's header lines are dropped and its wrapped
data rows are flattened to one value per sample.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step := timeStep
			if !cmd.Flags().Changed("time-step") && app.Config != nil {
				step = app.Config.Data.PeerTimeStep
			}

			path, err := tabular.ReformatPEER(args[0], step)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "PEER record reformatted to %s\n", path)

			return nil
		},
	}

	cmd.Flags().Float64Var(&timeStep, "time-step", tabular.DefaultTimeStep, "Sampling interval in seconds")

	return cmd
}
