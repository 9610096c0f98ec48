package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/params"
)

// NewParamsCommand groups the campaign input file subcommands.
func NewParamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Inspect campaign .cfg input files",
	}

	cmd.AddCommand(newParamsShowCommand())

	return cmd
}

func newParamsShowCommand() *cobra.Command {
	var zeroAsMissing bool

	cmd := &cobra.Command{
		Use:   "show <file.cfg>",
		Short: "Show every variable of a campaign input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := params.Load(args[0], params.LoadOptions{ZeroAsMissing: zeroAsMissing})
			if err != nil {
				return err
			}

			tbl := newTable()
			tbl.AppendHeader(table.Row{"Variable", "Type", "Value"})

			for _, key := range slices.Sorted(maps.Keys(loaded)) {
				value := loaded[key]
				if value == nil {
					tbl.AppendRow(table.Row{key, "none", ""})

					continue
				}

				tbl.AppendRow(table.Row{key, fmt.Sprintf("%T", value), fmt.Sprintf("%v", value)})
			}

			tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d variables", len(loaded))})

			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}

	cmd.Flags().BoolVar(&zeroAsMissing, "zero-as-missing", false, "Treat raw 0 values as not set")

	return cmd
}
