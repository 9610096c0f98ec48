package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/dataset"
	"github.com/rodrigo1392/misc-tools/pkg/strutil"
)

// NewDatasetCommand groups the result store subcommands.
func NewDatasetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Build and inspect model result stores",
	}

	cmd.AddCommand(
		newDatasetImportCommand(),
		newDatasetRestructureCommand(),
		newDatasetShowCommand(),
		newDatasetAttrsCommand(),
	)

	return cmd
}

func newDatasetImportCommand() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "import <archive.json>...",
		Short: "Import model array archives into a store",
		Long: `Import model array archives into a result store. Each archive is a
JSON object of dataset name to numeric vector and becomes a root group
named 1..N in input order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, keys, err := dataset.ImportArchives(args, target, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Store saved to %s\n", store.Path())
			fmt.Fprintf(out, "Models: %d\n", len(args))
			fmt.Fprintf(out, "Dataset keys: %s\n", strutil.JoinSpace(keys))

			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "Store path (default: first archive with a .mtd suffix)")

	return cmd
}

func newDatasetRestructureCommand() *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:   "restructure <store.mtd>",
		Short: "Swap model groups with variable datasets",
		Long: `Swap the layout of a result store: root groups stop being models and
become output variables, each collecting the vectors of every model.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := dataset.Open(args[0])
			if err != nil {
				return err
			}

			if restructureErr := store.Restructure(keys...); restructureErr != nil {
				return restructureErr
			}

			out := cmd.OutOrStdout()
			for _, line := range store.Structure() {
				fmt.Fprintln(out, line)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&keys, "keys", "k", nil, "Dataset keys to keep (default: every key seen)")

	return cmd
}

func newDatasetShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <store.mtd>",
		Short: "Print the group/dataset tree of a store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := dataset.Open(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range store.Structure() {
				fmt.Fprintln(out, line)
			}

			return nil
		},
	}
}

func newDatasetAttrsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attrs <store.mtd>",
		Short: "Print the attributes of every root group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := dataset.Open(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range store.FirstLevelAttrs() {
				fmt.Fprintln(out, line)
			}

			return nil
		},
	}
}
