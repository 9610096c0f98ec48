package commands

import (
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/fsutil"
)

// NewFilesCommand groups the folder inspection and file name surgery
// subcommands.
func NewFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List, find, size and rename campaign files",
	}

	cmd.AddCommand(
		newFilesListCommand(),
		newFilesFindCommand(),
		newFilesWriteListCommand(),
		newFilesRenumberCommand(),
		newFilesSizeCommand(),
		newFilesBackupCommand(),
	)

	return cmd
}

func newFilesListCommand() *cobra.Command {
	var (
		recursive bool
		fullPath  bool
		exts      []string
		substr    string
	)

	cmd := &cobra.Command{
		Use:   "list <dir>",
		Short: "List files in natural order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fsutil.ListOptions{Recursive: recursive, FullPath: fullPath}

			var (
				files   []string
				listErr error
			)

			switch {
			case len(exts) > 0:
				files, listErr = fsutil.ListWithExtension(args[0], opts, exts...)
			case substr != "":
				files, listErr = fsutil.ListWithSubstring(args[0], opts, substr)
			default:
				files, listErr = fsutil.ListFiles(args[0], opts)
			}
			if listErr != nil {
				return listErr
			}

			for _, file := range files {
				fmt.Fprintln(cmd.OutOrStdout(), file)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVar(&fullPath, "full-path", false, "Print full paths")
	cmd.Flags().StringSliceVarP(&exts, "ext", "e", nil, "Keep only these extensions")
	cmd.Flags().StringVar(&substr, "substring", "", "Keep only names containing this substring")

	return cmd
}

func newFilesFindCommand() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "find <dir> <name>",
		Short: "Find a file by exact name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := fsutil.FindFile(args[0], args[1], recursive)
			if err != nil {
				return err
			}

			for _, match := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), match)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")

	return cmd
}

func newFilesWriteListCommand() *cobra.Command {
	var (
		output    string
		recursive bool
		fullPath  bool
	)

	cmd := &cobra.Command{
		Use:   "write-list <dir>",
		Short: "Write the folder listing to a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fsutil.ListOptions{Recursive: recursive, FullPath: fullPath}

			path, err := fsutil.WriteFileList(args[0], output, opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "File list written to %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Target text file (default: <dir>/files_list.txt)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVar(&fullPath, "full-path", false, "Write full paths")

	return cmd
}

func newFilesRenumberCommand() *cobra.Command {
	var (
		delta int
		exts  []string
	)

	cmd := &cobra.Command{
		Use:   "renumber <dir>",
		Short: "Shift the trailing number of every file name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fsutil.ListOptions{FullPath: true}

			var (
				files   []string
				listErr error
			)

			if len(exts) > 0 {
				files, listErr = fsutil.ListWithExtension(args[0], opts, exts...)
			} else {
				files, listErr = fsutil.ListFiles(args[0], opts)
			}
			if listErr != nil {
				return listErr
			}

			// Positive deltas rename highest numbers first so a shifted
			// name never lands on a file still waiting its turn.
			if delta > 0 {
				slices.Reverse(files)
			}

			renamed, err := fsutil.RenumberAll(files, delta)

			for _, path := range renamed {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			return err
		},
	}

	cmd.Flags().IntVarP(&delta, "delta", "d", 0, "Amount added to each trailing number")
	cmd.Flags().StringSliceVarP(&exts, "ext", "e", nil, "Keep only these extensions")

	mustMarkRequired(cmd, "delta")

	return cmd
}

func newFilesSizeCommand() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "size <dir>...",
		Short: "Report folder sizes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := newTable()
			tbl.AppendHeader(table.Row{"Folder", "MB", "Size"})

			var total int64

			for _, dir := range args {
				size, err := fsutil.TreeSize(dir, recursive)
				if err != nil {
					return err
				}

				total += size
				tbl.AppendRow(table.Row{dir, fsutil.SizeMB(size), humanize.IBytes(uint64(size))})
			}

			if len(args) > 1 {
				tbl.AppendFooter(table.Row{"Total", fsutil.SizeMB(total), humanize.IBytes(uint64(total))})
			}

			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", true, "Count subdirectories too")

	return cmd
}

func newFilesBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Sync the old_ backup of a file",
		Long: `Sync the old_-prefixed backup of a file. When the backup already
exists it is restored over the file, reverting any changes since the
backup was taken; otherwise the current file becomes the backup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := fsutil.SyncBackup(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Backup in sync for %s\n", path)

			return nil
		},
	}
}

// mustMarkRequired marks a registered flag required. The flag name is
// ours, so a failure is a programming error.
func mustMarkRequired(cmd *cobra.Command, name string) {
	err := cmd.MarkFlagRequired(name)
	if err != nil {
		panic(err)
	}
}
