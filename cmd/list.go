// =============================================================================
// Theatre Statements - List Command
// =============================================================================
//
// COMMAND USAGE:
//   statements list [--output-dir <dir>]
//
// Prints the persisted statements in the statements directory, one path per
// line, oldest first.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/theatre-statements/pkg/utils"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List persisted statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fm := utils.NewFileManager(a.cfg.Output.Dir)
			out := cmd.OutOrStdout()

			if !utils.FileExists(fm.OutputDir) {
				fmt.Fprintln(out, statusLine(true, "No statements in "+fm.OutputDir))
				return nil
			}

			files, err := fm.ListStatements()
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(out, f)
			}
			a.log.Debug("listed statements", "output_dir", fm.OutputDir, "count", len(files))
			return nil
		},
	}

	cmd.Flags().String("output-dir", utils.DefaultStatementsDir, "Directory statements are saved to")
	a.bindFlag(cmd, "output.dir", "output-dir")

	return cmd
}
