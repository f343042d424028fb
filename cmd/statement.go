// =============================================================================
// Theatre Statements - Statement Command
// =============================================================================
//
// COMMAND USAGE:
//   statements statement --invoice <file> --plays <file> [flags]
//
// FLAGS:
//   --invoice     : Invoice file (.yaml, .yml, .json, .csv, .xlsx)
//   --plays       : Play registry file (same formats)
//   --format      : txt (default) or xml
//   --customer    : Customer name for invoices that do not carry one
//   --output-dir  : Where XML statements are saved (config: output.dir)
//   --sheet       : XLSX sheet to read (config: input.sheet)
//   --delimiter   : CSV field separator (config: input.csv_delimiter)
//
// PIPELINE:
//   1. Parse the format
//   2. Load and validate the play registry and the invoice
//   3. Produce the statement (XML statements are persisted)
//   4. Print the statement to stdout and, for XML, the saved path to stderr
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"

	"github.com/ginjaninja78/theatre-statements/internal/statement"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/ginjaninja78/theatre-statements/pkg/utils"
	"github.com/spf13/cobra"
)

type statementOptions struct {
	invoicePath string
	playsPath   string
	format      string
	customer    string
}

func newStatementCmd(a *app) *cobra.Command {
	opts := &statementOptions{}

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print the statement for an invoice",
		Long: `Compute the amount owed and credits earned for an invoice and print the
statement as text or XML. XML statements are also saved to the statements
directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatement(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.invoicePath, "invoice", "", "Invoice file (.yaml, .yml, .json, .csv, .xlsx)")
	cmd.Flags().StringVar(&opts.playsPath, "plays", "", "Play registry file (.yaml, .yml, .json, .csv, .xlsx)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "txt", "Statement format: txt or xml")
	cmd.Flags().StringVar(&opts.customer, "customer", "", "Customer name for invoices that do not carry one")
	cmd.Flags().String("output-dir", utils.DefaultStatementsDir, "Directory XML statements are saved to")
	cmd.Flags().String("sheet", "", "XLSX sheet to read (default: first sheet)")
	cmd.Flags().String("delimiter", ",", "CSV field separator")
	cmd.MarkFlagRequired("invoice")
	cmd.MarkFlagRequired("plays")

	a.bindFlag(cmd, "output.dir", "output-dir")
	a.bindFlag(cmd, "input.sheet", "sheet")
	a.bindFlag(cmd, "input.csv_delimiter", "delimiter")

	return cmd
}

func (a *app) runStatement(cmd *cobra.Command, opts *statementOptions) error {
	format, err := types.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	loader := a.loader()
	plays, err := loader.LoadPlays(opts.playsPath)
	if err != nil {
		return err
	}
	invoice, err := loader.LoadInvoice(opts.invoicePath, opts.customer)
	if err != nil {
		return err
	}

	store := &recordingStore{Store: utils.NewFileManager(a.cfg.Output.Dir)}
	svc := statement.New(
		statement.WithEngine(a.engine()),
		statement.WithStore(store),
		statement.WithLogger(a.log),
	)

	rendered, err := svc.ProduceStatement(cmd.Context(), invoice, plays, format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, rendered)
	if format == types.FormatXML {
		fmt.Fprintln(out)
		fmt.Fprintln(cmd.ErrOrStderr(), statusLine(true, "Statement saved to "+store.path))
	}
	return nil
}

// recordingStore remembers where the last statement was saved.
type recordingStore struct {
	statement.Store
	path string
}

func (r *recordingStore) Save(ctx context.Context, content, ext string) (string, error) {
	path, err := r.Store.Save(ctx, content, ext)
	r.path = path
	return path, err
}
