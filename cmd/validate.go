// =============================================================================
// Theatre Statements - Validate Command
// =============================================================================
//
// COMMAND USAGE:
//   statements validate --invoice <file> --plays <file>
//
// Loads both inputs and reports:
//   - field rule violations in either file
//   - performances whose play is missing from the registry
//   - plays whose genre cannot be priced
//
// Exits non-zero when any error-level problem is found. Warnings (such as
// an invoice without performances) are printed but do not fail.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var invoicePath, playsPath, customer string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an invoice and play registry without producing a statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := a.loader()

			plays, err := loader.LoadPlays(playsPath)
			if err != nil {
				return err
			}
			invoice, err := loader.LoadInvoice(invoicePath, customer)
			if err != nil {
				return err
			}

			problems := validation.ValidateInvoice(invoice)
			problems = append(problems, validation.CheckInvoiceAgainstPlays(invoice, plays)...)

			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				fmt.Fprintln(out, statusLine(true, fmt.Sprintf(
					"%s: %d performance(s), %d play(s), no problems found",
					invoice.Customer, len(invoice.Performances), len(plays))))
				return nil
			}

			fmt.Fprint(out, validation.FormatErrors(problems))
			if validation.HasErrors(problems) {
				fmt.Fprintln(out, statusLine(false, "validation failed"))
				return errors.Newf("%s: validation failed", invoicePath)
			}
			fmt.Fprintln(out, statusLine(true, "valid with warnings"))
			return nil
		},
	}

	cmd.Flags().StringVar(&invoicePath, "invoice", "", "Invoice file")
	cmd.Flags().StringVar(&playsPath, "plays", "", "Play registry file")
	cmd.Flags().StringVar(&customer, "customer", "", "Customer name for invoices that do not carry one")
	cmd.MarkFlagRequired("invoice")
	cmd.MarkFlagRequired("plays")

	return cmd
}
