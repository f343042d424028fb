// =============================================================================
// Theatre Statements - Input Sources
// =============================================================================
//
// This module loads the play registry and the invoice a statement is built
// from. The decoder is chosen by file extension:
//
//   .yaml / .yml   YAML documents
//   .json          JSON documents (the classic plays.json / invoice.json shape)
//   .csv           header row + records (see csvparser)
//   .xlsx          header row + records on one sheet (see xlsxparser)
//
// DOCUMENT SHAPES:
//   plays:    {"hamlet": {"name": "Hamlet", "type": "tragedy", "lines": 4024}}
//   invoice:  {"customer": "BigCo", "performances": [{"playId": "hamlet", "audience": 55}]}
//             A list holding exactly one invoice is also accepted.
//
// TABULAR SHAPES:
//   plays:    id | name | type (or genre) | lines
//   invoice:  [customer] | playId | audience
//
// Every failure is returned as a types.InputError naming the file.
//
// =============================================================================

package source

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/csvparser"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/ginjaninja78/theatre-statements/internal/validation"
	"github.com/ginjaninja78/theatre-statements/internal/xlsxparser"
)

// Loader reads plays and invoices from files.
type Loader struct {
	CSV  csvparser.Settings
	XLSX xlsxparser.Settings
}

// New creates a Loader with default CSV and XLSX settings.
func New() *Loader {
	return &Loader{CSV: csvparser.Settings{Delimiter: ","}}
}

// LoadPlays reads and validates the play registry at path.
func (l *Loader) LoadPlays(path string) (types.Plays, error) {
	var (
		plays types.Plays
		err   error
	)

	switch ext(path) {
	case ".yaml", ".yml":
		plays, err = decodeYAMLPlays(path)
	case ".json":
		plays, err = decodeJSONPlays(path)
	case ".csv", ".xlsx":
		var table *types.Table
		if table, err = l.readTable(path); err == nil {
			plays, err = playsFromTable(table)
		}
	default:
		err = unsupportedExtension(path)
	}
	if err != nil {
		return nil, &types.InputError{Source: path, Err: err}
	}

	plays = normalizePlays(plays)
	if err := validation.AsInputError(path, validation.ValidatePlays(plays)); err != nil {
		return nil, err
	}
	return plays, nil
}

// LoadInvoice reads and validates the invoice at path. customer fills in
// the customer name when the file does not carry one.
func (l *Loader) LoadInvoice(path, customer string) (types.Invoice, error) {
	var (
		invoice types.Invoice
		err     error
	)

	switch ext(path) {
	case ".yaml", ".yml":
		invoice, err = decodeYAMLInvoice(path)
	case ".json":
		invoice, err = decodeJSONInvoice(path)
	case ".csv", ".xlsx":
		var table *types.Table
		if table, err = l.readTable(path); err == nil {
			invoice, err = invoiceFromTable(table)
		}
	default:
		err = unsupportedExtension(path)
	}
	if err != nil {
		return types.Invoice{}, &types.InputError{Source: path, Err: err}
	}

	if strings.TrimSpace(invoice.Customer) == "" {
		invoice.Customer = customer
	}
	if err := validation.AsInputError(path, validation.ValidateInvoice(invoice)); err != nil {
		return types.Invoice{}, err
	}
	return invoice, nil
}

func (l *Loader) readTable(path string) (*types.Table, error) {
	if ext(path) == ".xlsx" {
		return xlsxparser.Parse(path, l.XLSX)
	}
	return csvparser.Parse(path, l.CSV)
}

// normalizePlays returns a copy of plays with genres normalized.
func normalizePlays(plays types.Plays) types.Plays {
	out := make(types.Plays, len(plays))
	for id, p := range plays {
		p.Genre = types.ParseGenre(string(p.Genre))
		out[id] = p
	}
	return out
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func unsupportedExtension(path string) error {
	return errors.Newf("unsupported file type %q (want .yaml, .yml, .json, .csv or .xlsx)", filepath.Ext(path))
}

func singleInvoice(invoices []types.Invoice) (types.Invoice, error) {
	if len(invoices) != 1 {
		return types.Invoice{}, errors.Newf("expected exactly one invoice, found %d", len(invoices))
	}
	return invoices[0], nil
}
