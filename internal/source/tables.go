package source

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/samber/lo"
)

// playsFromTable maps id/name/type/lines records to a play registry.
// "genre" is accepted in place of "type".
func playsFromTable(table *types.Table) (types.Plays, error) {
	genreColumn := "type"
	if !lo.Contains(table.Headers, genreColumn) && lo.Contains(table.Headers, "genre") {
		genreColumn = "genre"
	}
	if err := requireColumns(table, "id", "name", genreColumn, "lines"); err != nil {
		return nil, err
	}

	plays := make(types.Plays, len(table.Rows))
	for i, row := range table.Rows {
		id := row["id"]
		if _, dup := plays[id]; dup {
			return nil, errors.Newf("row %d: duplicate play id %q", table.SourceRow(i), id)
		}
		lines, err := atoi(table, i, "lines", row["lines"])
		if err != nil {
			return nil, err
		}
		plays[id] = types.Play{
			Name:  row["name"],
			Genre: types.Genre(row[genreColumn]),
			Lines: lines,
		}
	}
	return plays, nil
}

// invoiceFromTable maps [customer]/playId/audience records to an invoice.
// All non-empty customer cells must agree.
func invoiceFromTable(table *types.Table) (types.Invoice, error) {
	if err := requireColumns(table, "playid", "audience"); err != nil {
		return types.Invoice{}, err
	}

	var invoice types.Invoice
	for i, row := range table.Rows {
		if c := row["customer"]; c != "" {
			if invoice.Customer != "" && invoice.Customer != c {
				return types.Invoice{}, errors.Newf("row %d: customer %q differs from %q; one invoice per file",
					table.SourceRow(i), c, invoice.Customer)
			}
			invoice.Customer = c
		}
		audience, err := atoi(table, i, "audience", row["audience"])
		if err != nil {
			return types.Invoice{}, err
		}
		invoice.Performances = append(invoice.Performances, types.Performance{
			PlayID:   row["playid"],
			Audience: audience,
		})
	}
	return invoice, nil
}

func requireColumns(table *types.Table, columns ...string) error {
	missing := lo.Without(columns, table.Headers...)
	if len(missing) > 0 {
		return errors.Newf("missing column(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

func atoi(table *types.Table, i int, column, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Newf("row %d: %s %q is not a whole number", table.SourceRow(i), column, value)
	}
	return n, nil
}
