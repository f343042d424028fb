package types

import "strings"

// Table is tabular input read from a CSV file or an XLSX sheet. Headers are
// normalized with NormalizeHeader; each row maps normalized header to cell.
type Table struct {
	// Source is the file (and sheet, for workbooks) the table came from.
	Source string

	Headers []string

	// Rows holds data rows only. Row i was line/row i+2 of the source.
	Rows []map[string]string
}

// NormalizeHeader lowercases a header and drops spaces, underscores and
// dashes, so "Play ID", "play_id" and "playId" all become "playid".
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(h)
}

// SourceRow is the 1-based line number of data row i in its source.
func (t *Table) SourceRow(i int) int {
	return i + 2
}
