// =============================================================================
// Theatre Statements - CSV Parser Module
// =============================================================================
//
// This module reads CSV play registries and performance lists into a
// header-mapped types.Table.
//
// EXPECTED LAYOUTS:
//   plays.csv                    invoice.csv
//   id,name,type,lines           customer,playId,audience
//   hamlet,Hamlet,tragedy,4024   BigCo,hamlet,55
//
// The first row is always the header row. Header names are matched
// case-insensitively, ignoring spaces, underscores and dashes. Blank rows are
// skipped.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/types"
)

// Settings contains settings for parsing CSV files.
type Settings struct {
	// Delimiter is the field separator. Accepts a single character or one of
	// "tab", "pipe", "semicolon". Default: ","
	Delimiter string
}

// Parse reads the CSV file at filePath.
func Parse(filePath string, settings Settings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return ParseReader(filePath, bufio.NewReader(file), settings)
}

// ParseReader reads CSV data from r. source names the data in errors.
func ParseReader(source string, r io.Reader, settings Settings) (*types.Table, error) {
	csvReader := csv.NewReader(r)
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV")
	}

	if len(allRows) == 0 {
		return nil, errors.New("CSV file is empty")
	}

	return BuildTable(source, allRows), nil
}

// BuildTable turns raw rows (header row first) into a Table. It is shared
// with the XLSX parser so both formats map cells identically.
func BuildTable(source string, allRows [][]string) *types.Table {
	headers := make([]string, len(allRows[0]))
	for i, h := range allRows[0] {
		headers[i] = types.NormalizeHeader(h)
	}

	table := &types.Table{Source: source, Headers: headers}
	for _, row := range allRows[1:] {
		if isRowEmpty(row) {
			continue
		}
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = strings.TrimSpace(row[i])
			} else {
				record[header] = ""
			}
		}
		table.Rows = append(table.Rows, record)
	}

	return table
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings Settings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Trailing empty cells are common in exported sheets.
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
}

// isRowEmpty checks if all fields in a row are empty.
func isRowEmpty(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
