// =============================================================================
// Theatre Statements - XLSX Parser Module
// =============================================================================
//
// This module reads play registries and performance lists from Excel
// workbooks. The sheet layout is the same as the CSV layout:
//
//   Row 1: header row (id | name | type | lines, or customer | playId | audience)
//   Row 2+: one record per row
//
// SHEET SELECTION:
//   - Settings.Sheet names the sheet to read
//   - Empty Sheet reads the first sheet of the workbook
//
// =============================================================================

package xlsxparser

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/csvparser"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/xuri/excelize/v2"
)

// Settings contains settings for reading workbooks.
type Settings struct {
	// Sheet is the sheet to read. Default: the first sheet.
	Sheet string
}

// Parse reads a sheet of the workbook at filePath into a Table.
//
// PARAMETERS:
//   - filePath: The path to the .xlsx file.
//   - settings: Sheet selection.
//
// RETURNS:
//   - The header-mapped table.
//   - An error if the workbook or sheet cannot be read, or the sheet is empty.
func Parse(filePath string, settings Settings) (*types.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	sheetName := settings.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheetName)
	}
	if len(rows) == 0 {
		return nil, errors.Newf("sheet %q is empty", sheetName)
	}

	return csvparser.BuildTable(fmt.Sprintf("%s[%s]", filePath, sheetName), rows), nil
}
