// Package parser reads and lays out inventory worksheets.
package parser

import (
	"strings"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
	"github.com/xuri/excelize/v2"
)

// rawRows reads a sheet's cells as stored, ignoring number formats, so a
// price shown as "2,000" is read as "2000".
func rawRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// IsProductSheet reports whether the sheet's first row is the product header.
func IsProductSheet(f *excelize.File, sheetName string) bool {
	rows, err := rawRows(f, sheetName)
	if err != nil || len(rows) == 0 {
		return false
	}
	return headerMatches(rows[0], models.ProductHeader)
}

// ProductSheets returns product sheet titles in workbook order.
func ProductSheets(f *excelize.File) []string {
	var sheets []string
	for _, name := range f.GetSheetList() {
		if IsProductSheet(f, name) {
			sheets = append(sheets, name)
		}
	}
	return sheets
}

// ExtractRecords reads all transaction records of a product sheet, oldest first.
// Fully empty rows are skipped.
func ExtractRecords(f *excelize.File, sheetName string) ([]models.Record, error) {
	rows, err := rawRows(f, sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || !headerMatches(rows[0], models.ProductHeader) {
		return nil, ErrHeaderMismatch
	}

	var result []models.Record
	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2 // 1-based, below the header
		if isBlank(row) {
			continue
		}
		rec, err := parseRecord(sheetName, rowNum, row)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}

	return result, nil
}

// LastRow returns the 1-based number of the last row holding a non-blank cell,
// header included. Rows with only whitespace count as blank, as in ExtractRecords,
// so the last record always sits on LastRow.
func LastRow(f *excelize.File, sheetName string) (int, error) {
	rows, err := rawRows(f, sheetName)
	if err != nil {
		return 0, err
	}
	for i := len(rows) - 1; i >= 0; i-- {
		if !isBlank(rows[i]) {
			return i + 1, nil
		}
	}
	return 0, nil
}

func parseRecord(sheetName string, rowNum int, row []string) (models.Record, error) {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	fail := func(col int, err error) error {
		return &RowError{Sheet: sheetName, Row: rowNum, Column: models.ProductHeader[col], Value: cell(col), Err: err}
	}

	date, err := parseDate(cell(0))
	if err != nil {
		return models.Record{}, fail(0, err)
	}
	stock, err := parseInt(cell(3))
	if err != nil {
		return models.Record{}, fail(3, err)
	}
	price, err := parseInt(cell(4))
	if err != nil {
		return models.Record{}, fail(4, err)
	}

	return models.Record{
		Date:        date,
		Name:        cell(1),
		Description: cell(2),
		Stock:       stock,
		Price:       price,
	}, nil
}

func headerMatches(row, header []string) bool {
	if len(row) < len(header) {
		return false
	}
	for i, title := range header {
		if strings.TrimSpace(row[i]) != title {
			return false
		}
	}
	return true
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
