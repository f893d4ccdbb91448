package parser

import (
	"fmt"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
	"github.com/xuri/excelize/v2"
)

// HeaderFill is the background color of header rows.
const HeaderFill = "FFA500"

// maxRow is the last row of an xlsx worksheet.
const maxRow = excelize.TotalRows

// WriteHeader writes header into row 1 and styles it as a locked, filled row.
func WriteHeader(f *excelize.File, sheetName string, header []string) error {
	cells := make([]interface{}, len(header))
	for i, v := range header {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, "A1", &cells); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:       &excelize.Font{Bold: true},
		Fill:       excelize.Fill{Type: "pattern", Color: []string{HeaderFill}, Pattern: 1},
		Protection: &excelize.Protection{Locked: true},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, "A1", last, style)
}

// ApplyProductValidation adds per-column data validation to a product sheet:
// text columns shorter than 255 characters, stock and price whole and non-negative.
func ApplyProductValidation(f *excelize.File, sheetName string) error {
	rules := []validationRule{
		{[]string{colRange("B", "C")}, textRule},
		{[]string{colRange("D", "E")}, wholeRule},
	}
	return addRules(f, sheetName, rules)
}

// ApplyInfoValidation adds data validation to the metadata sheet.
func ApplyInfoValidation(f *excelize.File, sheetName string) error {
	rules := []validationRule{
		{[]string{"A2:A100", "C2:D100"}, textRule},
		{[]string{colRange("B", "B")}, yearRule},
	}
	return addRules(f, sheetName, rules)
}

// ReadInfo reads the metadata row of the info sheet. It returns nil when the row is empty.
func ReadInfo(f *excelize.File) (*models.Info, error) {
	rows, err := rawRows(f, models.InfoSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 || isBlank(rows[1]) {
		return nil, nil
	}
	row := rows[1]
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	year, err := parseInt(cell(1))
	if err != nil {
		return nil, &RowError{Sheet: models.InfoSheet, Row: 2, Column: models.InfoHeader[1], Value: cell(1), Err: err}
	}
	return &models.Info{
		Address:         cell(0),
		EstablishedYear: year,
		City:            cell(2),
		Country:         cell(3),
	}, nil
}

type validationRule struct {
	ranges []string
	setup  func(dv *excelize.DataValidation) error
}

func addRules(f *excelize.File, sheetName string, rules []validationRule) error {
	for _, rule := range rules {
		dv := excelize.NewDataValidation(true)
		for _, r := range rule.ranges {
			dv.SetSqref(r)
		}
		if err := rule.setup(dv); err != nil {
			return fmt.Errorf("validation %s: %w", dv.Sqref, err)
		}
		if err := f.AddDataValidation(sheetName, dv); err != nil {
			return fmt.Errorf("validation %s: %w", dv.Sqref, err)
		}
	}
	return nil
}

func textRule(dv *excelize.DataValidation) error {
	if err := dv.SetRange(0, 254, excelize.DataValidationTypeTextLength, excelize.DataValidationOperatorBetween); err != nil {
		return err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid Text", "Please enter a valid text.")
	return nil
}

func wholeRule(dv *excelize.DataValidation) error {
	if err := dv.SetRange(0, 0, excelize.DataValidationTypeWhole, excelize.DataValidationOperatorGreaterThanOrEqual); err != nil {
		return err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid Integer", "Please enter a valid integer.")
	return nil
}

func yearRule(dv *excelize.DataValidation) error {
	if err := dv.SetRange(0, 9999, excelize.DataValidationTypeWhole, excelize.DataValidationOperatorBetween); err != nil {
		return err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid Year", "Please enter a valid year.")
	return nil
}

// colRange returns the data range (row 2 down to the last row) of columns from..to.
func colRange(from, to string) string {
	return fmt.Sprintf("%s2:%s%d", from, to, maxRow)
}
