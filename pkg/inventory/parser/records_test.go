package parser

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
	"github.com/xuri/excelize/v2"
)

// newProductFile saves a workbook with one product sheet holding rows below the header
// and returns it reopened from disk.
func newProductFile(t *testing.T, sheetName string, rows [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	if err := WriteHeader(f, sheetName, models.ProductHeader); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	for i, row := range rows {
		row := row
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractRecords(t *testing.T) {
	f := newProductFile(t, "Milk", [][]interface{}{
		{"2024-03-01 09:30:00", "Milk", "Initial stock", 100, 2000},
		{"", "", "", "", ""},
		{"2024-03-02 18:00:00", "Milk", "Stock reduced", 80, 2100},
	})

	records, err := ExtractRecords(f, "Milk")
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	if !records[0].Date.Equal(want) {
		t.Errorf("Expected date %v, got %v", want, records[0].Date)
	}
	if records[0].Stock != 100 || records[0].Price != 2000 {
		t.Errorf("Unexpected first record %+v", records[0])
	}
	if records[1].Description != "Stock reduced" || records[1].Stock != 80 || records[1].Price != 2100 {
		t.Errorf("Unexpected second record %+v", records[1])
	}
}

func TestExtractRecordsBadNumber(t *testing.T) {
	f := newProductFile(t, "Milk", [][]interface{}{
		{"2024-03-01 09:30:00", "Milk", "Initial stock", "lots", 2000},
	})

	_, err := ExtractRecords(f, "Milk")
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("Expected RowError, got %v", err)
	}
	if rowErr.Row != 2 || rowErr.Column != models.ColumnStock || rowErr.Value != "lots" {
		t.Errorf("Unexpected RowError %+v", rowErr)
	}
}

func TestExtractRecordsHeaderMismatch(t *testing.T) {
	f := newProductFile(t, "Milk", nil)

	if _, err := ExtractRecords(f, "Sheet1"); !errors.Is(err, ErrHeaderMismatch) {
		t.Errorf("Expected ErrHeaderMismatch, got %v", err)
	}
}

func TestProductSheets(t *testing.T) {
	f := newProductFile(t, "Milk", nil)

	if IsProductSheet(f, "Sheet1") {
		t.Errorf("Sheet1 should not be a product sheet")
	}
	if !IsProductSheet(f, "Milk") {
		t.Errorf("Milk should be a product sheet")
	}
	sheets := ProductSheets(f)
	if len(sheets) != 1 || sheets[0] != "Milk" {
		t.Errorf("Expected [Milk], got %v", sheets)
	}
}

func TestLastRow(t *testing.T) {
	f := newProductFile(t, "Milk", [][]interface{}{
		{"2024-03-01 09:30:00", "Milk", "Initial stock", 100, 2000},
		{"2024-03-02 09:30:00", "Milk", "Again", 90, 2000},
		{"", " ", "", "", ""},
	})

	n, err := LastRow(f, "Milk")
	if err != nil {
		t.Fatalf("LastRow failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected last row 3, got %d", n)
	}

	if n, _ := LastRow(f, "Sheet1"); n != 0 {
		t.Errorf("Expected 0 for an empty sheet, got %d", n)
	}
}

func TestExtractRecordsIgnoresNumberFormats(t *testing.T) {
	f := newProductFile(t, "Milk", [][]interface{}{
		{"2024-03-01 09:30:00", "Milk", "Initial stock", 1500, 2000},
	})
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle("Milk", "D2", "E2", thousands); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}
	if shown, _ := f.GetCellValue("Milk", "E2"); shown != "2,000" {
		t.Fatalf("Expected formatted display value 2,000, got %q", shown)
	}

	records, err := ExtractRecords(f, "Milk")
	if err != nil {
		t.Fatalf("ExtractRecords failed: %v", err)
	}
	if len(records) != 1 || records[0].Stock != 1500 || records[0].Price != 2000 {
		t.Errorf("Unexpected records %+v", records)
	}
}
