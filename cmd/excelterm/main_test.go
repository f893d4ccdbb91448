package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itz-Amethyst/excel-term/pkg/inventory"
	"github.com/itz-Amethyst/excel-term/pkg/inventory/chart"
	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("EXCELTERM_ENV_PATH", filepath.Join(dir, "missing.env"))
	t.Setenv("EXCELTERM_FILE", "")
	return filepath.Join(dir, "datas", "products.xlsx")
}

func execute(t *testing.T, path, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--file", path}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, path string, args ...string) string {
	t.Helper()
	out, err := execute(t, path, "", args...)
	require.NoError(t, err)
	return out
}

func TestInitCommand(t *testing.T) {
	path := testFile(t)

	assert.Contains(t, mustExecute(t, path, "init"), "Created new Excel file")
	assert.Contains(t, mustExecute(t, path, "init"), "already exists")
}

func TestProductLifecycle(t *testing.T) {
	path := testFile(t)

	out := mustExecute(t, path, "add", "-n", "whole milk", "-d", "1 litre", "-s", "10", "-p", "100")
	assert.Contains(t, out, "Product sheet 'Whole Milk' added successfully.")

	out = mustExecute(t, path, "edit", "Whole Milk", "--price", "120")
	assert.Contains(t, out, "updated successfully")

	out = mustExecute(t, path, "show", "whole milk", "--json")
	var sheet models.ProductSheet
	require.NoError(t, json.Unmarshal([]byte(out), &sheet))
	require.Len(t, sheet.Records, 2)
	assert.Equal(t, 120, sheet.Records[1].Price)
	assert.Equal(t, 10, sheet.Records[1].Stock, "omitted fields keep their last value")

	mustExecute(t, path, "edit", "Whole Milk", "--name", "Skim Milk")
	out = mustExecute(t, path, "list")
	assert.Contains(t, out, "Skim Milk")
	assert.NotContains(t, out, "Whole Milk")

	out = mustExecute(t, path, "undo", "Skim Milk")
	assert.Contains(t, out, "from sheet 'Whole Milk'")

	mustExecute(t, path, "delete", "Whole Milk")
	out = mustExecute(t, path, "list", "--json")
	var data models.WorkbookData
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	assert.Empty(t, data.Sheets)
}

func TestCommandErrors(t *testing.T) {
	path := testFile(t)
	mustExecute(t, path, "add", "-n", "Eggs", "-d", "dozen", "-s", "3", "-p", "40")

	_, err := execute(t, path, "", "add", "-n", "eggs", "-d", "again", "-s", "1", "-p", "1")
	assert.ErrorIs(t, err, inventory.ErrSheetExists)

	_, err = execute(t, path, "", "edit", "Butter", "--price", "1")
	assert.ErrorIs(t, err, inventory.ErrSheetNotFound)

	_, err = execute(t, path, "", "add", "-n", "Ham", "-d", "sliced", "--stock=-1", "-p", "1")
	assert.ErrorIs(t, err, inventory.ErrInvalidInput)

	_, err = execute(t, path, "", "add", "-n", "Ham")
	assert.Error(t, err, "required flags are enforced")

	_, err = execute(t, path, "", "chart", "Eggs", "--start", "2024-02-01", "--end", "2024-01-01")
	assert.ErrorIs(t, err, chart.ErrInvalidDateRange)

	_, err = execute(t, path, "", "chart")
	assert.Error(t, err)

	_, err = execute(t, path, "", "chart", "Eggs", "--all")
	assert.Error(t, err)

	_, err = execute(t, path, "", "--log-format", "xml", "list")
	assert.Error(t, err)
}

func TestChartCommand(t *testing.T) {
	path := testFile(t)
	mustExecute(t, path, "add", "-n", "Eggs", "-d", "dozen", "-s", "3", "-p", "40")
	mustExecute(t, path, "edit", "Eggs", "-p", "55")
	mustExecute(t, path, "add", "-n", "Milk", "-d", "1 litre", "-s", "8", "-p", "90")

	out := mustExecute(t, path, "chart", "Eggs")
	assert.Contains(t, out, chart.PriceTitle)
	assert.Contains(t, out, "55")

	out = mustExecute(t, path, "chart", "--all")
	assert.Contains(t, out, chart.DeltaTitle)
	assert.Contains(t, out, "+15")

	export := filepath.Join(t.TempDir(), "eggs.xlsx")
	out = mustExecute(t, path, "chart", "Eggs", "-o", export)
	assert.Contains(t, out, `Wrote Line chart "Product Prices Over Time" with 1 series`)

	export = filepath.Join(t.TempDir(), "all.xlsx")
	out = mustExecute(t, path, "chart", "--all", "-o", export)
	assert.Contains(t, out, "with 1 series", "products without price changes are left out")

	_, err := execute(t, path, "", "chart", "Eggs", "--start", "2000-01-01", "--end", "2000-01-02", "-o", export)
	assert.ErrorIs(t, err, chart.ErrNoData)
}

func TestInfoCommand(t *testing.T) {
	path := testFile(t)

	assert.Contains(t, mustExecute(t, path, "info"), "No information set.")

	mustExecute(t, path, "info", "--address", "12 Main St", "--year", "1999")
	out := mustExecute(t, path, "info", "--city", "Tabriz")

	var info models.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, models.Info{Address: "12 Main St", EstablishedYear: 1999, City: "Tabriz"}, info)
}

func TestBrowseCommand(t *testing.T) {
	path := testFile(t)
	mustExecute(t, path, "add", "-n", "Eggs", "-d", "dozen", "-s", "3", "-p", "40")
	mustExecute(t, path, "add", "-n", "Milk", "-d", "1 litre", "-s", "8", "-p", "90")

	out, err := execute(t, path, "n\nq\n", "browse")
	require.NoError(t, err)
	assert.Contains(t, out, "== Eggs ==")
	assert.Contains(t, out, "== Milk ==")
	assert.Contains(t, out, "[2/2]")
}

func TestLogOutputFile(t *testing.T) {
	path := testFile(t)
	logPath := filepath.Join(t.TempDir(), "excelterm.log")

	mustExecute(t, path, "--log-level", "info", "--log-format", "json", "--log-output", logPath,
		"add", "-n", "Eggs", "-d", "dozen", "-s", "3", "-p", "40")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"product added"`)
	assert.Contains(t, string(data), `"sheet":"Eggs"`)
}
