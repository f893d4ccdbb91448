package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
	"github.com/xuri/excelize/v2"
)

// dateLayouts are tried in order when reading the Transaction Date column.
// Rows typed by hand in a spreadsheet application often carry only a date.
var dateLayouts = []string{
	models.TimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// parseInt parses a whole number cell. Integral decimals such as "12.0" are accepted.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("not a whole number")
	}
	return int(f), nil
}

// parseDate parses a Transaction Date cell in local time. Besides the text
// layouts it accepts a raw date serial, which is what a cell holds once a
// spreadsheet application has converted a typed date.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if serial, ferr := strconv.ParseFloat(s, 64); ferr == nil && serial > 0 {
		t, serr := excelize.ExcelDateToTime(serial, false)
		if serr != nil {
			return time.Time{}, serr
		}
		t = t.Round(time.Second)
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local), nil
	}
	return time.Time{}, err
}
