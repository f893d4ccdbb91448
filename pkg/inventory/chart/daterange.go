// Package chart builds price series from product records and renders them as
// text tables or as native line charts in a new xlsx workbook.
package chart

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the accepted layout of range bounds.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateRange indicates a missing, malformed or inverted date range.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrNoData indicates no record falls in the requested range.
	ErrNoData = errors.New("no data in the specified date range")
)

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange parses YYYY-MM-DD bounds. Both empty means no filter and
// yields a nil range; a single empty bound is an error.
func ParseDateRange(start, end string) (*DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("%w: start and end dates must not be empty", ErrInvalidDateRange)
	}

	s, err := time.ParseInLocation(DateLayout, start, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDateRange, start)
	}
	e, err := time.ParseInLocation(DateLayout, end, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDateRange, end)
	}
	if s.After(e) {
		return nil, fmt.Errorf("%w: start date must be before end date", ErrInvalidDateRange)
	}
	return &DateRange{Start: s, End: e}, nil
}

// Contains reports whether t falls on a day within the range. A nil range contains everything.
func (r *DateRange) Contains(t time.Time) bool {
	if r == nil {
		return true
	}
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, r.Start.Location())
	return !day.Before(r.Start) && !day.After(r.End)
}

func (r *DateRange) String() string {
	if r == nil {
		return "all dates"
	}
	return r.Start.Format(DateLayout) + " to " + r.End.Format(DateLayout)
}
