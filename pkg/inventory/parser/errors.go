package parser

import (
	"errors"
	"fmt"
)

// ErrHeaderMismatch indicates the first row of a sheet is not the expected header.
var ErrHeaderMismatch = errors.New("header row does not match")

// RowError reports a cell that could not be converted into a record field.
type RowError struct {
	Sheet  string
	Row    int // 1-based, as shown in a spreadsheet application
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sheet %q row %d, column %q: invalid value %q: %v", e.Sheet, e.Row, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
