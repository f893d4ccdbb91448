package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrSheetExists indicates a product sheet with the same title is already present.
	ErrSheetExists = errors.New("product sheet already exists")

	// ErrSheetNotFound indicates no product sheet has the requested title.
	ErrSheetNotFound = errors.New("product sheet does not exist")

	// ErrNoRecords indicates a product sheet holds only its header row.
	ErrNoRecords = errors.New("product sheet has no records")

	// ErrNotProductSheet indicates the sheet exists but is not laid out as a product sheet.
	ErrNotProductSheet = errors.New("not a product sheet")

	// ErrInvalidInput indicates product fields failed validation.
	ErrInvalidInput = errors.New("invalid product input")
)

// SheetError records a failed operation on a product sheet.
type SheetError struct {
	Sheet string
	Op    string // "add", "edit", "delete", "undo", "read"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

func sheetErr(op, sheet string, err error) *SheetError {
	return &SheetError{Sheet: sheet, Op: op, Err: err}
}

// SaveError indicates the workbook could not be written back to disk.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save %s, the file may be open in another program: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
