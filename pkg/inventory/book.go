package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
	"github.com/itz-Amethyst/excel-term/pkg/inventory/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Book is an inventory workbook loaded in memory. Every mutating call rewrites
// the whole file before returning; a call that fails drops its unsaved changes
// so the Book keeps matching the file. A Book is not safe for concurrent use.
type Book struct {
	path string
	f    *excelize.File
	opts Options
	log  *zap.Logger
}

// Open loads the workbook at path, creating it (and its directory) when missing.
func Open(path string, opts Options) (*Book, error) {
	opts = opts.withDefaults()
	b := &Book{path: path, opts: opts, log: opts.Logger.With(zap.String("file", path))}

	if err := b.load(); err != nil {
		return nil, err
	}
	return b, nil
}

// Create writes a new workbook at path unless one already exists.
// It reports whether a file was created.
func Create(path string, opts Options) (bool, error) {
	opts = opts.withDefaults()
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := createWorkbook(path); err != nil {
		return false, err
	}
	opts.Logger.Info("workbook created", zap.String("file", path))
	return true, nil
}

// Path returns the workbook file path.
func (b *Book) Path() string {
	return b.path
}

// Reload discards in-memory state and reads the file again.
func (b *Book) Reload() error {
	if err := b.f.Close(); err != nil {
		return err
	}
	return b.load()
}

// Close releases the underlying file.
func (b *Book) Close() error {
	return b.f.Close()
}

func (b *Book) load() error {
	if _, err := Create(b.path, b.opts); err != nil {
		return fmt.Errorf("prepare workbook: %w", err)
	}
	f, err := excelize.OpenFile(b.path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	b.f = f
	return nil
}

func (b *Book) save() error {
	if err := b.f.SaveAs(b.path); err != nil {
		b.log.Error("save failed", zap.Error(err))
		return &SaveError{Path: b.path, Err: err}
	}
	return nil
}

// revert drops unsaved changes by reading the file again and returns err.
// When the file cannot be read the in-memory state is kept and a warning logged.
func (b *Book) revert(err error) error {
	f, openErr := excelize.OpenFile(b.path)
	if openErr != nil {
		b.log.Warn("workbook not reverted, in-memory state differs from file", zap.Error(openErr))
		return err
	}
	_ = b.f.Close()
	b.f = f
	return err
}

// createWorkbook writes a workbook holding only the styled metadata sheet.
func createWorkbook(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), models.InfoSheet); err != nil {
		return err
	}
	if err := parser.WriteHeader(f, models.InfoSheet, models.InfoHeader); err != nil {
		return err
	}
	if err := parser.ApplyInfoValidation(f, models.InfoSheet); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}
