package inventory

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
	"github.com/itz-Amethyst/excel-term/pkg/inventory/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Add creates a product sheet titled after the normalized product name, with
// the header row and one record.
func (b *Book) Add(p Product) (models.Record, error) {
	p.Name = NormalizeName(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	if err := validateInput(p); err != nil {
		return models.Record{}, sheetErr("add", p.Name, err)
	}
	title := p.Name
	if _, ok := b.findSheet(title); ok {
		return models.Record{}, sheetErr("add", title, ErrSheetExists)
	}

	rec := models.Record{
		Date:        b.opts.Now(),
		Name:        title,
		Description: p.Description,
		Stock:       p.Stock,
		Price:       p.Price,
	}
	if err := b.newProductSheet(title, rec); err != nil {
		return models.Record{}, b.revert(sheetErr("add", title, err))
	}
	if err := b.save(); err != nil {
		return models.Record{}, b.revert(err)
	}

	b.log.Info("product added", zap.String("sheet", title), zap.Int("stock", rec.Stock), zap.Int("price", rec.Price))
	return rec, nil
}

// Edit appends a record to the sheet. Fields left nil in the patch are copied
// from the last record. When the name changes the sheet is renamed to match.
func (b *Book) Edit(sheet string, p Patch) (models.Record, error) {
	title, err := b.productSheet("edit", sheet)
	if err != nil {
		return models.Record{}, err
	}
	if p.Name != nil {
		name := NormalizeName(*p.Name)
		if name == "" {
			return models.Record{}, sheetErr("edit", title, fmt.Errorf("%w: name must not be empty", ErrInvalidInput))
		}
		p.Name = &name
	}
	if p.Description != nil {
		desc := strings.TrimSpace(*p.Description)
		p.Description = &desc
	}
	if err := validateInput(p); err != nil {
		return models.Record{}, sheetErr("edit", title, err)
	}

	records, err := parser.ExtractRecords(b.f, title)
	if err != nil {
		return models.Record{}, sheetErr("edit", title, err)
	}
	if len(records) == 0 {
		return models.Record{}, sheetErr("edit", title, ErrNoRecords)
	}

	rec := records[len(records)-1]
	rec.Date = b.opts.Now()
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.Description != nil {
		rec.Description = *p.Description
	}
	if p.Stock != nil {
		rec.Stock = *p.Stock
	}
	if p.Price != nil {
		rec.Price = *p.Price
	}

	renamed := p.Name != nil && rec.Name != title
	if renamed {
		if other, ok := b.findSheet(rec.Name); ok && other != title {
			return models.Record{}, sheetErr("edit", rec.Name, ErrSheetExists)
		}
	}

	if err := b.appendRecord(title, rec); err != nil {
		return models.Record{}, b.revert(sheetErr("edit", title, err))
	}
	if renamed {
		if err := b.f.SetSheetName(title, rec.Name); err != nil {
			return models.Record{}, b.revert(sheetErr("edit", title, err))
		}
	}
	if err := b.save(); err != nil {
		return models.Record{}, b.revert(err)
	}

	fields := []zap.Field{zap.String("sheet", rec.Name), zap.Int("stock", rec.Stock), zap.Int("price", rec.Price)}
	if renamed {
		fields = append(fields, zap.String("renamed_from", title))
	}
	b.log.Info("product updated", fields...)
	return rec, nil
}

// DeleteSheet removes a product sheet and all its records.
func (b *Book) DeleteSheet(sheet string) error {
	title, err := b.productSheet("delete", sheet)
	if err != nil {
		return err
	}
	if err := b.f.DeleteSheet(title); err != nil {
		return b.revert(sheetErr("delete", title, err))
	}
	if err := b.save(); err != nil {
		return b.revert(err)
	}

	b.log.Info("product deleted", zap.String("sheet", title))
	return nil
}

// DeleteLastRow removes the most recent record of a sheet and retitles the
// sheet after the record that is now last. When the removed record was the only
// one, the title is kept. It returns the removed record and the resulting title.
func (b *Book) DeleteLastRow(sheet string) (models.Record, string, error) {
	title, err := b.productSheet("undo", sheet)
	if err != nil {
		return models.Record{}, "", err
	}
	records, err := parser.ExtractRecords(b.f, title)
	if err != nil {
		return models.Record{}, "", sheetErr("undo", title, err)
	}
	if len(records) == 0 {
		return models.Record{}, "", sheetErr("undo", title, ErrNoRecords)
	}
	removed := records[len(records)-1]

	newTitle := title
	if len(records) > 1 {
		if prev := NormalizeName(records[len(records)-2].Name); prev != "" {
			newTitle = prev
		}
	}
	if newTitle != title {
		if other, ok := b.findSheet(newTitle); ok && other != title {
			return models.Record{}, "", sheetErr("undo", newTitle, ErrSheetExists)
		}
	}

	last, err := parser.LastRow(b.f, title)
	if err != nil {
		return models.Record{}, "", sheetErr("undo", title, err)
	}
	if err := b.f.RemoveRow(title, last); err != nil {
		return models.Record{}, "", b.revert(sheetErr("undo", title, err))
	}
	if newTitle != title {
		if err := b.f.SetSheetName(title, newTitle); err != nil {
			return models.Record{}, "", b.revert(sheetErr("undo", title, err))
		}
	}
	if err := b.save(); err != nil {
		return models.Record{}, "", b.revert(err)
	}

	b.log.Info("last record removed", zap.String("sheet", newTitle), zap.String("removed_at", removed.Date.Format(models.TimeLayout)))
	return removed, newTitle, nil
}

// ProductSheets returns product sheet titles in workbook order.
func (b *Book) ProductSheets() []string {
	return parser.ProductSheets(b.f)
}

// Sheet returns a product sheet with all its records.
func (b *Book) Sheet(sheet string) (models.ProductSheet, error) {
	title, err := b.productSheet("read", sheet)
	if err != nil {
		return models.ProductSheet{}, err
	}
	records, err := parser.ExtractRecords(b.f, title)
	if err != nil {
		return models.ProductSheet{}, sheetErr("read", title, err)
	}
	return models.ProductSheet{Title: title, Records: records}, nil
}

// Last returns the current state of a product.
func (b *Book) Last(sheet string) (models.Record, error) {
	s, err := b.Sheet(sheet)
	if err != nil {
		return models.Record{}, err
	}
	rec, ok := s.Last()
	if !ok {
		return models.Record{}, sheetErr("read", s.Title, ErrNoRecords)
	}
	return rec, nil
}

// Snapshot reads the metadata row and every product sheet.
func (b *Book) Snapshot() (*models.WorkbookData, error) {
	info, err := b.Info()
	if err != nil {
		return nil, err
	}
	data := &models.WorkbookData{BookName: filepath.Base(b.path), Info: info, Sheets: []models.ProductSheet{}}
	for _, title := range b.ProductSheets() {
		s, err := b.Sheet(title)
		if err != nil {
			return nil, err
		}
		data.Sheets = append(data.Sheets, s)
	}
	return data, nil
}

// findSheet looks up any worksheet by title, ignoring case as spreadsheet
// applications do, and returns its stored title.
func (b *Book) findSheet(name string) (string, bool) {
	for _, s := range b.f.GetSheetList() {
		if strings.EqualFold(s, name) {
			return s, true
		}
	}
	return "", false
}

func (b *Book) productSheet(op, name string) (string, error) {
	title, ok := b.findSheet(NormalizeName(name))
	if !ok {
		title, ok = b.findSheet(strings.TrimSpace(name))
	}
	if !ok {
		return "", sheetErr(op, name, ErrSheetNotFound)
	}
	if !parser.IsProductSheet(b.f, title) {
		return "", sheetErr(op, title, ErrNotProductSheet)
	}
	return title, nil
}

func (b *Book) newProductSheet(title string, first models.Record) error {
	if _, err := b.f.NewSheet(title); err != nil {
		return err
	}
	if err := parser.WriteHeader(b.f, title, models.ProductHeader); err != nil {
		return err
	}
	if err := parser.ApplyProductValidation(b.f, title); err != nil {
		return err
	}
	return b.appendRecord(title, first)
}

func (b *Book) appendRecord(title string, rec models.Record) error {
	count, err := parser.LastRow(b.f, title)
	if err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(1, count+1)
	if err != nil {
		return err
	}
	row := rec.Row()
	return b.f.SetSheetRow(title, cell, &row)
}
