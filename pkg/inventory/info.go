package inventory

import (
	"strings"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
	"github.com/itz-Amethyst/excel-term/pkg/inventory/parser"
	"go.uber.org/zap"
)

type infoInput struct {
	Address         string `validate:"max=254"`
	EstablishedYear int    `validate:"gte=0,lte=9999"`
	City            string `validate:"max=254"`
	Country         string `validate:"max=254"`
}

// Info returns the metadata row, or nil when it has not been filled in.
func (b *Book) Info() (*models.Info, error) {
	if _, ok := b.findSheet(models.InfoSheet); !ok {
		return nil, nil
	}
	info, err := parser.ReadInfo(b.f)
	if err != nil {
		return nil, sheetErr("read", models.InfoSheet, err)
	}
	return info, nil
}

// SetInfo overwrites the metadata row, recreating the metadata sheet if it was removed.
func (b *Book) SetInfo(info models.Info) error {
	info.Address = strings.TrimSpace(info.Address)
	info.City = strings.TrimSpace(info.City)
	info.Country = strings.TrimSpace(info.Country)
	if err := validateInput(infoInput(info)); err != nil {
		return sheetErr("info", models.InfoSheet, err)
	}

	if _, ok := b.findSheet(models.InfoSheet); !ok {
		if _, err := b.f.NewSheet(models.InfoSheet); err != nil {
			return b.revert(sheetErr("info", models.InfoSheet, err))
		}
		if err := parser.WriteHeader(b.f, models.InfoSheet, models.InfoHeader); err != nil {
			return b.revert(sheetErr("info", models.InfoSheet, err))
		}
		if err := parser.ApplyInfoValidation(b.f, models.InfoSheet); err != nil {
			return b.revert(sheetErr("info", models.InfoSheet, err))
		}
	}

	row := info.Row()
	if err := b.f.SetSheetRow(models.InfoSheet, "A2", &row); err != nil {
		return b.revert(sheetErr("info", models.InfoSheet, err))
	}
	if err := b.save(); err != nil {
		return b.revert(err)
	}

	b.log.Info("info updated", zap.String("city", info.City), zap.String("country", info.Country))
	return nil
}
