package chart

import (
	"time"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
)

// Point is a price at a transaction time.
type Point struct {
	Date  time.Time `json:"date"`
	Price int       `json:"price"`
}

// Series is the price history of one product.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// DeltaSeries holds the price changes between consecutive in-range records of one product.
type DeltaSeries struct {
	Name   string `json:"name"`
	Deltas []int  `json:"deltas"`
}

// Prices returns the price of every record within rng, oldest first.
func Prices(name string, records []models.Record, rng *DateRange) Series {
	s := Series{Name: name}
	for _, rec := range records {
		if rng.Contains(rec.Date) {
			s.Points = append(s.Points, Point{Date: rec.Date, Price: rec.Price})
		}
	}
	return s
}

// Deltas returns price changes between consecutive records within rng.
// Records outside the range neither contribute a delta nor act as a baseline.
func Deltas(name string, records []models.Record, rng *DateRange) DeltaSeries {
	ds := DeltaSeries{Name: name}
	var prev *int
	for _, rec := range records {
		if !rng.Contains(rec.Date) {
			continue
		}
		price := rec.Price
		if prev != nil {
			ds.Deltas = append(ds.Deltas, price-*prev)
		}
		prev = &price
	}
	return ds
}

// AllDeltas computes Deltas for every sheet, keeping sheet order.
func AllDeltas(sheets []models.ProductSheet, rng *DateRange) []DeltaSeries {
	out := make([]DeltaSeries, 0, len(sheets))
	for _, s := range sheets {
		out = append(out, Deltas(s.Title, s.Records, rng))
	}
	return out
}

func maxLen(series []DeltaSeries) int {
	n := 0
	for _, s := range series {
		if len(s.Deltas) > n {
			n = len(s.Deltas)
		}
	}
	return n
}
