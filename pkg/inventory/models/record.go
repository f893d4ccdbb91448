// Package models defines the data structures stored in an inventory workbook.
package models

import "time"

// TimeLayout is the text layout of the Transaction Date column.
const TimeLayout = "2006-01-02 15:04:05"

// Column titles of a product sheet header, in column order.
const (
	ColumnDate        = "Transaction Date"
	ColumnName        = "Name"
	ColumnDescription = "Description"
	ColumnStock       = "Stock"
	ColumnPrice       = "Price"
)

// ProductHeader is the fixed first row of every product sheet.
var ProductHeader = []string{ColumnDate, ColumnName, ColumnDescription, ColumnStock, ColumnPrice}

// Record is one transaction row: a snapshot of a product at a point in time.
type Record struct {
	// Date is when the snapshot was written.
	Date time.Time `json:"date"`
	// Name is the product name. The sheet title follows the latest record's name.
	Name string `json:"name"`
	// Description is free text.
	Description string `json:"description"`
	// Stock is the number of items on hand.
	Stock int `json:"stock"`
	// Price is the unit price in whole currency units.
	Price int `json:"price"`
}

// Row returns the record as cell values in header order.
func (r Record) Row() []interface{} {
	return []interface{}{r.Date.Format(TimeLayout), r.Name, r.Description, r.Stock, r.Price}
}
