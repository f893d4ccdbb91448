package models

// WorkbookData is a read-only snapshot of an inventory workbook.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Info is the metadata row, if any.
	Info *Info `json:"info,omitempty"`
	// Sheets lists product sheets in workbook order.
	Sheets []ProductSheet `json:"sheets"`
}
