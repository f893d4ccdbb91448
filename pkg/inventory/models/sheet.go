package models

// ProductSheet is a product worksheet together with its transaction records.
type ProductSheet struct {
	// Title is the worksheet title.
	Title string `json:"title"`
	// Records holds the rows below the header, oldest first.
	Records []Record `json:"records,omitempty"`
}

// Last returns the most recent record, or false when the sheet holds only its header.
func (s ProductSheet) Last() (Record, bool) {
	if len(s.Records) == 0 {
		return Record{}, false
	}
	return s.Records[len(s.Records)-1], true
}
