package models

// InfoSheet is the title of the workbook metadata sheet.
const InfoSheet = "Information"

// InfoHeader is the first row of the metadata sheet.
var InfoHeader = []string{"Address", "Established Year", "City", "Country"}

// Info holds the business details kept in the metadata sheet.
type Info struct {
	Address         string `json:"address"`
	EstablishedYear int    `json:"established_year,omitempty"`
	City            string `json:"city"`
	Country         string `json:"country"`
}

// Row returns the info as cell values in header order. A zero year is left blank.
func (i Info) Row() []interface{} {
	var year interface{} = ""
	if i.EstablishedYear != 0 {
		year = i.EstablishedYear
	}
	return []interface{}{i.Address, year, i.City, i.Country}
}
