package browse

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
)

// WriteSheet renders a product sheet as an aligned table under its title.
func WriteSheet(w io.Writer, s models.ProductSheet) error {
	if _, err := fmt.Fprintf(w, "== %s ==\n", s.Title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(models.ProductHeader, "\t")+"\t")
	for _, r := range s.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t\n", r.Date.Format(models.TimeLayout), r.Name, r.Description, r.Stock, r.Price)
	}
	if len(s.Records) == 0 {
		fmt.Fprintln(tw, "(no records)")
	}
	return tw.Flush()
}

// WriteSummary renders one line per product with its current stock and price.
func WriteSummary(w io.Writer, sheets []models.ProductSheet) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Sheet\tStock\tPrice\tUpdated\tRecords\t")
	for _, s := range sheets {
		last, ok := s.Last()
		if !ok {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t0\t\n", s.Title)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%d\t\n", s.Title, last.Stock, last.Price, last.Date.Format(models.TimeLayout), len(s.Records))
	}
	return tw.Flush()
}
