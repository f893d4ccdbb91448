package chart

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
)

// WritePrices renders a price series as an aligned table with a bar per point.
func WritePrices(w io.Writer, s Series) error {
	if len(s.Points) == 0 {
		_, err := fmt.Fprintln(w, ErrNoData.Error())
		return err
	}
	high := 0
	for _, p := range s.Points {
		if p.Price > high {
			high = p.Price
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t\n", models.ColumnDate, models.ColumnPrice)
	for _, p := range s.Points {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", p.Date.Format(models.TimeLayout), p.Price, bar(p.Price, high, 40))
	}
	return tw.Flush()
}

// WriteDeltas renders delta series side by side, one column per product.
func WriteDeltas(w io.Writer, series []DeltaSeries) error {
	n := maxLen(series)
	if n == 0 {
		_, err := fmt.Fprintln(w, ErrNoData.Error())
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "Step\t")
	for _, s := range series {
		fmt.Fprintf(tw, "%s\t", s.Name)
	}
	fmt.Fprintln(tw)
	for i := 0; i < n; i++ {
		fmt.Fprintf(tw, "%d\t", i+1)
		for _, s := range series {
			if i < len(s.Deltas) {
				fmt.Fprintf(tw, "%+d\t", s.Deltas[i])
			} else {
				fmt.Fprint(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func bar(v, high, width int) string {
	if high <= 0 || v <= 0 {
		return ""
	}
	return strings.Repeat("#", v*width/high)
}
