package chart

import (
	"fmt"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
	"github.com/xuri/excelize/v2"
)

// DataSheet is the sheet of an exported workbook that holds the plotted values.
const DataSheet = "ChartData"

// Chart titles, matching what the chart panel used to show.
const (
	PriceTitle = "Product Prices Over Time"
	DeltaTitle = "Change in Price Over Time for All Sheets"
)

// ExportPrices writes s to a new workbook at path with a line chart of price over time.
func ExportPrices(path string, s Series) error {
	if len(s.Points) == 0 {
		return ErrNoData
	}

	f, err := newDataFile()
	if err != nil {
		return err
	}
	defer f.Close()

	header := []interface{}{models.ColumnDate, s.Name}
	if err := f.SetSheetRow(DataSheet, "A1", &header); err != nil {
		return err
	}
	for i, p := range s.Points {
		row := []interface{}{p.Date.Format(models.TimeLayout), p.Price}
		if err := f.SetSheetRow(DataSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	last := len(s.Points) + 1
	ch := lineChart(PriceTitle, models.ColumnDate, models.ColumnPrice)
	ch.Series = []excelize.ChartSeries{{
		Name:       ref("B", 1),
		Categories: rangeRef("A", 2, last),
		Values:     rangeRef("B", 2, last),
		Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
	}}
	if err := f.AddChart(DataSheet, "D2", ch); err != nil {
		return fmt.Errorf("add chart: %w", err)
	}
	return f.SaveAs(path)
}

// ExportDeltas writes one column of price changes per product to a new
// workbook at path with a line chart over the change index.
func ExportDeltas(path string, series []DeltaSeries) error {
	n := maxLen(series)
	if n == 0 {
		return ErrNoData
	}

	f, err := newDataFile()
	if err != nil {
		return err
	}
	defer f.Close()

	header := []interface{}{"Step"}
	for _, s := range series {
		header = append(header, s.Name)
	}
	if err := f.SetSheetRow(DataSheet, "A1", &header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		row := []interface{}{i + 1}
		for _, s := range series {
			if i < len(s.Deltas) {
				row = append(row, s.Deltas[i])
			} else {
				row = append(row, nil)
			}
		}
		if err := f.SetSheetRow(DataSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	last := n + 1
	ch := lineChart(DeltaTitle, "Time", "Change in Price")
	for i, s := range series {
		if len(s.Deltas) == 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return err
		}
		ch.Series = append(ch.Series, excelize.ChartSeries{
			Name:       ref(col, 1),
			Categories: rangeRef("A", 2, last),
			Values:     rangeRef(col, 2, last),
		})
	}

	anchor, err := excelize.CoordinatesToCellName(len(series)+3, 2)
	if err != nil {
		return err
	}
	if err := f.AddChart(DataSheet, anchor, ch); err != nil {
		return fmt.Errorf("add chart: %w", err)
	}
	return f.SaveAs(path)
}

func newDataFile() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), DataSheet); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func lineChart(title, xTitle, yTitle string) *excelize.Chart {
	return &excelize.Chart{
		Type:      excelize.Line,
		Title:     []excelize.RichTextRun{{Text: title}},
		XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: xTitle}}},
		YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: yTitle}}},
		Legend:    excelize.ChartLegend{Position: "right"},
		Dimension: excelize.ChartDimension{Width: 720, Height: 480},
	}
}

func ref(col string, row int) string {
	return fmt.Sprintf("%s!$%s$%d", DataSheet, col, row)
}

func rangeRef(col string, from, to int) string {
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", DataSheet, col, from, col, to)
}
