package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseChartXML(t *testing.T) {
	data := []byte(`<c:chartSpace xmlns:c="c" xmlns:a="a"><c:chart>
<c:title><c:tx><c:rich><a:p><a:r><a:t>Product Prices Over Time</a:t></a:r></a:p></c:rich></c:tx></c:title>
<c:plotArea><c:lineChart>
<c:ser><c:tx><c:strRef><c:f>ChartData!$B$1</c:f></c:strRef></c:tx>
<c:cat><c:strRef><c:f>ChartData!$A$2:$A$4</c:f></c:strRef></c:cat>
<c:val><c:numRef><c:f>ChartData!$B$2:$B$4</c:f></c:numRef></c:val></c:ser>
</c:lineChart>
<c:valAx><c:title><c:tx><c:rich><a:p><a:r><a:t>Price</a:t></a:r></a:p></c:rich></c:tx></c:title></c:valAx>
</c:plotArea></c:chart></c:chartSpace>`)

	chart := parseChartXML(data)

	if chart.ChartType != "Line" {
		t.Errorf("Expected Line, got %q", chart.ChartType)
	}
	if chart.Title != "Product Prices Over Time" {
		t.Errorf("Unexpected title %q", chart.Title)
	}
	if len(chart.Series) != 1 {
		t.Fatalf("Expected 1 series, got %d", len(chart.Series))
	}
	s := chart.Series[0]
	if s.NameRange != "ChartData!$B$1" || s.XRange != "ChartData!$A$2:$A$4" || s.YRange != "ChartData!$B$2:$B$4" {
		t.Errorf("Unexpected series %+v", s)
	}
}

func TestParseChartXMLUnknown(t *testing.T) {
	chart := parseChartXML([]byte(`<chartSpace><chart><plotArea/></chart></chartSpace>`))
	if chart.ChartType != "unknown" {
		t.Errorf("Expected unknown, got %q", chart.ChartType)
	}
}

func TestExtractChartsFromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	for i, v := range []int{10, 12, 11} {
		f.SetCellValue("Sheet1", cellName(1, i+2), i+1)
		f.SetCellValue("Sheet1", cellName(2, i+2), v)
	}
	err := f.AddChart("Sheet1", "D2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       "Sheet1!$B$1",
			Categories: "Sheet1!$A$2:$A$4",
			Values:     "Sheet1!$B$2:$B$4",
		}},
		Title: []excelize.RichTextRun{{Text: "Prices"}},
	})
	if err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}
	tmpFile := filepath.Join(t.TempDir(), "chart.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	charts, err := ExtractCharts(tmpFile)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}
	if len(charts) != 1 {
		t.Fatalf("Expected 1 chart, got %d", len(charts))
	}
	if charts[0].ChartType != "Line" || charts[0].Title != "Prices" || len(charts[0].Series) != 1 {
		t.Errorf("Unexpected chart %+v", charts[0])
	}
	if charts[0].Series[0].YRange != "Sheet1!$B$2:$B$4" {
		t.Errorf("Unexpected values range %q", charts[0].Series[0].YRange)
	}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
