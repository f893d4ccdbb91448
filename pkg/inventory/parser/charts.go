package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"sort"
	"strings"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":     "Line",
	"line3DChart":   "3DLine",
	"barChart":      "Bar",
	"bar3DChart":    "3DBar",
	"areaChart":     "Area",
	"area3DChart":   "3DArea",
	"pieChart":      "Pie",
	"doughnutChart": "Doughnut",
	"scatterChart":  "XYScatter",
	"radarChart":    "Radar",
}

// ExtractCharts reads chart parts of an xlsx file in part order.
func ExtractCharts(xlsxPath string) ([]models.Chart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var parts []*zip.File
	for _, f := range r.File {
		if strings.HasPrefix(f.Name, "xl/charts/chart") && strings.HasSuffix(f.Name, ".xml") {
			parts = append(parts, f)
		}
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].Name < parts[j].Name })

	var charts []models.Chart
	for _, part := range parts {
		data, err := readZipEntry(part)
		if err != nil {
			return nil, err
		}
		chart := parseChartXML(data)
		chart.Part = part.Name
		charts = append(charts, chart)
	}
	return charts, nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseChartXML walks a chart part. The chart title is the first title met before
// the plot area; axis titles live inside the plot area and are ignored.
func parseChartXML(data []byte) models.Chart {
	var chart models.Chart
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	var (
		inPlotArea bool
		inTitle    bool
		series     *models.ChartSeries
		section    string // tx, cat or val inside a series
		inFormula  bool
	)

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch name := t.Name.Local; {
			case name == "plotArea":
				inPlotArea = true
			case name == "title" && !inPlotArea && chart.Title == "":
				inTitle = true
			case inPlotArea && ChartTypeMap[name] != "" && chart.ChartType == "":
				chart.ChartType = ChartTypeMap[name]
			case inPlotArea && name == "ser":
				series = &models.ChartSeries{}
			case series != nil && (name == "tx" || name == "cat" || name == "val"):
				section = name
			case series != nil && name == "f":
				inFormula = true
			}
		case xml.CharData:
			switch {
			case inTitle:
				chart.Title += string(t)
			case inFormula:
				ref := strings.TrimSpace(string(t))
				switch section {
				case "tx":
					series.NameRange = ref
				case "cat":
					series.XRange = ref
				case "val":
					series.YRange = ref
				}
			}
		case xml.EndElement:
			switch name := t.Name.Local; {
			case name == "plotArea":
				inPlotArea = false
			case name == "title" && inTitle:
				inTitle = false
				chart.Title = strings.TrimSpace(chart.Title)
			case name == "ser" && series != nil:
				chart.Series = append(chart.Series, *series)
				series = nil
				section = ""
			case name == "f":
				inFormula = false
			case name == section:
				section = ""
			}
		}
	}

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}
	return chart
}
