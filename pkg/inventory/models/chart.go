package models

// ChartSeries represents series metadata for a chart.
type ChartSeries struct {
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for X axis values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for Y axis values.
	YRange string `json:"y_range,omitempty"`
}

// Chart represents chart metadata read back from a workbook part.
type Chart struct {
	// Part is the zip entry the chart was read from, e.g. xl/charts/chart1.xml.
	Part string `json:"part"`
	// ChartType is the chart type (e.g., Line).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}
