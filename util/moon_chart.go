package util

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderMoonIlluminationChart writes an HTML line chart of the Moon's
// lit percentage per day of a month. values[i] is day i+1.
func RenderMoonIlluminationChart(w io.Writer, title string, values []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Moon Illumination",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Moon Illumination - " + title,
			Subtitle: "Percent of the disk lit, per day",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: 0,
			Max: 100,
		}),
	)

	days := make([]string, 0, len(values))
	points := make([]opts.LineData, 0, len(values))
	for i, v := range values {
		days = append(days, strconv.Itoa(i+1))
		points = append(points, opts.LineData{Value: v})
	}

	line.SetXAxis(days)
	line.AddSeries("Illumination %", points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{c}",
		}),
	)

	return line.Render(w)
}
