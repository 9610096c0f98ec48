package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const scatterSymbolSize = 6

// LineSeries is one named trace of y values over the shared x labels.
type LineSeries struct {
	Name   string
	Data   []float64
	Color  string // Optional, theme palette if empty.
	Smooth bool
}

// ScatterSeries is one named cloud of XY points.
type ScatterSeries struct {
	Name   string
	Points [][2]float64
	Color  string // Optional, theme palette if empty.
}

// BarSeries is one named group of bars.
type BarSeries struct {
	Name  string
	Data  []float64
	Color string // Optional, theme palette if empty.
}

// BuildLineChart constructs a themed line chart over shared x labels.
// A nil cOpts selects DefaultChartOpts.
func BuildLineChart(cOpts *ChartOpts, labels []string, series []LineSeries, xLabel, yLabel string) *charts.Line {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init("100%", "500px")),
		charts.WithTooltipOpts(cOpts.Tooltip("axis")),
		charts.WithDataZoomOpts(cOpts.DataZoom()...),
		charts.WithXAxisOpts(cOpts.XAxis(xLabel)),
		charts.WithYAxisOpts(cOpts.YAxis(yLabel)),
		charts.WithLegendOpts(cOpts.Legend()),
		charts.WithGridOpts(cOpts.Grid()),
	)

	line.SetXAxis(labels)

	for _, s := range series {
		lineData := make([]opts.LineData, len(s.Data))
		for i, v := range s.Data {
			lineData[i] = opts.LineData{Value: v}
		}

		var seriesOpts []charts.SeriesOpts
		if s.Color != "" {
			seriesOpts = append(seriesOpts,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
			)
		}

		if s.Smooth {
			seriesOpts = append(seriesOpts, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		}

		line.AddSeries(s.Name, lineData, seriesOpts...)
	}

	return line
}

// BuildScatterChart constructs a themed scatter chart of XY point
// clouds on numeric axes. A nil cOpts selects DefaultChartOpts.
func BuildScatterChart(cOpts *ChartOpts, series []ScatterSeries, xLabel, yLabel string) *charts.Scatter {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init("100%", "500px")),
		charts.WithTooltipOpts(cOpts.Tooltip("item")),
		charts.WithXAxisOpts(cOpts.ValueXAxis(xLabel)),
		charts.WithYAxisOpts(cOpts.YAxis(yLabel)),
		charts.WithLegendOpts(cOpts.Legend()),
		charts.WithGridOpts(cOpts.Grid()),
	)

	for _, s := range series {
		points := make([]opts.ScatterData, len(s.Points))
		for i, p := range s.Points {
			points[i] = opts.ScatterData{Value: []float64{p[0], p[1]}, SymbolSize: scatterSymbolSize}
		}

		var seriesOpts []charts.SeriesOpts
		if s.Color != "" {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		}

		scatter.AddSeries(s.Name, points, seriesOpts...)
	}

	return scatter
}

// BuildBarChart constructs a themed bar chart over shared x labels.
// A nil cOpts selects DefaultChartOpts.
func BuildBarChart(cOpts *ChartOpts, labels []string, series []BarSeries, yLabel string) *charts.Bar {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init("100%", "500px")),
		charts.WithTooltipOpts(cOpts.Tooltip("axis")),
		charts.WithDataZoomOpts(cOpts.DataZoom()...),
		charts.WithXAxisOpts(cOpts.XAxis("")),
		charts.WithYAxisOpts(cOpts.YAxis(yLabel)),
		charts.WithLegendOpts(cOpts.Legend()),
		charts.WithGridOpts(cOpts.Grid()),
	)

	bar.SetXAxis(labels)

	for _, s := range series {
		barData := make([]opts.BarData, len(s.Data))
		for i, v := range s.Data {
			barData[i] = opts.BarData{Value: v}
		}

		var seriesOpts []charts.SeriesOpts
		if s.Color != "" {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		}

		bar.AddSeries(s.Name, barData, seriesOpts...)
	}

	return bar
}
