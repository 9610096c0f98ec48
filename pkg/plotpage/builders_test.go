package plotpage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rodrigo1392/misc-tools/pkg/plotpage"
)

func TestBuildLineChart(t *testing.T) {
	t.Parallel()

	cOpts := plotpage.DefaultChartOpts()
	labels := []string{"0.0", "0.5", "1.0"}
	series := []plotpage.LineSeries{
		{
			Name:   "Displacement",
			Data:   []float64{0, 1.2, 2.8},
			Color:  "#2563eb",
			Smooth: true,
		},
		{
			Name: "Reaction",
			Data: []float64{0, 14.5, 22.1},
		},
	}

	chart := plotpage.BuildLineChart(cOpts, labels, series, "Time (s)", "Value")
	require.NotNil(t, chart)
	require.NotEmpty(t, chart.MultiSeries)
	require.Len(t, chart.MultiSeries, 2)
	require.Equal(t, "Displacement", chart.MultiSeries[0].Name)
	require.Equal(t, "Reaction", chart.MultiSeries[1].Name)
}

func TestBuildLineChart_NilOpts(t *testing.T) {
	t.Parallel()

	labels := []string{"0.0"}
	series := []plotpage.LineSeries{
		{Name: "Displacement", Data: []float64{0}},
	}

	chart := plotpage.BuildLineChart(nil, labels, series, "Time (s)", "mm")
	require.NotNil(t, chart)
	require.Len(t, chart.MultiSeries, 1)
}

func TestBuildScatterChart(t *testing.T) {
	t.Parallel()

	cOpts := plotpage.DefaultChartOpts()
	series := []plotpage.ScatterSeries{
		{
			Name:   "Observed",
			Points: [][2]float64{{0.1, 2.4}, {0.6, 3.1}, {0.9, 4.8}},
			Color:  "#0ea5e9",
		},
		{
			Name:   "Fitted",
			Points: [][2]float64{{0.1, 2.2}, {0.9, 4.9}},
		},
	}

	chart := plotpage.BuildScatterChart(cOpts, series, "Strain", "Stress (MPa)")
	require.NotNil(t, chart)
	require.NotEmpty(t, chart.MultiSeries)
	require.Len(t, chart.MultiSeries, 2)
	require.Equal(t, "Observed", chart.MultiSeries[0].Name)
	require.Len(t, chart.MultiSeries[0].Data, 3)
	require.Equal(t, "Fitted", chart.MultiSeries[1].Name)
	require.Len(t, chart.MultiSeries[1].Data, 2)
}

func TestBuildScatterChart_NilOpts(t *testing.T) {
	t.Parallel()

	series := []plotpage.ScatterSeries{
		{Name: "Observed", Points: [][2]float64{{1, 1}}},
	}

	chart := plotpage.BuildScatterChart(nil, series, "Strain", "Stress (MPa)")
	require.NotNil(t, chart)
	require.Len(t, chart.MultiSeries, 1)
}

func TestBuildBarChart(t *testing.T) {
	t.Parallel()

	cOpts := plotpage.DefaultChartOpts()
	labels := []string{"run_1", "run_2", "run_3"}
	series := []plotpage.BarSeries{
		{
			Name:  "Size",
			Data:  []float64{120.5, 340.2, 90.8},
			Color: "#2563eb",
		},
		{
			Name: "Files",
			Data: []float64{14, 35, 9},
		},
	}

	chart := plotpage.BuildBarChart(cOpts, labels, series, "MB")
	require.NotNil(t, chart)
	require.NotEmpty(t, chart.MultiSeries)
	require.Len(t, chart.MultiSeries, 2)
	require.Equal(t, "Size", chart.MultiSeries[0].Name)
	require.Equal(t, "Files", chart.MultiSeries[1].Name)
}

func TestBuildBarChart_NilOpts(t *testing.T) {
	t.Parallel()

	labels := []string{"run_1"}
	series := []plotpage.BarSeries{
		{Name: "Size", Data: []float64{12.5}},
	}

	chart := plotpage.BuildBarChart(nil, labels, series, "MB")
	require.NotNil(t, chart)
	require.Len(t, chart.MultiSeries, 1)
}
