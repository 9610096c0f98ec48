package commands

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/dataset"
	"github.com/rodrigo1392/misc-tools/pkg/fsutil"
	"github.com/rodrigo1392/misc-tools/pkg/mathutil"
	"github.com/rodrigo1392/misc-tools/pkg/plotpage"
	"github.com/rodrigo1392/misc-tools/pkg/statutil"
)

// reportFilePerm matches the result files the campaign tools write.
const reportFilePerm = 0o600

// demoCurvePoints is the Akima resample resolution of the demo curve.
const demoCurvePoints = 200

// NewPlotCommand groups the HTML report subcommands.
func NewPlotCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render HTML report pages",
	}

	cmd.AddCommand(newPlotPageCommand(app), newPlotDemoCommand(app))

	return cmd
}

func newPlotPageCommand(app *App) *cobra.Command {
	var (
		output string
		theme  string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "page <store.mtd>",
		Short: "Render a result store as an HTML report",
		Long: `Render a result store as an HTML report with one chart section per
root group and one line trace per dataset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := dataset.Open(args[0])
			if err != nil {
				return err
			}

			pageTheme := resolveTheme(cmd, app, theme)
			cOpts := plotpage.NewChartOpts(pageTheme)

			page := plotpage.NewPage(title, fmt.Sprintf("Result curves from %s", filepath.Base(args[0])))
			page.WithTheme(pageTheme)

			for _, group := range store.Groups {
				series := make([]plotpage.LineSeries, 0, len(group.Datasets))
				maxLen := 0

				for _, ds := range group.Datasets {
					series = append(series, plotpage.LineSeries{Name: ds.Name, Data: ds.Values})
					maxLen = max(maxLen, len(ds.Values))
				}

				chart := plotpage.BuildLineChart(cOpts, sampleLabels(maxLen), series, "Sample", group.Name)

				page.Add(plotpage.Section{
					Title:    group.Name,
					Subtitle: fmt.Sprintf("%d traces", len(group.Datasets)),
					Chart:    chart,
				})
			}

			return writePage(cmd, page, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "report", "Output directory")
	cmd.Flags().StringVar(&theme, "theme", "", "Page theme: light or dark (default from config)")
	cmd.Flags().StringVar(&title, "title", "Campaign Results", "Page title")

	return cmd
}

func newPlotDemoCommand(app *App) *cobra.Command {
	var (
		output string
		theme  string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a sample report page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pageTheme := resolveTheme(cmd, app, theme)
			cOpts := plotpage.NewChartOpts(pageTheme)

			page := plotpage.NewPage("Report Demo", "Sample sections rendered from synthetic campaign data")
			page.WithTheme(pageTheme)

			curve, err := demoCurveSection(cOpts)
			if err != nil {
				return err
			}

			plan, planErr := demoPlanSection(cOpts)
			if planErr != nil {
				return planErr
			}

			page.Add(curve, plan)

			return writePage(cmd, page, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "report", "Output directory")
	cmd.Flags().StringVar(&theme, "theme", "", "Page theme: light or dark (default from config)")

	return cmd
}

// demoCurveSection builds a smoothed sine resampled with the Akima
// spline, the same path result curves take.
func demoCurveSection(cOpts *plotpage.ChartOpts) (plotpage.Section, error) {
	xs := mathutil.Linspace(0, 1, 21)

	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(2 * math.Pi * x)
	}

	newXs, newYs, err := mathutil.AkimaResample(xs, ys, demoCurvePoints)
	if err != nil {
		return plotpage.Section{}, err
	}

	labels := make([]string, len(newXs))
	for i, x := range newXs {
		labels[i] = strconv.FormatFloat(x, 'f', 2, 64)
	}

	chart := plotpage.BuildLineChart(cOpts, labels,
		[]plotpage.LineSeries{{Name: "Resampled", Data: newYs, Smooth: true}},
		"Time (s)", "Amplitude")

	return plotpage.Section{
		Title:    "Resampled Curve",
		Subtitle: "Akima spline through a coarse sine",
		Hint: plotpage.Hint{
			Title: "Reading this chart",
			Items: []string{"The trace is rebuilt from 21 support points."},
		},
		Chart: chart,
	}, nil
}

// demoPlanSection builds a two-variable Halton sampling plan cloud.
func demoPlanSection(cOpts *plotpage.ChartOpts) (plotpage.Section, error) {
	rows, err := statutil.Halton(2, 64)
	if err != nil {
		return plotpage.Section{}, err
	}

	points := make([][2]float64, len(rows))
	for i, row := range rows {
		points[i] = [2]float64{row[0], row[1]}
	}

	chart := plotpage.BuildScatterChart(cOpts,
		[]plotpage.ScatterSeries{{Name: "Halton", Points: points}},
		"x1", "x2")

	return plotpage.Section{
		Title:    "Sampling Plan",
		Subtitle: "64-point Halton sequence in two variables",
		Hint: plotpage.Hint{
			Title: "Reading this chart",
			Items: []string{"Low-discrepancy points cover the unit square without clustering."},
		},
		Chart: chart,
	}, nil
}

// resolveTheme picks the page theme from the flag or configuration.
func resolveTheme(cmd *cobra.Command, app *App, flagValue string) plotpage.Theme {
	if cmd.Flags().Changed("theme") || app.Config == nil {
		if flagValue == "" {
			return plotpage.ThemeLight
		}

		return plotpage.Theme(flagValue)
	}

	return plotpage.Theme(app.Config.Plot.Theme)
}

// writePage renders the page under the output directory as index.html.
func writePage(cmd *cobra.Command, page *plotpage.Page, outputDir string) error {
	if _, err := fsutil.EnsureDir(outputDir); err != nil {
		return err
	}

	var buf bytes.Buffer

	if renderErr := page.Render(&buf); renderErr != nil {
		return renderErr
	}

	path := filepath.Join(outputDir, "index.html")

	if writeErr := os.WriteFile(path, buf.Bytes(), reportFilePerm); writeErr != nil {
		return fmt.Errorf("write report: %w", writeErr)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)

	return nil
}

// sampleLabels numbers chart x positions 0..n-1.
func sampleLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return labels
}
