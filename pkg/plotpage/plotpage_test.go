package plotpage_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo1392/misc-tools/pkg/plotpage"
)

func sizeSection() plotpage.Section {
	chart := plotpage.BuildBarChart(nil, []string{"run_1", "run_2"}, []plotpage.BarSeries{
		{Name: "Size", Data: []float64{120.5, 340.2}},
	}, "MB")

	return plotpage.Section{
		Title:    "Folder Sizes",
		Subtitle: "Disk usage per campaign folder",
		Hint: plotpage.Hint{
			Title: "Reading This Chart",
			Items: []string{"Each bar is one results folder."},
		},
		Chart: chart,
	}
}

func TestNewPage_Defaults(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Campaign Overview", "Post-processing summary")

	assert.Equal(t, "Campaign Overview", page.Title)
	assert.Equal(t, "Post-processing summary", page.Description)
	assert.Equal(t, "misctools", page.ProjectName)
	assert.Equal(t, "Campaign Reports", page.Subtitle)
	assert.Equal(t, plotpage.ThemeLight, page.Theme)
	assert.Equal(t, plotpage.DefaultStyle(), page.Style)
}

func TestPage_Render(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Campaign Overview", "Post-processing summary")
	page.Add(sizeSection())

	var buf bytes.Buffer

	require.NoError(t, page.Render(&buf))

	html := buf.String()
	assert.Equal(t, 1, strings.Count(html, "<!DOCTYPE"))
	assert.Contains(t, html, "Campaign Overview")
	assert.Contains(t, html, "Post-processing summary")
	assert.Contains(t, html, "Folder Sizes")
	assert.Contains(t, html, "Disk usage per campaign folder")
	assert.Contains(t, html, "Each bar is one results folder.")
	assert.Contains(t, html, `class="echart-box"`)
	assert.NotContains(t, html, `class="container"`)
}

func TestPage_Render_SectionWithoutChart(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Campaign Overview", "")
	page.Add(plotpage.Section{Title: "Notes", Subtitle: "No chart here"})

	var buf bytes.Buffer

	require.NoError(t, page.Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "Notes")
	assert.Contains(t, html, "No chart here")
	assert.NotContains(t, html, "echart-box")
}

func TestPage_WithTheme(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Campaign Overview", "").WithTheme(plotpage.ThemeDark)

	var buf bytes.Buffer

	require.NoError(t, page.Render(&buf))

	assert.Contains(t, buf.String(), plotpage.GetThemeConfig(plotpage.ThemeDark).Background)
}

func TestHTMLRenderer_ExtraCSS(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Campaign Overview", "")
	renderer := plotpage.HTMLRenderer{ExtraCSS: ".echart-box { border: 1px dashed red; }"}

	var buf bytes.Buffer

	require.NoError(t, renderer.Render(&buf, page))

	assert.Contains(t, buf.String(), "1px dashed red")
}

func TestGetThemeConfig(t *testing.T) {
	t.Parallel()

	light := plotpage.GetThemeConfig(plotpage.ThemeLight)
	dark := plotpage.GetThemeConfig(plotpage.ThemeDark)

	assert.NotEqual(t, light.Background, dark.Background)
	assert.NotEmpty(t, light.TextPrimary)
	assert.NotEmpty(t, dark.TextPrimary)
}

func TestPalette(t *testing.T) {
	t.Parallel()

	light := plotpage.Palette(plotpage.ThemeLight)
	dark := plotpage.Palette(plotpage.ThemeDark)

	assert.Len(t, light, 8)
	assert.Len(t, dark, 8)
	assert.NotEqual(t, light[0], dark[0])
}
