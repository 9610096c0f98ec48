package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotDemo(t *testing.T) {
	t.Parallel()

	outDir := filepath.Join(t.TempDir(), "report")

	out, err := execute(t, NewPlotCommand(newTestApp(t)), "demo", "-o", outDir)
	require.NoError(t, err)

	indexPath := filepath.Join(outDir, "index.html")
	assert.Contains(t, out, "Report written to "+indexPath)

	html := readFile(t, indexPath)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Resampled Curve")
	assert.Contains(t, html, "Sampling Plan")
	assert.Contains(t, html, `class="echart-box"`)
}

func TestPlotPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeArchive(t, dir, "model_1.json", map[string][]float64{
		"disp": {0, 1, 2},
	})
	second := writeArchive(t, dir, "model_2.json", map[string][]float64{
		"disp": {0, 2, 4},
	})
	store := filepath.Join(dir, "results.mtd")

	_, err := execute(t, NewDatasetCommand(), "import", first, second, "--target", store)
	require.NoError(t, err)

	outDir := filepath.Join(dir, "report")

	_, err = execute(t, NewPlotCommand(newTestApp(t)), "page", store, "-o", outDir)
	require.NoError(t, err)

	html := readFile(t, filepath.Join(outDir, "index.html"))
	assert.Contains(t, html, "Campaign Results")
	assert.Contains(t, html, "Result curves from results.mtd")
	assert.Contains(t, html, `class="echart-box"`)
}

func TestPlotPage_DarkTheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := writeArchive(t, dir, "model_1.json", map[string][]float64{
		"disp": {0, 1},
	})
	store := filepath.Join(dir, "results.mtd")

	_, err := execute(t, NewDatasetCommand(), "import", archive, "--target", store)
	require.NoError(t, err)

	outDir := filepath.Join(dir, "report")

	_, err = execute(t, NewPlotCommand(newTestApp(t)), "page", store, "-o", outDir, "--theme", "dark")
	require.NoError(t, err)

	html := readFile(t, filepath.Join(outDir, "index.html"))
	assert.Contains(t, html, "#020617")
}

func TestPlotPage_MissingStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := execute(t, NewPlotCommand(newTestApp(t)), "page", filepath.Join(dir, "ghost.mtd"))
	require.Error(t, err)
}

// readFile loads a file as a string.
func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}
