package commands

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo1392/misc-tools/pkg/statutil"
)

func TestStatsCDF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "sample.csv", "3\n1\n4\n2\n")

	out, err := execute(t, NewStatsCommand(), "cdf", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1 0.25", lines[0])
	assert.Equal(t, "4 1", lines[3])
}

func TestStatsCDF_SaveCSV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "sample.csv", "3\n1\n2\n")
	target := filepath.Join(dir, "cdf.csv")

	out, err := execute(t, NewStatsCommand(), "cdf", path, "--output", target)
	require.NoError(t, err)

	assert.Contains(t, out, "*** CSV FILE SAVED ***")

	content, readErr := os.ReadFile(target)
	require.NoError(t, readErr)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "X,P", lines[0])
}

func TestStatsPairs(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewStatsCommand(), "pairs", "a", "b", "c")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"a b", "a c", "b c"}, lines)
}

func TestStatsHalton(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewStatsCommand(), "halton", "--dims", "2", "--points", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	first := strings.Fields(lines[0])
	require.Len(t, first, 2)
	assert.Equal(t, "0.5", first[0])
}

func TestStatsHalton_SaveCSV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "plan.csv")

	_, err := execute(t, NewStatsCommand(), "halton",
		"--dims", "3", "--points", "5", "--output", target)
	require.NoError(t, err)

	content, readErr := os.ReadFile(target)
	require.NoError(t, readErr)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "x1,x2,x3", lines[0])
}

func TestStatsMonteCarlo_SeededReproducible(t *testing.T) {
	t.Parallel()

	args := []string{"montecarlo", "--dims", "2", "--points", "3", "--seed", "7"}

	first, err := execute(t, NewStatsCommand(), args...)
	require.NoError(t, err)

	second, err := execute(t, NewStatsCommand(), args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	for _, line := range strings.Split(strings.TrimSpace(first), "\n") {
		for _, field := range strings.Fields(line) {
			value, parseErr := strconv.ParseFloat(field, 64)
			require.NoError(t, parseErr)
			assert.GreaterOrEqual(t, value, -1.0)
			assert.LessOrEqual(t, value, 1.0)
		}
	}
}

func TestStatsCoded(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewStatsCommand(), "coded", "0", "--min", "2", "--max", "10")
	require.NoError(t, err)
	assert.Equal(t, "6", strings.TrimSpace(out))
}

func TestStatsCoded_ToCoded(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewStatsCommand(), "coded", "6", "--min", "2", "--max", "10", "--to-coded")
	require.NoError(t, err)
	assert.Equal(t, "0", strings.TrimSpace(out))
}

func TestStatsHalton_InvalidShape(t *testing.T) {
	t.Parallel()

	_, err := execute(t, NewStatsCommand(), "halton", "--dims", "0", "--points", "4")
	require.ErrorIs(t, err, statutil.ErrInvalidShape)
}
