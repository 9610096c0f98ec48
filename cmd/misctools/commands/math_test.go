package commands

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo1392/misc-tools/pkg/mathutil"
)

func TestMathConvert(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewMathCommand(), "convert", "10", "N-kgf")
	require.NoError(t, err)

	value, parseErr := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, parseErr)
	assert.InDelta(t, 98.0665, value, 1e-9)
}

func TestMathConvert_Inverse(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewMathCommand(), "convert", "98.0665", "N-kgf", "--inverse")
	require.NoError(t, err)

	value, parseErr := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, parseErr)
	assert.InDelta(t, 10, value, 1e-9)
}

func TestMathConvert_List(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewMathCommand(), "convert", "--list")
	require.NoError(t, err)

	assert.Contains(t, out, "N-kgf")
	assert.Contains(t, out, "kg/m3-kg/cm3")
}

func TestMathConvert_Unknown(t *testing.T) {
	t.Parallel()

	_, err := execute(t, NewMathCommand(), "convert", "1", "furlongs-parsecs")
	require.ErrorIs(t, err, mathutil.ErrUnknownConversion)
}

func TestMathConvert_MissingArgs(t *testing.T) {
	t.Parallel()

	_, err := execute(t, NewMathCommand(), "convert", "1")
	require.ErrorIs(t, err, errConvertUsage)
}

func TestMathRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "up_to_default_base",
			args: []string{"round", "12"},
			want: "15",
		},
		{
			name: "down",
			args: []string{"round", "12", "--down"},
			want: "10",
		},
		{
			name: "custom_base",
			args: []string{"round", "12", "--base", "4"},
			want: "12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, NewMathCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestMathPrimes(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewMathCommand(), "primes", "5")
	require.NoError(t, err)
	assert.Equal(t, "2 3 5 7 11", strings.TrimSpace(out))
}

func TestMathPrimes_UpTo(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewMathCommand(), "primes", "10", "--up-to")
	require.NoError(t, err)
	assert.Equal(t, "2 3 5 7", strings.TrimSpace(out))
}

func TestMathConsecutive(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewMathCommand(), "consecutive", "1", "2", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "CURRENT NUMBERS: 1 2 3")
	assert.Contains(t, out, "Consecutive run")
}

func TestMathConsecutive_Gap(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewMathCommand(), "consecutive", "1", "2", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "CURRENT NUMBERS: 1 2 4")
	assert.Contains(t, out, "WARNING: RUN BREAKS AT POSITIONS 3")
}

func TestMathIntegrate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "curve.csv", "0,0\n1,1\n")

	out, err := execute(t, NewMathCommand(), "integrate", path)
	require.NoError(t, err)
	assert.Equal(t, "0.5", strings.TrimSpace(out))
}

func TestMathIntegrate_NamedColumns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "curve.csv", "T,F\n0,0\n2,3\n")

	out, err := execute(t, NewMathCommand(), "integrate", path,
		"--header", "--x-col", "T", "--y-col", "F")
	require.NoError(t, err)
	assert.Equal(t, "3", strings.TrimSpace(out))
}

func TestMathIntegrate_MissingColumn(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "curve.csv", "0,0\n1,1\n")

	_, err := execute(t, NewMathCommand(), "integrate", path, "--y-col", "9")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestMathInterp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "curve.csv", "0,0\n1,2\n2,4\n3,6\n4,8\n")

	out, err := execute(t, NewMathCommand(), "interp", path, "--points", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "*** CSV FILE SAVED ***")

	interpPath := filepath.Join(dir, "curve_interp.csv")
	require.FileExists(t, interpPath)

	content, readErr := os.ReadFile(interpPath)
	require.NoError(t, readErr)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "X,Y", lines[0])
}

func TestMathInterp_ExistingTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "curve.csv", "0,0\n1,2\n2,4\n3,6\n4,8\n")

	_, err := execute(t, NewMathCommand(), "interp", path, "--points", "5")
	require.NoError(t, err)

	out, err := execute(t, NewMathCommand(), "interp", path, "--points", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "WARNING: CSV FILE EXISTS")
	assert.Contains(t, out, "curve_interp CSV FILE NOT SAVED")

	out, err = execute(t, NewMathCommand(), "interp", path, "--points", "5", "--overwrite")
	require.NoError(t, err)
	assert.Contains(t, out, "CSV FILE OVERWRITTEN")
}

func TestMathSolve(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewMathCommand(), "solve", "--matrix", "2,0;0,4", "--vector", "2,8")
	require.NoError(t, err)
	assert.Equal(t, "1 2", strings.TrimSpace(out))
}

func TestMathSolve_BadMatrix(t *testing.T) {
	t.Parallel()

	_, err := execute(t, NewMathCommand(), "solve", "--matrix", "2,oops", "--vector", "2")
	require.ErrorIs(t, err, ErrBadMatrix)
}
