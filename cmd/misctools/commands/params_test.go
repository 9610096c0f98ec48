package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paramsFixture = `[geometry]
span = 12.5
segments = 4

[materials]
grade = 'A36'
layers = [1, 2, 3]
damping = 0
`

func TestParamsShow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "campaign.cfg", paramsFixture)

	out, err := execute(t, NewParamsCommand(), "show", path)
	require.NoError(t, err)

	assert.Contains(t, out, "span")
	assert.Contains(t, out, "12.5")
	assert.Contains(t, out, "grade")
	assert.Contains(t, out, "A36")
	assert.Contains(t, out, "Total: 5 variables")
}

func TestParamsShow_ZeroAsMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "campaign.cfg", paramsFixture)

	out, err := execute(t, NewParamsCommand(), "show", path, "--zero-as-missing")
	require.NoError(t, err)

	assert.Contains(t, out, "damping")
	assert.Contains(t, out, "none")
}

func TestParamsShow_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := execute(t, NewParamsCommand(), "show", "nope.cfg")
	require.Error(t, err)
}
