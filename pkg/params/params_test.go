package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCfg drops a campaign input file into a temp dir.
func writeCfg(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "campaign.cfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const campaignCfg = `[PARAMETRIC_VARIABLES]
PARAMETERS_LIST = ['ALPHA_DYN']
NORMAL_VALUES = [-0.05]
ANALYSIS_FOLDER = 'C:/abaqus_results/'
[DATABASE]
DATABASE_FOLDER = C:/abaqus_results/
EXTRACTION_ALGORITHM = ''
[OUTPUT_GATHER]
GUI = 0
`

func TestLoad_CampaignFile(t *testing.T) {
	t.Parallel()

	path := writeCfg(t, campaignCfg)

	got, err := Load(path, LoadOptions{})
	require.NoError(t, err)

	// Sections flatten to lowercased keys.
	assert.Equal(t, []any{"ALPHA_DYN"}, got["parameters_list"])
	assert.Equal(t, []any{-0.05}, got["normal_values"])
	assert.Equal(t, int64(0), got["gui"])
	assert.Equal(t, "", got["extraction_algorithm"])

	// Quoted and bare paths read identically.
	assert.Equal(t, "C:/abaqus_results/", got["analysis_folder"])
	assert.Equal(t, got["analysis_folder"], got["database_folder"])
}

func TestLoad_ZeroAsMissing(t *testing.T) {
	t.Parallel()

	path := writeCfg(t, campaignCfg)

	got, err := Load(path, LoadOptions{ZeroAsMissing: true})
	require.NoError(t, err)

	val, present := got["gui"]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestLoad_LaterSectionWins(t *testing.T) {
	t.Parallel()

	path := writeCfg(t, "[A]\nKEY = 1\n[B]\nKEY = 2\n")

	got, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), got["key"])
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.cfg"), LoadOptions{})
	require.Error(t, err)
}

func TestParseLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected any
	}{
		{name: "integer", raw: "42", expected: int64(42)},
		{name: "negative_integer", raw: "-3", expected: int64(-3)},
		{name: "float", raw: "-0.05", expected: -0.05},
		{name: "scientific_float", raw: "1e3", expected: 1000.0},
		{name: "single_quoted", raw: "'C:/results/'", expected: "C:/results/"},
		{name: "double_quoted", raw: `"hello"`, expected: "hello"},
		{name: "empty_quotes", raw: "''", expected: ""},
		{name: "bare_string", raw: "C:/results/", expected: "C:/results/"},
		{name: "true_word", raw: "True", expected: true},
		{name: "false_word", raw: "False", expected: false},
		{name: "none_word", raw: "None", expected: nil},
		{name: "string_list", raw: "['A', 'B']", expected: []any{"A", "B"}},
		{name: "number_list", raw: "[1, 2.5, -3]", expected: []any{int64(1), 2.5, int64(-3)}},
		{name: "empty_list", raw: "[]", expected: []any{}},
		{name: "nested_list", raw: "[[1, 2], [3]]", expected: []any{[]any{int64(1), int64(2)}, []any{int64(3)}}},
		{name: "quoted_comma_survives", raw: "['a,b', 'c']", expected: []any{"a,b", "c"}},
		{name: "whitespace_trimmed", raw: "  7  ", expected: int64(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ParseLiteral(tt.raw))
		})
	}
}

func TestParams_TypedGetters(t *testing.T) {
	t.Parallel()

	p := Params{
		"name":    "alpha",
		"count":   int64(3),
		"ratio":   0.5,
		"labels":  []any{"a", "b"},
		"values":  []any{1.5, int64(2)},
		"mixed":   []any{"a", int64(1)},
		"missing": nil,
	}

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		s, ok := p.String("name")
		assert.True(t, ok)
		assert.Equal(t, "alpha", s)

		_, ok = p.String("count")
		assert.False(t, ok)
	})

	t.Run("int", func(t *testing.T) {
		t.Parallel()

		n, ok := p.Int("count")
		assert.True(t, ok)
		assert.Equal(t, 3, n)
	})

	t.Run("float_coerces_int", func(t *testing.T) {
		t.Parallel()

		f, ok := p.Float("count")
		assert.True(t, ok)
		assert.InDelta(t, 3.0, f, 0.0001)
	})

	t.Run("strings", func(t *testing.T) {
		t.Parallel()

		ss, ok := p.Strings("labels")
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, ss)

		_, ok = p.Strings("mixed")
		assert.False(t, ok)
	})

	t.Run("floats_coerce_ints", func(t *testing.T) {
		t.Parallel()

		fs, ok := p.Floats("values")
		assert.True(t, ok)
		assert.Equal(t, []float64{1.5, 2.0}, fs)

		_, ok = p.Floats("mixed")
		assert.False(t, ok)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		l, ok := p.List("labels")
		assert.True(t, ok)
		assert.Len(t, l, 2)
	})

	t.Run("absent_key", func(t *testing.T) {
		t.Parallel()

		_, ok := p.String("ghost")
		assert.False(t, ok)
	})
}
