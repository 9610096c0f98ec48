package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJobFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadJob(t *testing.T) {
	t.Parallel()

	path := writeJobFile(t, `{
		"name": "plate_study",
		"scripts_dir": "scripts",
		"script": "model.py",
		"gui": true,
		"args": ["3", "fine"],
		"options": {"mesh_size": 0.5}
	}`)

	job, err := LoadJob(path)
	require.NoError(t, err)

	assert.Equal(t, Job{
		Name:       "plate_study",
		ScriptsDir: "scripts",
		Script:     "model.py",
		ShowGUI:    true,
		Args:       []string{"3", "fine"},
		Options:    map[string]any{"mesh_size": 0.5},
	}, job)
}

func TestLoadJob_MinimalFile(t *testing.T) {
	t.Parallel()

	job, err := LoadJob(writeJobFile(t, `{"script": "model.py"}`))
	require.NoError(t, err)

	assert.Equal(t, Job{Script: "model.py"}, job)
}

func TestLoadJob_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing_script", content: `{"name": "nameless"}`},
		{name: "empty_script", content: `{"script": ""}`},
		{name: "wrong_gui_type", content: `{"script": "model.py", "gui": "yes"}`},
		{name: "unknown_field", content: `{"script": "model.py", "solvr": "abaqus"}`},
		{name: "args_not_strings", content: `{"script": "model.py", "args": [3]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadJob(writeJobFile(t, tc.content))

			require.ErrorIs(t, err, ErrJobInvalid)
		})
	}
}

func TestLoadJob_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := LoadJob(writeJobFile(t, `{"script": `))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate job file")
}

func TestLoadJob_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadJob(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read job file")
}
