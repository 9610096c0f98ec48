package runner

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo1392/misc-tools/pkg/persist"
)

type fakeRunner struct {
	dir  string
	name string
	args []string
	code int
	err  error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (int, error) {
	f.dir = dir
	f.name = name
	f.args = args

	return f.code, f.err
}

func TestJob_CommandArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		job      Job
		expected []string
	}{
		{
			name:     "headless",
			job:      Job{Script: "model.py"},
			expected: []string{"cae", "noGUI=model.py"},
		},
		{
			name:     "with_gui",
			job:      Job{Script: "model.py", ShowGUI: true},
			expected: []string{"cae", "-script", "model.py"},
		},
		{
			name:     "headless_with_args",
			job:      Job{Script: "model.py", Args: []string{"3", "fine"}},
			expected: []string{"cae", "noGUI=model.py", "--", "3", "fine"},
		},
		{
			name:     "gui_with_args",
			job:      Job{Script: "model.py", ShowGUI: true, Args: []string{"3"}},
			expected: []string{"cae", "-script", "model.py", "--", "3"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.job.CommandArgs())
		})
	}
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fake := &fakeRunner{}
	runner := &Runner{Solver: "abaqus", Commands: fake}

	job := Job{
		Name:       "plate_study",
		ScriptsDir: dir,
		Script:     "model.py",
		Options:    map[string]any{"mesh_size": 0.5, "material": "steel"},
	}

	result, err := runner.Run(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, "abaqus", fake.name)
	assert.Equal(t, dir, fake.dir)
	assert.Equal(t, []string{"cae", "noGUI=model.py"}, fake.args)

	assert.Zero(t, result.ExitCode)
	assert.Equal(t, filepath.Join(dir, "solver_options.json"), result.OptionsPath)

	var options map[string]any

	require.NoError(t, persist.LoadFile(result.OptionsPath, persist.NewJSONCodec(), &options))
	assert.Equal(t, map[string]any{"mesh_size": 0.5, "material": "steel"}, options)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	t.Parallel()

	runner := &Runner{Solver: "abaqus", Commands: &fakeRunner{code: 1}}

	result, err := runner.Run(context.Background(), Job{ScriptsDir: t.TempDir(), Script: "model.py"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ExitCode)
}

func TestRunner_Run_MissingScript(t *testing.T) {
	t.Parallel()

	runner := &Runner{Solver: "abaqus", Commands: &fakeRunner{}}

	_, err := runner.Run(context.Background(), Job{ScriptsDir: t.TempDir()})

	require.ErrorIs(t, err, ErrJobInvalid)
}

func TestRunner_Run_LaunchFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{err: errors.New("binary not found")}
	runner := &Runner{Solver: "abaqus", Commands: fake}

	_, err := runner.Run(context.Background(), Job{ScriptsDir: t.TempDir(), Script: "model.py"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run solver")
}

func TestRunner_Run_OptionsPathOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	optionsPath := filepath.Join(dir, "handoff.json")
	runner := &Runner{Solver: "abaqus", OptionsPath: optionsPath, Commands: &fakeRunner{}}

	result, err := runner.Run(context.Background(), Job{ScriptsDir: dir, Script: "model.py"})
	require.NoError(t, err)

	assert.Equal(t, optionsPath, result.OptionsPath)
	assert.FileExists(t, optionsPath)
}

func TestNew_DefaultSolver(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultSolver, New("").Solver)
	assert.Equal(t, "ansys", New("ansys").Solver)
}

func TestExecRunner_LaunchFailure(t *testing.T) {
	t.Parallel()

	_, err := ExecRunner{}.Run(context.Background(), t.TempDir(), "no-such-solver-binary")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start no-such-solver-binary")
}
