// Package runner launches parametric solver jobs: it hands the job
// options to the solver script through a JSON file, builds the CAE
// command line and reports exit code and elapsed time. Log checking
// for finished campaigns lives here too.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/rodrigo1392/misc-tools/pkg/persist"
)

const (
	// DefaultSolver is the binary launched when none is configured.
	DefaultSolver = "abaqus"

	defaultOptionsFile = "solver_options.json"
)

// ErrJobInvalid is returned when a job definition fails validation.
var ErrJobInvalid = errors.New("runner: invalid job")

// Job describes one solver run.
type Job struct {
	Name       string         `json:"name,omitempty"`
	ScriptsDir string         `json:"scripts_dir,omitempty"`
	Script     string         `json:"script"`
	ShowGUI    bool           `json:"gui,omitempty"`
	Args       []string       `json:"args,omitempty"`
	Options    map[string]any `json:"options,omitempty"`
}

// Validate checks that the job names a script to run.
func (j Job) Validate() error {
	if j.Script == "" {
		return fmt.Errorf("%w: script is required", ErrJobInvalid)
	}

	return nil
}

// CommandArgs returns the solver arguments for the job: the CAE
// launcher with the script attached, windowed or headless, and any
// extra arguments after the "--" separator.
func (j Job) CommandArgs() []string {
	args := []string{"cae"}

	if j.ShowGUI {
		args = append(args, "-script", j.Script)
	} else {
		args = append(args, "noGUI="+j.Script)
	}

	if len(j.Args) > 0 {
		args = append(args, "--")
		args = append(args, j.Args...)
	}

	return args
}

// Result reports a finished solver run.
type Result struct {
	ExitCode    int
	Elapsed     time.Duration
	OptionsPath string
}

// CommandRunner abstracts solver process execution. Run reports the
// process exit code; the error is reserved for failures to launch.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (int, error)
}

// ExecRunner executes commands on the local host, wired to the
// caller's stdout and stderr.
type ExecRunner struct{}

// Run implements CommandRunner backed by os/exec.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 0, fmt.Errorf("start %s: %w", name, err)
}

// Runner executes jobs against a configured solver binary.
type Runner struct {
	// Solver is the binary to launch.
	Solver string

	// OptionsPath overrides where job options are written. Empty
	// selects solver_options.json inside the job's scripts dir.
	OptionsPath string

	// Commands runs the solver process.
	Commands CommandRunner
}

// New returns a Runner for the given solver binary using the local
// host executor.
func New(solver string) *Runner {
	if solver == "" {
		solver = DefaultSolver
	}

	return &Runner{Solver: solver, Commands: ExecRunner{}}
}

// Run writes the job options file, launches the solver in the job's
// scripts dir and reports the exit code and elapsed time.
func (r *Runner) Run(ctx context.Context, job Job) (Result, error) {
	validateErr := job.Validate()
	if validateErr != nil {
		return Result{}, validateErr
	}

	dir := job.ScriptsDir
	if dir == "" {
		dir = "."
	}

	optionsPath := r.OptionsPath
	if optionsPath == "" {
		optionsPath = filepath.Join(dir, defaultOptionsFile)
	}

	options := job.Options
	if options == nil {
		options = map[string]any{}
	}

	saveErr := persist.SaveFile(optionsPath, persist.NewJSONCodec(), options)
	if saveErr != nil {
		return Result{}, fmt.Errorf("write job options: %w", saveErr)
	}

	start := time.Now()

	code, runErr := r.Commands.Run(ctx, dir, r.Solver, job.CommandArgs()...)
	if runErr != nil {
		return Result{}, fmt.Errorf("run solver: %w", runErr)
	}

	return Result{
		ExitCode:    code,
		Elapsed:     time.Since(start),
		OptionsPath: optionsPath,
	}, nil
}
