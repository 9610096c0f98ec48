package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/checkpoint"
	"github.com/rodrigo1392/misc-tools/pkg/runner"
	"github.com/rodrigo1392/misc-tools/pkg/strutil"
)

// ErrSolverFailed is returned when the solver process exits non-zero.
var ErrSolverFailed = errors.New("solver run failed")

// JobsCommand holds the flags and dependencies of the solver job
// subcommands.
type JobsCommand struct {
	app      *App
	commands runner.CommandRunner

	solver          string
	optionsFile     string
	resume          bool
	checkpointDir   string
	clearCheckpoint bool
}

// NewJobsCommand groups the solver execution and log audit
// subcommands.
func NewJobsCommand(app *App) *cobra.Command {
	return newJobsCommandWithDeps(app, runner.ExecRunner{})
}

func newJobsCommandWithDeps(app *App, commands runner.CommandRunner) *cobra.Command {
	jc := &JobsCommand{app: app, commands: commands}

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Run solver jobs and audit their logs",
	}

	cmd.AddCommand(jc.newRunCommand(), jc.newCheckCommand())

	return cmd
}

func (jc *JobsCommand) newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <job.json>",
		Short: "Run one solver job",
		Long: `Run one solver job from a job definition file. The job's options are
written next to its scripts before launch so the solver-side script can
pick them up.`,
		Args: cobra.ExactArgs(1),
		RunE: jc.runJob,
	}

	cmd.Flags().StringVarP(&jc.solver, "solver", "s", "", "Solver binary (default from config)")
	cmd.Flags().StringVar(&jc.optionsFile, "options-file", "", "Job options path (default: solver_options.json in the scripts dir)")
	cmd.Flags().BoolVar(&jc.resume, "resume", false, "Skip the job if a checkpoint marks its model completed")
	cmd.Flags().StringVar(&jc.checkpointDir, "checkpoint-dir", "", "Checkpoint directory (default: ~/.misctools/checkpoints)")
	cmd.Flags().BoolVar(&jc.clearCheckpoint, "clear-checkpoint", false, "Clear the campaign checkpoint before running")

	return cmd
}

func (jc *JobsCommand) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <dir>",
		Short: "Audit the solver logs of a campaign folder",
		Long: `Audit the .log files of a campaign folder: model numbers must form an
unbroken run and every log must end COMPLETED.`,
		Args: cobra.ExactArgs(1),
		RunE: jc.checkJobs,
	}
}

func (jc *JobsCommand) runJob(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	job, err := runner.LoadJob(args[0])
	if err != nil {
		return err
	}

	jobRunner := jc.newRunner()

	// The effective scripts dir also keys the campaign checkpoint, so
	// it must match what the runner will use.
	dir := job.ScriptsDir
	if dir == "" {
		dir = "."
	}

	manager, state, checkpointErr := jc.openCheckpoint(dir, jobRunner.Solver)
	if checkpointErr != nil {
		return checkpointErr
	}

	modelNo, modelErr := strutil.LastInt(job.Script)
	hasModel := modelErr == nil

	if manager != nil && hasModel && state.IsCompleted(modelNo) {
		fmt.Fprintf(cmd.OutOrStdout(), "Model %d already completed, skipping\n", modelNo)

		return nil
	}

	var result runner.Result

	err = jc.app.timeOp(ctx, "jobs.run", func() error {
		var runErr error

		result, runErr = jobRunner.Run(ctx, job)
		if runErr != nil {
			return runErr
		}

		if result.ExitCode != 0 {
			return fmt.Errorf("%w: exit code %d", ErrSolverFailed, result.ExitCode)
		}

		return nil
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Process well runned")
	fmt.Fprintf(out, "%s time elapsed: %.1f s\n", jobRunner.Solver, result.Elapsed.Seconds())

	if manager != nil && hasModel {
		state.MarkCompleted(modelNo)

		if state.TotalModels < modelNo {
			state.TotalModels = modelNo
		}

		if saveErr := manager.Save(*state, dir, jobRunner.Solver); saveErr != nil {
			return saveErr
		}
	}

	return nil
}

// newRunner builds the solver runner from flags and configuration.
func (jc *JobsCommand) newRunner() *runner.Runner {
	solver := jc.solver
	if solver == "" && jc.app.Config != nil {
		solver = jc.app.Config.Runner.Solver
	}

	jobRunner := runner.New(solver)
	jobRunner.Commands = jc.commands

	switch {
	case jc.optionsFile != "":
		jobRunner.OptionsPath = jc.optionsFile
	case jc.app.Config != nil && jc.app.Config.Runner.OptionsFile != "":
		jobRunner.OptionsPath = jc.app.Config.Runner.OptionsFile
	}

	return jobRunner
}

// openCheckpoint loads the campaign checkpoint when resuming is on.
// The manager is nil when checkpointing is disabled.
func (jc *JobsCommand) openCheckpoint(scriptsDir, solver string) (*checkpoint.Manager, *checkpoint.CampaignState, error) {
	if !jc.resume {
		return nil, nil, nil
	}

	baseDir := jc.checkpointDir
	if baseDir == "" {
		baseDir = checkpoint.DefaultDir()
	}

	manager := checkpoint.NewManager(baseDir, checkpoint.DirHash(scriptsDir))

	if jc.clearCheckpoint {
		if clearErr := manager.Clear(); clearErr != nil {
			return nil, nil, clearErr
		}
	}

	state := &checkpoint.CampaignState{}

	if !manager.Exists() {
		return manager, state, nil
	}

	if validateErr := manager.Validate(scriptsDir, solver); validateErr != nil {
		return nil, nil, validateErr
	}

	loaded, loadErr := manager.Load()
	if loadErr != nil {
		return nil, nil, loadErr
	}

	return manager, loaded, nil
}

func (jc *JobsCommand) checkJobs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var report runner.Report

	err := jc.app.timeOp(ctx, "jobs.check", func() error {
		var checkErr error
		report, checkErr = runner.CheckLogs(args[0])

		return checkErr
	})
	if err != nil {
		return err
	}

	jc.app.Metrics.AddItems(ctx, "jobs.check", "model", int64(len(report.Numbers)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "CURRENT NUMBERS: %s\n", joinInts(report.Numbers))

	if !report.Consecutive {
		warnColor.Fprintf(out, "WARNING: MODELS %v MISSING\n", report.Missing)
	}

	for _, logPath := range report.Incomplete {
		warnColor.Fprintf(out, "WARNING: JOB %s NOT COMPLETED\n", logPath)
	}

	if report.OK() {
		okColor.Fprintln(out, "All jobs completed")
	}

	return nil
}
