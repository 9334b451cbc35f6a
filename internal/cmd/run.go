package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/services"
)

// RunCmd runs hooks
type RunCmd struct {
	AllFiles          bool     `help:"Run on every file in the repository" short:"a"`
	Files             []string `help:"Run on these files"`
	FromRef           string   `help:"Run on files changed since this ref (with --to-ref)" name:"from-ref"`
	Hook              string   `arg:"" optional:"" help:"Only run the hook with this id or alias"`
	HookStage         string   `help:"Stage whose hooks run" default:"pre-commit"`
	Jobs              int      `help:"Parallel processes per hook (0 = number of CPUs)" short:"j" default:"0"`
	ShowDiffOnFailure bool     `help:"Print the diff when hooks fail"`
	ToRef             string   `help:"Run on files changed up to this ref (with --from-ref)" name:"to-ref"`
	Verbose           bool     `help:"Print the output of passing hooks" short:"v"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	if r.AllFiles && len(r.Files) > 0 {
		return fmt.Errorf("--all-files and --files are mutually exclusive")
	}
	stage, err := domain.NormalizeStage(r.HookStage)
	if err != nil {
		return err
	}
	if r.Jobs == 0 && cli.settings != nil && cli.settings.Jobs != nil {
		r.Jobs = *cli.settings.Jobs
	}

	wd, err := workDir()
	if err != nil {
		return err
	}

	opts := services.RunOptions{
		AllFiles:          r.AllFiles,
		Color:             cli.UseColor(),
		ConfigPath:        cli.Config,
		Files:             r.Files,
		FromRef:           r.FromRef,
		HookID:            r.Hook,
		Jobs:              r.Jobs,
		Skip:              services.SkipFromEnv(),
		ShowDiffOnFailure: r.ShowDiffOnFailure,
		Stage:             stage,
		ToRef:             r.ToRef,
		WorkDir:           wd,
	}
	return runHooks(cli, opts, r.Verbose)
}

// runHooks runs hooks and turns a failed run into exit status 1
func runHooks(cli *CLI, opts services.RunOptions, verbose bool) error {
	logging.Logger.Info("Executing run command", "stage", opts.Stage, "hook", opts.HookID, "all_files", opts.AllFiles)

	svc := cli.Container.NewRunService(NewReporter(os.Stdout, verbose))
	summary, err := svc.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	logging.Logger.Info("Run finished",
		"run_id", summary.RunID,
		"failed", summary.Count(domain.StatusFailed),
		"passed", summary.Count(domain.StatusPassed),
		"skipped", summary.Count(domain.StatusSkipped),
	)
	if summary.Failed() {
		return &ExitError{Code: 1}
	}
	return nil
}

// ExitError ends the process with Code without printing anything
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
