package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/services"
)

// HookImplCmd is what installed hook scripts execute
type HookImplCmd struct {
	Args     []string `arg:"" optional:"" help:"Arguments git passed to the hook" passthrough:""`
	HookDir  string   `help:"Directory of the hook script" required:""`
	HookType string   `help:"Git hook type" required:""`
}

// Run executes the hook-impl command
func (h *HookImplCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing hook-impl command", "hook_type", h.HookType, "args", h.Args)

	wd, err := workDir()
	if err != nil {
		return err
	}

	opts := services.HookImplOptions{
		Args:       h.Args,
		ConfigPath: cli.Config,
		HookDir:    h.HookDir,
		HookType:   h.HookType,
		WorkDir:    wd,
	}
	if h.HookType == string(domain.StagePrePush) && !isatty.IsTerminal(os.Stdin.Fd()) {
		if opts.Stdin, err = io.ReadAll(os.Stdin); err != nil {
			return fmt.Errorf("failed to read hook input: %w", err)
		}
	}

	legacyCode, err := services.RunLegacyHook(context.Background(), opts)
	if err != nil {
		return err
	}

	runOpts, ok, err := services.HookRunOptions(opts)
	if err != nil {
		return err
	}
	if ok {
		if _, statErr := os.Stat(configPathIn(wd, cli.Config)); os.IsNotExist(statErr) {
			fmt.Fprintf(os.Stderr, "No %s file was found\n", cli.Config)
			return &ExitError{Code: 1}
		}
		runOpts.Color = cli.UseColor()
		if err := runHooks(cli, runOpts, false); err != nil {
			return err
		}
	}

	if legacyCode != 0 {
		return &ExitError{Code: legacyCode}
	}
	return nil
}
