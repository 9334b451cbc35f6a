package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
)

// zeroSHA is what git sends for refs that do not exist
const zeroSHA = "0000000000000000000000000000000000000000"

// HookImplOptions describes a git hook invocation of an installed script
type HookImplOptions struct {
	Args       []string // Arguments git passed to the hook
	ConfigPath string
	HookDir    string
	HookType   string
	Stdin      []byte
	WorkDir    string
}

// HookRunOptions translates a git hook invocation into run options.
// It returns false when git gave the hook nothing to do.
func HookRunOptions(opts HookImplOptions) (RunOptions, bool, error) {
	stage, ok := domain.HookTypeStages()[opts.HookType]
	if !ok {
		return RunOptions{}, false, fmt.Errorf("unknown hook type '%s'", opts.HookType)
	}

	run := RunOptions{
		ConfigPath: opts.ConfigPath,
		Skip:       SkipFromEnv(),
		Stage:      stage,
		WorkDir:    opts.WorkDir,
	}

	switch stage {
	case domain.StageCommitMsg, domain.StagePrepareCommitMsg:
		if len(opts.Args) == 0 {
			return run, false, fmt.Errorf("%s expects the commit message file", opts.HookType)
		}
		run.Files = []string{opts.Args[0]}
	case domain.StagePostCheckout:
		if len(opts.Args) >= 2 && opts.Args[0] != zeroSHA {
			run.FromRef, run.ToRef = opts.Args[0], opts.Args[1]
		}
	case domain.StagePrePush:
		for _, line := range strings.Split(string(opts.Stdin), "\n") {
			fields := strings.Fields(line)
			// <local ref> <local sha> <remote ref> <remote sha>
			if len(fields) != 4 || fields[1] == zeroSHA {
				continue
			}
			if fields[3] == zeroSHA {
				run.AllFiles = true
			} else {
				run.FromRef, run.ToRef = fields[3], fields[1]
			}
			return run, true, nil
		}
		return run, false, nil
	}
	return run, true, nil
}

// RunLegacyHook runs <type>.legacy from the hooks directory when present
// and returns its exit code
func RunLegacyHook(ctx context.Context, opts HookImplOptions) (int, error) {
	path := filepath.Join(opts.HookDir, opts.HookType+legacySuffix)
	info, err := os.Stat(path)
	if err != nil || info.Mode()&0111 == 0 {
		return 0, nil
	}

	logging.Logger.Info("Running legacy hook", "path", path)
	cmd := exec.CommandContext(ctx, path, opts.Args...)
	cmd.Stdin = bytes.NewReader(opts.Stdin)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("failed to run %s: %w", path, err)
	}
	return 0, nil
}

// SkipFromEnv returns the hook ids listed in $SKIP
func SkipFromEnv() []string {
	var ids []string
	for _, id := range strings.Split(os.Getenv("SKIP"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
