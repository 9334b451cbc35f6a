package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/anmitsu/go-shlex"
	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/hookpin/internal/adapters/builtin"
	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

// Executor implements ports.HookExecutor for the runnable languages
type Executor struct {
	maxLength int
}

// Verify interface compliance at compile time
var _ ports.HookExecutor = (*Executor)(nil)

// NewExecutor creates an Executor sized for the current environment
func NewExecutor() *Executor {
	return &Executor{maxLength: platformMaxLength()}
}

// Execute runs hook against files and merges the output of every batch
func (e *Executor) Execute(ctx context.Context, hook domain.ResolvedHook, files []string, opts ports.ExecOptions) (ports.ExecResult, error) {
	logging.Logger.Debug("Executing hook",
		"id", hook.ID,
		"language", hook.Language,
		"files", len(files),
	)

	if !hook.PassFilenames {
		files = nil
	}

	switch hook.Language {
	case domain.LanguageBuiltin:
		failed, out, err := builtin.Run(ctx, hook.ID, opts.RepoRoot, hook.Args, files)
		if err != nil {
			return ports.ExecResult{}, err
		}
		return ports.ExecResult{ExitCode: exitCode(failed), Output: []byte(out)}, nil
	case domain.LanguageFail:
		return failHook(hook, files), nil
	case domain.LanguagePygrep:
		return pygrep(ctx, hook, opts.RepoRoot, files)
	case domain.LanguageSystem, domain.LanguageScript, domain.LanguagePython, "unsupported", "unsupported_script":
		cmd, err := hookCommand(hook, opts.RepoRoot)
		if err != nil {
			return ports.ExecResult{}, err
		}
		return e.runBatches(ctx, hook, cmd, files, opts)
	default:
		return ports.ExecResult{}, fmt.Errorf("%w: %s (hook %s)", domain.ErrUnsupportedLanguage, hook.Language, hook.ID)
	}
}

// hookCommand splits entry with shell rules and appends args.
// Script entries are relative to the hook repository, or to root for
// local hooks.
func hookCommand(hook domain.ResolvedHook, root string) ([]string, error) {
	cmd, err := shlex.Split(hook.Entry, true)
	if err != nil {
		return nil, fmt.Errorf("invalid entry for hook %s: %w", hook.ID, err)
	}
	if len(cmd) == 0 {
		return nil, fmt.Errorf("empty entry for hook %s", hook.ID)
	}

	switch hook.Language {
	case domain.LanguageScript, "unsupported_script":
		base := hook.RepoPath
		if base == "" {
			base = root
		}
		if base != "" && !filepath.IsAbs(cmd[0]) {
			cmd[0] = filepath.Join(base, cmd[0])
		}
	case domain.LanguagePython:
		if hook.EnvDir != "" {
			candidate := filepath.Join(hook.EnvDir, "bin", cmd[0])
			if _, err := os.Stat(candidate); err == nil {
				cmd[0] = candidate
			}
		}
	}

	return append(cmd, hook.Args...), nil
}

func (e *Executor) runBatches(ctx context.Context, hook domain.ResolvedHook, cmd, files []string, opts ports.ExecOptions) (ports.ExecResult, error) {
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}
	if hook.RequireSerial {
		jobs = 1
	}

	batches, err := partition(cmd, files, jobs, e.maxLength)
	if err != nil {
		return ports.ExecResult{}, err
	}

	env := hookEnv(hook)
	outputs := make([][]byte, len(batches))
	codes := make([]int, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, argv := range batches {
		g.Go(func() error {
			code, out, err := runCommand(gctx, argv, opts.RepoRoot, env, opts.Color)
			if err != nil {
				return err
			}
			codes[i] = code
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ports.ExecResult{}, err
	}

	result := ports.ExecResult{Output: bytes.Join(outputs, nil)}
	for _, c := range codes {
		result.ExitCode = max(result.ExitCode, c)
	}
	return result, nil
}

// hookEnv is the environment hook processes see
func hookEnv(hook domain.ResolvedHook) []string {
	env := append(os.Environ(), "PRE_COMMIT=1", "HOOKPIN=1")
	if hook.Language == domain.LanguagePython && hook.EnvDir != "" {
		bin := filepath.Join(hook.EnvDir, "bin")
		env = append(env,
			"VIRTUAL_ENV="+hook.EnvDir,
			"PATH="+bin+string(os.PathListSeparator)+os.Getenv("PATH"),
		)
	}
	return env
}

// runCommand runs argv and returns its exit code and combined output.
// A missing executable is reported as a failed hook, not an error.
func runCommand(ctx context.Context, argv []string, dir string, env []string, color bool) (int, []byte, error) {
	name := argv[0]
	// Relative paths are relative to the repository, not to our cwd
	if dir != "" && !filepath.IsAbs(name) && strings.ContainsRune(name, filepath.Separator) {
		name = filepath.Join(dir, name)
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return 1, []byte(fmt.Sprintf("Executable `%s` not found\n", argv[0])), nil
	}

	newCmd := func() *exec.Cmd {
		cmd := exec.CommandContext(ctx, path, argv[1:]...)
		cmd.Dir = dir
		cmd.Env = env
		return cmd
	}

	var out []byte
	if color {
		out, err = runWithPTY(newCmd)
	} else {
		out, err = newCmd().CombinedOutput()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), out, nil
		}
		if ctx.Err() != nil {
			return 0, nil, ctx.Err()
		}
		return 0, nil, fmt.Errorf("failed to run %s: %w", argv[0], err)
	}
	return 0, out, nil
}

// runWithPTY attaches the command to a pseudo terminal so tools keep colors
func runWithPTY(newCmd func() *exec.Cmd) ([]byte, error) {
	cmd := newCmd()
	ptmx, err := pty.Start(cmd)
	if err != nil {
		logging.Logger.Debug("pty unavailable, running without color", "error", err)
		return newCmd().CombinedOutput()
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	// Linux reports EIO once the child closes its side
	if _, err := io.Copy(&buf, ptmx); err != nil && !errors.Is(err, syscall.EIO) {
		_ = cmd.Wait()
		return buf.Bytes(), err
	}
	return buf.Bytes(), cmd.Wait()
}

func failHook(hook domain.ResolvedHook, files []string) ports.ExecResult {
	var b strings.Builder
	b.WriteString(hook.Entry)
	b.WriteString("\n\n")
	for _, f := range files {
		b.WriteString(f)
		b.WriteString("\n")
	}
	return ports.ExecResult{ExitCode: 1, Output: []byte(b.String())}
}

func exitCode(failed bool) int {
	if failed {
		return 1
	}
	return 0
}
