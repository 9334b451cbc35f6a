package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

// RunService runs the configured hooks against a selection of files
type RunService struct {
	classifier ports.FileClassifier
	executor   ports.HookExecutor
	git        ports.WorkTreeInspector
	loader     ports.ConfigReader
	recorder   ports.RunRecorder
	reporter   ports.RunReporter
	resolver   HookResolver
	now        func() time.Time
}

// NewRunService creates a new RunService
func NewRunService(
	git ports.WorkTreeInspector,
	loader ports.ConfigReader,
	resolver HookResolver,
	classifier ports.FileClassifier,
	executor ports.HookExecutor,
	recorder ports.RunRecorder,
	reporter ports.RunReporter,
) *RunService {
	return &RunService{
		classifier: classifier,
		executor:   executor,
		git:        git,
		loader:     loader,
		recorder:   recorder,
		reporter:   reporter,
		resolver:   resolver,
		now:        time.Now,
	}
}

// Run executes the hooks selected by opts and reports each result as it
// finishes. A failing hook is not an error: check RunSummary.Failed.
func (s *RunService) Run(ctx context.Context, opts RunOptions) (*domain.RunSummary, error) {
	root, err := s.git.RepoRoot(opts.WorkDir)
	if err != nil {
		return nil, err
	}

	configPath := opts.ConfigPath
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}
	cfg, err := s.loader.Load(configPath)
	if err != nil {
		return nil, err
	}

	stage := opts.Stage
	if stage == "" {
		stage = domain.StagePreCommit
	}

	hooks, err := s.resolver.Resolve(ctx, cfg, configPath)
	if err != nil {
		return nil, err
	}
	hooks = selectHooks(hooks, stage, opts.HookID)
	if opts.HookID != "" && len(hooks) == 0 {
		return nil, fmt.Errorf("%w: no hook with id '%s' in stage '%s'", domain.ErrHookNotFound, opts.HookID, stage)
	}
	if err := s.resolver.InstallEnvironments(ctx, hooks); err != nil {
		return nil, err
	}

	files, err := s.selectFiles(root, opts)
	if err != nil {
		return nil, err
	}
	files, err = s.classifier.FilterByPattern(files, cfg.Files, cfg.Exclude)
	if err != nil {
		return nil, err
	}
	files = s.classifier.FilterIgnored(files)

	logging.Logger.Info("Running hooks",
		"stage", stage,
		"hooks", len(hooks),
		"files", len(files),
	)

	summary := &domain.RunSummary{RunID: uuid.NewString()}
	skip := make(map[string]bool, len(opts.Skip))
	for _, id := range opts.Skip {
		skip[id] = true
	}
	execOpts := ports.ExecOptions{Color: opts.Color, Jobs: opts.Jobs, RepoRoot: root}

	var runs []domain.HookRun
	for _, hook := range hooks {
		started := s.now()
		result, err := s.runHook(ctx, hook, files, root, skip, execOpts)
		if err != nil {
			return nil, err
		}
		summary.Results = append(summary.Results, result)
		s.reporter.HookFinished(result)

		runs = append(runs, domain.HookRun{
			Duration:  result.Duration,
			ExitCode:  result.ExitCode,
			Files:     result.Files,
			HookID:    hook.ID,
			Repo:      hook.Repo,
			Rev:       hook.Rev,
			RunID:     summary.RunID,
			StartedAt: started,
			Status:    result.Status,
		})

		if result.Status == domain.StatusFailed && cfg.FailFast {
			logging.Logger.Info("Stopping after first failure", "hook", hook.ID)
			break
		}
	}

	if err := s.recorder.RecordRuns(ctx, runs); err != nil {
		logging.Logger.Warn("Failed to record run history", "error", err)
	}

	if summary.Failed() && opts.ShowDiffOnFailure {
		diff, err := s.git.Diff(root)
		if err != nil {
			return nil, err
		}
		if len(diff) > 0 {
			s.reporter.ShowDiff(diff)
		}
	}

	return summary, nil
}

func (s *RunService) runHook(
	ctx context.Context,
	hook domain.ResolvedHook,
	files []string,
	root string,
	skip map[string]bool,
	opts ports.ExecOptions,
) (domain.HookResult, error) {
	result := domain.HookResult{Hook: hook}

	if skip[hook.ID] || (hook.Alias != "" && skip[hook.Alias]) {
		result.Status = domain.StatusSkipped
		result.SkipReason = domain.SkipEnv
		return result, nil
	}

	hookFiles, err := s.classifier.FilterByPattern(files, hook.Files, hook.Exclude)
	if err != nil {
		return result, fmt.Errorf("hook %s: %w", hook.ID, err)
	}
	hookFiles = s.classifier.FilterByTypes(root, hookFiles, hook.Types, hook.TypesOr, hook.ExcludeTypes)
	result.Files = len(hookFiles)

	if len(hookFiles) == 0 && !hook.AlwaysRun {
		result.Status = domain.StatusSkipped
		result.SkipReason = domain.SkipNoFiles
		return result, nil
	}

	before, err := s.git.Diff(root)
	if err != nil {
		return result, err
	}

	start := s.now()
	out, err := s.executor.Execute(ctx, hook, hookFiles, opts)
	if err != nil {
		return result, fmt.Errorf("hook %s: %w", hook.ID, err)
	}
	result.Duration = s.now().Sub(start)

	after, err := s.git.Diff(root)
	if err != nil {
		return result, err
	}

	result.ExitCode = out.ExitCode
	result.Output = out.Output
	result.FilesModified = !bytes.Equal(before, after)
	result.Status = domain.StatusPassed
	if out.ExitCode != 0 || result.FilesModified {
		result.Status = domain.StatusFailed
	}

	logging.Logger.Debug("Hook finished",
		"id", hook.ID,
		"status", result.Status,
		"exit_code", result.ExitCode,
		"modified", result.FilesModified,
		"duration", result.Duration,
	)
	return result, nil
}

// selectFiles returns the candidate files before any filtering
func (s *RunService) selectFiles(root string, opts RunOptions) ([]string, error) {
	switch {
	case len(opts.Files) > 0:
		return normalizePaths(root, opts.WorkDir, opts.Files), nil
	case opts.AllFiles:
		return s.git.AllFiles(root)
	case opts.FromRef != "" && opts.ToRef != "":
		return s.git.ChangedFiles(root, opts.FromRef, opts.ToRef)
	case opts.FromRef != "" || opts.ToRef != "":
		return nil, fmt.Errorf("--from-ref and --to-ref must be used together")
	default:
		return s.git.StagedFiles(root)
	}
}

// normalizePaths makes explicit files relative to the repository root
func normalizePaths(root, workDir string, files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		path := f
		if !filepath.IsAbs(path) && workDir != "" {
			if abs, err := filepath.Abs(filepath.Join(workDir, f)); err == nil {
				path = abs
			}
		}
		if filepath.IsAbs(path) {
			if rel, err := filepath.Rel(root, path); err == nil {
				path = rel
			}
		}
		out = append(out, filepath.ToSlash(path))
	}
	return out
}

// selectHooks keeps hooks running in stage, optionally matching one id or alias
func selectHooks(hooks []domain.ResolvedHook, stage domain.Stage, idOrAlias string) []domain.ResolvedHook {
	out := make([]domain.ResolvedHook, 0, len(hooks))
	for _, h := range hooks {
		if !h.RunsInStage(stage) {
			continue
		}
		if idOrAlias != "" && !h.Matches(idOrAlias) {
			continue
		}
		out = append(out, h)
	}
	return out
}
