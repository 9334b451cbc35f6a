package ports

import (
	"context"

	"github.com/renato0307/hookpin/internal/domain"
)

// ExecOptions controls how a hook command is executed
type ExecOptions struct {
	Color    bool
	Jobs     int
	RepoRoot string
}

// ExecResult is the combined outcome of every batch of a hook
type ExecResult struct {
	ExitCode int
	Output   []byte
}

// HookExecutor runs a resolved hook against files
type HookExecutor interface {
	Execute(ctx context.Context, hook domain.ResolvedHook, files []string, opts ExecOptions) (ExecResult, error)
}

// EnvironmentInstaller prepares language environments for hooks
type EnvironmentInstaller interface {
	EnvironmentDir(hook domain.ResolvedHook) string
	InstallEnvironment(ctx context.Context, hook domain.ResolvedHook) error
}

// FileClassifier selects the files a hook applies to
type FileClassifier interface {
	FilterByPattern(files []string, include, exclude string) ([]string, error)
	FilterByTypes(root string, files []string, types, typesOr, excludeTypes []string) []string
	FilterIgnored(files []string) []string
}

// RunReporter receives progress while hooks run
type RunReporter interface {
	HookFinished(result domain.HookResult)
	ShowDiff(diff []byte)
}
