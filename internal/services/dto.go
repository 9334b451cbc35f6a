package services

import (
	"context"

	"github.com/renato0307/hookpin/internal/domain"
)

// RunOptions selects the files and hooks of a run
type RunOptions struct {
	AllFiles          bool
	Color             bool
	ConfigPath        string
	Files             []string
	FromRef           string
	HookID            string // Hook id or alias, empty runs every hook
	Jobs              int
	Skip              []string // Hook ids or aliases to skip, from $SKIP
	ShowDiffOnFailure bool
	Stage             domain.Stage
	ToRef             string
	WorkDir           string // Any path inside the repository
}

// HookListing describes one configured hook without resolving it
type HookListing struct {
	Alias  string
	ID     string
	Name   string
	Repo   string
	Rev    string
	Stages []domain.Stage
}

// InstallOptions controls git hook script installation
type InstallOptions struct {
	ConfigPath string
	HookTypes  []string
	Overwrite  bool
	WorkDir    string
}

// AutoupdateOptions controls autoupdate
type AutoupdateOptions struct {
	BleedingEdge bool
	ConfigPath   string
	Freeze       bool
	Repos        []string // Only update these repos when set
}

// AutoupdateResult is the outcome for one repository
type AutoupdateResult struct {
	Err       error
	FrozenTag string
	NewRev    string
	OldRev    string
	Repo      string
}

// Updated reports whether the repository moved to a new revision
func (r AutoupdateResult) Updated() bool {
	return r.Err == nil && r.NewRev != "" && r.NewRev != r.OldRev
}

// FormatResult is the outcome of formatting a configuration file
type FormatResult struct {
	Changed bool
	Diff    string
}

// GCResult summarizes a garbage collection pass
type GCResult struct {
	Kept    int
	Removed int
}

// HookResolver turns a configuration into runnable hooks
type HookResolver interface {
	InstallEnvironments(ctx context.Context, hooks []domain.ResolvedHook) error
	Resolve(ctx context.Context, cfg *domain.Config, configPath string) ([]domain.ResolvedHook, error)
}
