package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

// RepositoryService resolves hooks from their repositories and manages
// the cache of checked out repositories and environments
type RepositoryService struct {
	envsDir     string
	git         ports.RepoFetcher
	installer   ports.EnvironmentInstaller
	loader      ports.ConfigLoader
	locker      ports.StoreLocker
	nativeHooks bool
	reposDir    string
	store       ports.Store
}

// Verify interface compliance at compile time
var _ HookResolver = (*RepositoryService)(nil)

// RepositoryServiceParams groups the dependencies of RepositoryService
type RepositoryServiceParams struct {
	EnvsDir     string
	Git         ports.RepoFetcher
	Installer   ports.EnvironmentInstaller
	Loader      ports.ConfigLoader
	Locker      ports.StoreLocker
	NativeHooks bool // Run pre-commit-hooks ids with the builtin implementations
	ReposDir    string
	Store       ports.Store
}

// NewRepositoryService creates a new RepositoryService
func NewRepositoryService(p RepositoryServiceParams) *RepositoryService {
	return &RepositoryService{
		envsDir:     p.EnvsDir,
		git:         p.Git,
		installer:   p.Installer,
		loader:      p.Loader,
		locker:      p.Locker,
		nativeHooks: p.NativeHooks,
		reposDir:    p.ReposDir,
		store:       p.Store,
	}
}

// Resolve binds every configured hook to its definition, fetching
// repositories that are not cached yet
func (s *RepositoryService) Resolve(ctx context.Context, cfg *domain.Config, configPath string) ([]domain.ResolvedHook, error) {
	if configPath != "" {
		if abs, err := filepath.Abs(configPath); err == nil {
			if err := s.store.MarkConfigUsed(ctx, abs); err != nil {
				logging.Logger.Warn("Failed to track configuration", "path", abs, "error", err)
			}
		}
	}

	var hooks []domain.ResolvedHook
	for _, src := range cfg.Repos {
		resolved, err := s.resolveSource(ctx, src)
		if err != nil {
			return nil, err
		}
		for _, h := range resolved {
			if len(h.Stages) == 0 && len(cfg.DefaultStages) > 0 {
				h.Stages = append([]domain.Stage(nil), cfg.DefaultStages...)
			}
			h.EnvDir = s.installer.EnvironmentDir(h)
			hooks = append(hooks, h)
		}
	}

	logging.Logger.Debug("Resolved hooks", "count", len(hooks))
	return hooks, nil
}

func (s *RepositoryService) resolveSource(ctx context.Context, src domain.HookSource) ([]domain.ResolvedHook, error) {
	hooks := make([]domain.ResolvedHook, 0, len(src.Hooks))

	switch {
	case src.IsLocal():
		for _, e := range src.Hooks {
			hooks = append(hooks, domain.ResolvedHook{HookDefinition: domain.DefinitionFromLocal(e), Repo: src.Repo})
		}
		return hooks, nil
	case src.IsBuiltin() || (s.nativeHooks && domain.IsNativeRepo(src.Repo) && allBuiltin(src)):
		for _, e := range src.Hooks {
			def, ok := domain.BuiltinHooks[e.ID]
			if !ok {
				return nil, fmt.Errorf("%w: '%s' is not a builtin hook", domain.ErrHookNotFound, e.ID)
			}
			hooks = append(hooks, domain.ResolvedHook{HookDefinition: def.Merge(e), Repo: src.Repo, Rev: src.Rev})
		}
		return hooks, nil
	}

	path, err := s.ensureRepo(ctx, src.Repo, src.Rev)
	if err != nil {
		return nil, err
	}
	defs, err := s.loader.LoadManifest(path)
	if err != nil {
		return nil, fmt.Errorf("%s@%s: %w", src.Repo, src.Rev, err)
	}
	byID := make(map[string]domain.HookDefinition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}

	for _, e := range src.Hooks {
		def, ok := byID[e.ID]
		if !ok {
			return nil, fmt.Errorf("%w: '%s' is not present in repository %s@%s", domain.ErrHookNotFound, e.ID, src.Repo, src.Rev)
		}
		hooks = append(hooks, domain.ResolvedHook{
			HookDefinition: def.Merge(e),
			Repo:           src.Repo,
			RepoPath:       path,
			Rev:            src.Rev,
		})
	}
	return hooks, nil
}

func allBuiltin(src domain.HookSource) bool {
	for _, e := range src.Hooks {
		if !domain.IsBuiltinHook(e.ID) {
			return false
		}
	}
	return true
}

// ensureRepo returns the checkout of repo at rev, cloning it on a miss
func (s *RepositoryService) ensureRepo(ctx context.Context, repo, rev string) (string, error) {
	if path, ok, err := s.cachedRepo(ctx, repo, rev); err != nil || ok {
		return path, err
	}

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := unlock(); err != nil {
			logging.Logger.Warn("Failed to release store lock", "error", err)
		}
	}()

	// Another process may have cloned it while we waited
	if path, ok, err := s.cachedRepo(ctx, repo, rev); err != nil || ok {
		return path, err
	}

	dest := filepath.Join(s.reposDir, "repo-"+uuid.NewString())
	logging.Logger.Info("Initializing hook repository", "repo", repo, "rev", rev, "path", dest)
	if err := s.git.CloneAtRev(ctx, repo, rev, dest); err != nil {
		_ = os.RemoveAll(dest)
		return "", err
	}

	if err := s.store.AddRepo(ctx, domain.RepoCacheEntry{Path: dest, Repo: repo, Rev: rev}); err != nil {
		return "", fmt.Errorf("failed to record %s@%s: %w", repo, rev, err)
	}
	return dest, nil
}

func (s *RepositoryService) cachedRepo(ctx context.Context, repo, rev string) (string, bool, error) {
	entry, err := s.store.GetRepo(ctx, repo, rev)
	if errors.Is(err, domain.ErrRepoNotCached) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(entry.Path); err != nil {
		logging.Logger.Warn("Cached repository missing on disk", "repo", repo, "rev", rev, "path", entry.Path)
		if err := s.store.DeleteRepo(ctx, repo, rev); err != nil {
			return "", false, err
		}
		return "", false, nil
	}

	if err := s.store.TouchRepo(ctx, repo, rev); err != nil {
		logging.Logger.Warn("Failed to touch cached repository", "repo", repo, "error", err)
	}
	return entry.Path, true, nil
}

// InstallEnvironments prepares the language environment of every hook
func (s *RepositoryService) InstallEnvironments(ctx context.Context, hooks []domain.ResolvedHook) error {
	var pending []domain.ResolvedHook
	seen := make(map[string]bool)
	for _, h := range hooks {
		if h.EnvDir == "" || seen[h.EnvDir] {
			continue
		}
		seen[h.EnvDir] = true
		pending = append(pending, h)
	}
	if len(pending) == 0 {
		return nil
	}

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	for _, h := range pending {
		if err := s.installer.InstallEnvironment(ctx, h); err != nil {
			return fmt.Errorf("failed to install environment for %s: %w", h.ID, err)
		}
	}
	return nil
}

// GC removes cached repositories no tracked configuration refers to.
// Configurations that no longer exist or parse stop being tracked.
func (s *RepositoryService) GC(ctx context.Context) (*GCResult, error) {
	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = unlock() }()

	configs, err := s.store.ListConfigs(ctx)
	if err != nil {
		return nil, err
	}

	used := make(map[[2]string]bool)
	for _, path := range configs {
		cfg, err := s.loader.Load(path)
		if err != nil {
			logging.Logger.Info("Forgetting configuration", "path", path, "reason", err)
			if err := s.store.DeleteConfig(ctx, path); err != nil {
				return nil, err
			}
			continue
		}
		for _, src := range cfg.Repos {
			if src.IsRemote() {
				used[[2]string{src.Repo, src.Rev}] = true
			}
		}
	}

	repos, err := s.store.ListRepos(ctx)
	if err != nil {
		return nil, err
	}

	result := &GCResult{}
	for _, r := range repos {
		if used[[2]string{r.Repo, r.Rev}] {
			result.Kept++
			continue
		}
		logging.Logger.Info("Removing unused repository", "repo", r.Repo, "rev", r.Rev, "path", r.Path)
		if err := os.RemoveAll(r.Path); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", r.Path, err)
		}
		if err := s.store.DeleteRepo(ctx, r.Repo, r.Rev); err != nil {
			return nil, err
		}
		result.Removed++
	}
	return result, nil
}

// Clean removes every cached repository and environment
func (s *RepositoryService) Clean(ctx context.Context) error {
	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	repos, err := s.store.ListRepos(ctx)
	if err != nil {
		return err
	}
	for _, r := range repos {
		if err := s.store.DeleteRepo(ctx, r.Repo, r.Rev); err != nil {
			return err
		}
	}

	for _, dir := range []string{s.reposDir, s.envsDir} {
		if dir == "" {
			continue
		}
		logging.Logger.Info("Cleaning", "path", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
	}
	return nil
}
