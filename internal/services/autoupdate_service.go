package services

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

// autoupdateJobs bounds concurrent fetches
const autoupdateJobs = 4

// AutoupdateService moves pinned revisions to the newest release
type AutoupdateService struct {
	git    ports.RepoFetcher
	loader ports.ConfigLoader
	tmpDir string
}

// NewAutoupdateService creates a new AutoupdateService.
// Repositories are fetched into temporary directories under tmpDir.
func NewAutoupdateService(git ports.RepoFetcher, loader ports.ConfigLoader, tmpDir string) *AutoupdateService {
	return &AutoupdateService{
		git:    git,
		loader: loader,
		tmpDir: tmpDir,
	}
}

// Autoupdate resolves the latest revision of every remote repository and
// rewrites the configuration in place, keeping its comments and layout.
// Repositories whose new revision drops a configured hook are not updated.
func (s *AutoupdateService) Autoupdate(ctx context.Context, opts AutoupdateOptions) ([]AutoupdateResult, error) {
	data, err := os.ReadFile(opts.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoConfig, opts.ConfigPath)
		}
		return nil, err
	}
	cfg, err := s.loader.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.ConfigPath, err)
	}

	var sources []domain.HookSource
	for _, src := range cfg.Repos {
		if !src.IsRemote() {
			continue
		}
		if len(opts.Repos) > 0 && !slices.Contains(opts.Repos, src.Repo) {
			continue
		}
		sources = append(sources, src)
	}

	results := make([]AutoupdateResult, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(autoupdateJobs)
	for i, src := range sources {
		g.Go(func() error {
			results[i] = s.updateSource(gctx, src, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var updates []domain.RevUpdate
	for _, r := range results {
		if r.Updated() {
			updates = append(updates, domain.RevUpdate{FrozenTag: r.FrozenTag, Repo: r.Repo, Rev: r.NewRev})
		}
	}
	if len(updates) == 0 {
		return results, nil
	}

	out, err := s.loader.UpdateRevs(data, updates)
	if err != nil {
		return results, err
	}
	if err := os.WriteFile(opts.ConfigPath, out, 0644); err != nil {
		return results, fmt.Errorf("failed to write %s: %w", opts.ConfigPath, err)
	}
	logging.Logger.Info("Updated configuration", "path", opts.ConfigPath, "repos", len(updates))
	return results, nil
}

func (s *AutoupdateService) updateSource(ctx context.Context, src domain.HookSource, opts AutoupdateOptions) AutoupdateResult {
	result := AutoupdateResult{OldRev: src.Rev, Repo: src.Repo}

	dir, err := os.MkdirTemp(s.tmpDir, "autoupdate-")
	if err != nil {
		result.Err = err
		return result
	}
	defer os.RemoveAll(dir)

	latest, err := s.git.FetchLatest(ctx, src.Repo, dir, opts.BleedingEdge)
	if err != nil {
		result.Err = err
		return result
	}

	result.NewRev = latest.Rev
	if opts.Freeze && latest.Rev != latest.SHA {
		result.NewRev = latest.SHA
		result.FrozenTag = latest.Rev
	}
	if result.NewRev == src.Rev {
		return result
	}

	defs, err := s.loader.LoadManifest(dir)
	if err != nil {
		result.Err = err
		return result
	}
	available := make(map[string]bool, len(defs))
	for _, d := range defs {
		available[d.ID] = true
	}
	var missing []string
	for _, id := range src.HookIDs() {
		if !available[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		result.Err = fmt.Errorf("%w: cannot update to %s, missing hooks: %s",
			domain.ErrHookNotFound, result.NewRev, strings.Join(missing, ", "))
	}
	return result
}
