package services

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

//go:embed sample-config.yaml
var sampleConfig string

// ConfigService loads, validates and formats configuration files
type ConfigService struct {
	fetcher ports.RepoFetcher
	loader  ports.ConfigLoader
}

// NewConfigService creates a new ConfigService
func NewConfigService(loader ports.ConfigLoader, fetcher ports.RepoFetcher) *ConfigService {
	return &ConfigService{
		fetcher: fetcher,
		loader:  loader,
	}
}

// Load reads and validates the configuration at path
func (s *ConfigService) Load(path string) (*domain.Config, error) {
	return s.loader.Load(path)
}

// Validate loads path and, with checkRemote, also rejects revs that name a
// branch on the remote
func (s *ConfigService) Validate(ctx context.Context, path string, checkRemote bool) (*domain.Config, error) {
	logging.Logger.Info("Validating configuration", "path", path, "check_remote", checkRemote)

	cfg, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	if !checkRemote {
		return cfg, nil
	}

	issues := domain.NewIssues()
	for i, src := range cfg.Repos {
		if !src.IsRemote() {
			continue
		}
		branches, err := s.fetcher.RemoteBranches(ctx, src.Repo)
		if err != nil {
			issues = multierror.Append(issues, &domain.ValidationIssue{
				Err:     domain.ErrRepoFetch,
				Line:    src.Line,
				Message: fmt.Sprintf("cannot reach %s: %v", src.Repo, err),
				Path:    fmt.Sprintf("repos[%d].repo", i),
			})
			continue
		}
		for _, b := range branches {
			if b == src.Rev {
				issues = multierror.Append(issues, &domain.ValidationIssue{
					Err:     domain.ErrFloatingRev,
					Line:    src.Line,
					Message: fmt.Sprintf("rev '%s' is a branch of %s, pin a tag or commit instead", src.Rev, src.Repo),
					Path:    fmt.Sprintf("repos[%d].rev", i),
				})
				break
			}
		}
	}

	if err := issues.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, domain.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Format rewrites path in canonical form. With check the file is left
// untouched and only the diff is reported.
func (s *ConfigService) Format(path string, check bool) (*FormatResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoConfig, path)
		}
		return nil, err
	}

	cfg, err := s.loader.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	formatted, err := s.loader.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	result := &FormatResult{Changed: string(formatted) != string(data)}
	if !result.Changed {
		return result, nil
	}

	result.Diff, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(data)),
		B:        difflib.SplitLines(string(formatted)),
		FromFile: path,
		ToFile:   path + " (formatted)",
		Context:  3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s: %w", path, err)
	}

	if !check {
		logging.Logger.Info("Formatting configuration", "path", path)
		if err := os.WriteFile(path, formatted, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return result, nil
}

// ListHooks lists configured hooks as written, without fetching anything
func (s *ConfigService) ListHooks(cfg *domain.Config) []HookListing {
	listing := make([]HookListing, 0, cfg.HookCount())
	for _, src := range cfg.Repos {
		for _, h := range src.Hooks {
			name := h.Name
			if name == "" {
				if def, ok := domain.BuiltinHooks[h.ID]; ok && !src.IsLocal() {
					name = def.Name
				}
			}
			stages := h.Stages
			if len(stages) == 0 {
				stages = cfg.DefaultStages
			}
			listing = append(listing, HookListing{
				Alias:  h.Alias,
				ID:     h.ID,
				Name:   name,
				Repo:   src.Repo,
				Rev:    src.Rev,
				Stages: stages,
			})
		}
	}
	return listing
}

// SampleConfig returns a starter configuration
func (s *ConfigService) SampleConfig() string {
	return sampleConfig
}
