package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hookpin/internal/domain"
	portsmocks "github.com/renato0307/hookpin/internal/ports/mocks"
)

func remoteConfig(rev string) *domain.Config {
	return &domain.Config{
		Repos: []domain.HookSource{
			{
				Hooks: []domain.HookEntry{{ID: "black"}},
				Line:  2,
				Repo:  "https://github.com/psf/black",
				Rev:   rev,
			},
			{
				Hooks: []domain.HookEntry{{ID: "lint", Name: "lint", Entry: "make lint", Language: "system"}},
				Repo:  domain.RepoLocal,
			},
		},
	}
}

func TestConfigService_Validate(t *testing.T) {
	tests := []struct {
		name        string
		checkRemote bool
		rev         string
		branches    []string
		fetchErr    error
		wantErr     error
	}{
		{name: "no remote check", rev: "main"},
		{name: "pinned tag", checkRemote: true, rev: "24.1.1", branches: []string{"main", "stable"}},
		{name: "branch rev", checkRemote: true, rev: "stable", branches: []string{"main", "stable"}, wantErr: domain.ErrFloatingRev},
		{name: "unreachable", checkRemote: true, rev: "24.1.1", fetchErr: errors.New("boom"), wantErr: domain.ErrRepoFetch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := portsmocks.NewMockConfigLoader(t)
			git := portsmocks.NewMockGitRepository(t)
			loader.EXPECT().Load("cfg.yaml").Return(remoteConfig(tt.rev), nil)
			if tt.checkRemote {
				git.EXPECT().RemoteBranches(mock.Anything, "https://github.com/psf/black").Return(tt.branches, tt.fetchErr)
			}

			cfg, err := NewConfigService(loader, git).Validate(context.Background(), "cfg.yaml", tt.checkRemote)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrInvalidConfig)
				assert.Contains(t, err.Error(), "repos[0]")
				return
			}
			require.NoError(t, err)
			assert.Len(t, cfg.Repos, 2)
		})
	}
}

func TestConfigService_Validate_LoadError(t *testing.T) {
	loader := portsmocks.NewMockConfigLoader(t)
	loader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrNoConfig)

	_, err := NewConfigService(loader, portsmocks.NewMockGitRepository(t)).Validate(context.Background(), "missing.yaml", true)

	assert.ErrorIs(t, err, domain.ErrNoConfig)
}

func TestConfigService_Format(t *testing.T) {
	original := "repos:\n- repo: local\n  hooks:\n  - {id: lint, name: lint, entry: make lint, language: system}\n"
	formatted := "repos:\n  - repo: local\n    hooks:\n      - id: lint\n        name: lint\n        entry: make lint\n        language: system\n"

	tests := []struct {
		name      string
		content   string
		check     bool
		changed   bool
		wantAfter string
	}{
		{name: "rewrites file", content: original, changed: true, wantAfter: formatted},
		{name: "check leaves file", content: original, check: true, changed: true, wantAfter: original},
		{name: "already formatted", content: formatted, wantAfter: formatted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), domain.ConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg := remoteConfig("v1")
			loader := portsmocks.NewMockConfigLoader(t)
			loader.EXPECT().Parse([]byte(tt.content)).Return(cfg, nil)
			loader.EXPECT().Marshal(cfg).Return([]byte(formatted), nil)

			result, err := NewConfigService(loader, nil).Format(path, tt.check)

			require.NoError(t, err)
			assert.Equal(t, tt.changed, result.Changed)
			if tt.changed {
				assert.Contains(t, result.Diff, "+        entry: make lint")
			} else {
				assert.Empty(t, result.Diff)
			}
			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAfter, string(after))
		})
	}
}

func TestConfigService_Format_MissingFile(t *testing.T) {
	_, err := NewConfigService(portsmocks.NewMockConfigLoader(t), nil).Format(filepath.Join(t.TempDir(), "nope.yaml"), false)

	assert.ErrorIs(t, err, domain.ErrNoConfig)
}

func TestConfigService_ListHooks(t *testing.T) {
	cfg := &domain.Config{
		DefaultStages: []domain.Stage{domain.StagePreCommit},
		Repos: []domain.HookSource{
			{
				Hooks: []domain.HookEntry{
					{ID: "check-yaml"},
					{ID: "trailing-whitespace", Name: "trim", Stages: []domain.Stage{domain.StageManual}},
				},
				Repo: domain.NativeHooksRepo,
				Rev:  "v4.5.0",
			},
			{
				Hooks: []domain.HookEntry{{Alias: "fast", ID: "lint", Name: "lint"}},
				Repo:  domain.RepoLocal,
			},
		},
	}

	listing := NewConfigService(nil, nil).ListHooks(cfg)

	require.Len(t, listing, 3)
	assert.Equal(t, HookListing{
		ID:     "check-yaml",
		Name:   "check yaml",
		Repo:   domain.NativeHooksRepo,
		Rev:    "v4.5.0",
		Stages: []domain.Stage{domain.StagePreCommit},
	}, listing[0])
	assert.Equal(t, "trim", listing[1].Name)
	assert.Equal(t, []domain.Stage{domain.StageManual}, listing[1].Stages)
	assert.Equal(t, "fast", listing[2].Alias)
	assert.Empty(t, listing[2].Rev)
}

func TestConfigService_SampleConfig(t *testing.T) {
	sample := NewConfigService(nil, nil).SampleConfig()

	assert.Contains(t, sample, "repo: https://github.com/pre-commit/pre-commit-hooks")
	for _, id := range []string{"check-yaml", "check-toml", "check-json", "end-of-file-fixer", "trailing-whitespace"} {
		assert.Contains(t, sample, "- id: "+id)
	}
}
