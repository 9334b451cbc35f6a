package domain

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleConfig() *Config {
	return &Config{
		Exclude: DefaultExclude,
		Repos: []HookSource{
			{
				Repo: "https://github.com/pre-commit/pre-commit-hooks",
				Rev:  "v4.5.0",
				Hooks: []HookEntry{
					{ID: "check-yaml"},
					{ID: "check-toml"},
					{ID: "check-json"},
					{ID: "end-of-file-fixer"},
					{ID: "trailing-whitespace"},
				},
			},
			{
				Repo:  "https://github.com/PyCQA/isort",
				Rev:   "5.13.2",
				Hooks: []HookEntry{{ID: "isort", Name: "isort (python)"}},
			},
		},
	}
}

func TestConfigValidate_SampleIsValid(t *testing.T) {
	cfg := sampleConfig()

	require.NoError(t, cfg.Validate())

	src, ok := cfg.FindSource("https://github.com/pre-commit/pre-commit-hooks")
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]string{"check-yaml", "check-toml", "check-json", "end-of-file-fixer", "trailing-whitespace"},
		src.HookIDs())
	assert.Equal(t, 6, cfg.HookCount())
}

func TestConfigValidate_Structure(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		wantPath string
		sentinel error
	}{
		{
			name:     "no repos",
			mutate:   func(c *Config) { c.Repos = nil },
			wantPath: "repos",
		},
		{
			name:     "missing rev",
			mutate:   func(c *Config) { c.Repos[0].Rev = "" },
			wantPath: "repos[0].rev",
		},
		{
			name:     "floating rev",
			mutate:   func(c *Config) { c.Repos[1].Rev = "main" },
			wantPath: "repos[1].rev",
			sentinel: ErrFloatingRev,
		},
		{
			name:     "no hooks",
			mutate:   func(c *Config) { c.Repos[1].Hooks = nil },
			wantPath: "repos[1].hooks",
		},
		{
			name:     "missing id",
			mutate:   func(c *Config) { c.Repos[1].Hooks[0].ID = "" },
			wantPath: "repos[1].hooks[0].id",
		},
		{
			name: "duplicate id",
			mutate: func(c *Config) {
				c.Repos[0].Hooks = append(c.Repos[0].Hooks, HookEntry{ID: "check-json"})
			},
			wantPath: "repos[0].hooks[5].id",
		},
		{
			name:     "entry on remote hook",
			mutate:   func(c *Config) { c.Repos[1].Hooks[0].Entry = "isort" },
			wantPath: "repos[1].hooks[0].entry",
		},
		{
			name:     "bad files regex",
			mutate:   func(c *Config) { c.Repos[1].Hooks[0].Files = strPtr("(") },
			wantPath: "repos[1].hooks[0].files",
		},
		{
			name:     "unknown type tag",
			mutate:   func(c *Config) { c.Repos[1].Hooks[0].Types = []string{"pyhton"} },
			wantPath: "repos[1].hooks[0].types",
		},
		{
			name:     "unknown stage",
			mutate:   func(c *Config) { c.Repos[1].Hooks[0].Stages = []Stage{"pre-comit"} },
			wantPath: "repos[1].hooks[0].stages[0]",
		},
		{
			name:     "bad top-level exclude",
			mutate:   func(c *Config) { c.Exclude = "[" },
			wantPath: "exclude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sampleConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantPath)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestConfigValidate_CollectsEveryIssue(t *testing.T) {
	cfg := sampleConfig()
	cfg.Repos[0].Rev = ""
	cfg.Repos[1].Hooks = append(cfg.Repos[1].Hooks, HookEntry{ID: "isort"})

	err := cfg.Validate()

	require.Error(t, err)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "2 problems found:")
}

func TestConfigValidate_LocalAndBuiltin(t *testing.T) {
	tests := []struct {
		name    string
		source  HookSource
		wantErr string
	}{
		{
			name: "valid local",
			source: HookSource{Repo: RepoLocal, Hooks: []HookEntry{
				{ID: "lint", Name: "lint", Entry: "make lint", Language: LanguageSystem},
			}},
		},
		{
			name: "local without entry",
			source: HookSource{Repo: RepoLocal, Hooks: []HookEntry{
				{ID: "lint", Name: "lint", Language: LanguageSystem},
			}},
			wantErr: "entry is required",
		},
		{
			name: "local unknown language",
			source: HookSource{Repo: RepoLocal, Hooks: []HookEntry{
				{ID: "lint", Name: "lint", Entry: "x", Language: "cobol"},
			}},
			wantErr: "unknown language 'cobol'",
		},
		{
			name: "local with rev",
			source: HookSource{Repo: RepoLocal, Rev: "v1", Hooks: []HookEntry{
				{ID: "lint", Name: "lint", Entry: "x", Language: LanguageSystem},
			}},
			wantErr: "rev must not be set",
		},
		{
			name:   "valid builtin",
			source: HookSource{Repo: RepoBuiltin, Hooks: []HookEntry{{ID: "check-yaml"}}},
		},
		{
			name:    "unknown builtin",
			source:  HookSource{Repo: RepoBuiltin, Hooks: []HookEntry{{ID: "check-xml"}}},
			wantErr: "'check-xml' is not a builtin hook",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Repos: []HookSource{tt.source}}

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsFloatingRev(t *testing.T) {
	tests := []struct {
		rev      string
		expected bool
	}{
		{"v4.5.0", false},
		{"5.13.2", false},
		{"a1b2c3d4e5f60718293a4b5c6d7e8f9012345678", false},
		{"", true},
		{"main", true},
		{"master", true},
		{"HEAD", true},
		{"refs/heads/release", true},
		{"origin/main", true},
	}

	for _, tt := range tests {
		t.Run(tt.rev, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFloatingRev(tt.rev))
		})
	}
}

func TestValidationIssue_Error(t *testing.T) {
	issue := &ValidationIssue{Line: 4, Path: "repos[0].rev", Message: "rev is required", Err: ErrFloatingRev}

	assert.Equal(t, "line 4: repos[0].rev: rev is required", issue.Error())
	assert.ErrorIs(t, issue, ErrFloatingRev)
}
