package integration_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/hookpin/test/integration/harness"
)

const sampleIDs = "check-yaml,check-toml,check-json,end-of-file-fixer,trailing-whitespace"

func TestSampleConfig(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sample-config")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "repo: https://github.com/pre-commit/pre-commit-hooks")
	for _, id := range []string{"check-yaml", "check-toml", "check-json", "end-of-file-fixer", "trailing-whitespace"} {
		harness.AssertStdoutContains(t, result, "- id: "+id)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		config       string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:   "valid configuration",
			config: "repos:\n- repo: https://github.com/psf/black\n  rev: 24.1.1\n  hooks:\n  - id: black\n",
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "1 repos, 1 hooks")
			},
		},
		{
			name:         "missing rev",
			config:       "repos:\n- repo: https://github.com/psf/black\n  hooks:\n  - id: black\n",
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "rev is required")
			},
		},
		{
			name:         "duplicate hook ids",
			config:       "repos:\n- repo: https://github.com/psf/black\n  rev: 24.1.1\n  hooks:\n  - id: black\n  - id: black\n",
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "duplicate id 'black'")
			},
		},
		{
			name:         "floating rev",
			config:       "repos:\n- repo: https://github.com/psf/black\n  rev: main\n  hooks:\n  - id: black\n",
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "main")
			},
		},
		{
			name:         "parse error",
			config:       "repos: [unclosed\n",
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "invalid configuration")
			},
		},
		{
			name:   "unknown key warns",
			config: "repos:\n- repo: builtin\n  hooks:\n  - id: check-json\nrepo: oops\n",
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "warning")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			repo := harness.NewTestRepo(t)
			repo.WriteFile(".pre-commit-config.yaml", tt.config)

			result := harness.RunCommandIn(t, env, repo.Path, "validate")

			harness.AssertExitCode(t, result, tt.wantExitCode)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestValidate_SampleConfig(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestRepo(t)
	sample := harness.RunCommand(t, env, "sample-config")
	repo.WriteFile(".pre-commit-config.yaml", sample.Stdout)

	result := harness.RunCommandIn(t, env, repo.Path, "validate")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "4 repos, 8 hooks")
}

func TestFmt(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestRepo(t)
	repo.WriteFile(".pre-commit-config.yaml", "repos:\n- repo: builtin\n  hooks:\n  - {id: check-json}\n")

	check := harness.RunCommandIn(t, env, repo.Path, "fmt", "--check")
	harness.AssertExitCode(t, check, 1)
	harness.AssertStdoutContains(t, check, "+      - id: check-json")

	format := harness.RunCommandIn(t, env, repo.Path, "fmt")
	harness.AssertSuccess(t, format)
	assert.Equal(t, "repos:\n  - repo: builtin\n    hooks:\n      - id: check-json\n", repo.ReadFile(".pre-commit-config.yaml"))

	again := harness.RunCommandIn(t, env, repo.Path, "fmt", "--check")
	harness.AssertSuccess(t, again)
	harness.AssertStdoutContains(t, again, "already formatted")
}

func TestList(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestRepo(t)
	sample := harness.RunCommand(t, env, "sample-config")
	repo.WriteFile(".pre-commit-config.yaml", sample.Stdout)

	table := harness.RunCommandIn(t, env, repo.Path, "list")
	harness.AssertSuccess(t, table)
	harness.AssertStdoutContains(t, table, "isort (python)")

	jsonResult := harness.RunCommandIn(t, env, repo.Path, "list", "--format", "json")
	harness.AssertSuccess(t, jsonResult)

	var hooks []struct {
		ID   string `json:"id"`
		Repo string `json:"repo"`
		Rev  string `json:"rev"`
	}
	harness.AssertValidJSON(t, jsonResult, &hooks)
	assert.Len(t, hooks, 8)

	var ids []string
	for _, h := range hooks {
		if h.Repo == "https://github.com/pre-commit/pre-commit-hooks" {
			ids = append(ids, h.ID)
			assert.Equal(t, "v4.5.0", h.Rev)
		}
	}
	assert.Equal(t, sampleIDs, strings.Join(ids, ","))
}

func TestSettingsMeta(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	table := harness.RunCommand(t, env, "settings", "meta")
	harness.AssertSuccess(t, table)
	harness.AssertStdoutContains(t, table, "Settings file:")
	harness.AssertStdoutContains(t, table, "native_hooks")

	jsonResult := harness.RunCommand(t, env, "settings", "meta", "--format", "json")
	harness.AssertSuccess(t, jsonResult)
	var output map[string]any
	harness.AssertValidJSON(t, jsonResult, &output)
	assert.Contains(t, output, "settings_file")
	assert.Contains(t, output, "format")
	harness.AssertJSONContains(t, jsonResult, "settings_file", filepath.Join(env.HookpinHome, "settings.json"))
}
