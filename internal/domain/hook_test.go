package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestHookDefinitionMerge_OverridesOnlySetKeys(t *testing.T) {
	def := NewHookDefinition("black", "black", "black", LanguagePython)
	def.Types = []string{"python"}
	def.RequireSerial = true

	merged := def.Merge(HookEntry{
		ID:            "black",
		Args:          []string{"--line-length=100"},
		Files:         strPtr(`^src/`),
		PassFilenames: boolPtr(false),
	})

	assert.Equal(t, "black", merged.Name)
	assert.Equal(t, []string{"python"}, merged.Types)
	assert.True(t, merged.RequireSerial)
	assert.Equal(t, []string{"--line-length=100"}, merged.Args)
	assert.Equal(t, `^src/`, merged.Files)
	assert.Equal(t, DefaultExclude, merged.Exclude)
	assert.False(t, merged.PassFilenames)
}

func TestHookDefinitionMerge_DoesNotAliasEntrySlices(t *testing.T) {
	args := []string{"--fix"}
	merged := NewHookDefinition("x", "x", "x", LanguageSystem).Merge(HookEntry{Args: args})

	args[0] = "--changed"

	assert.Equal(t, []string{"--fix"}, merged.Args)
}

func TestDefinitionFromLocal(t *testing.T) {
	def := DefinitionFromLocal(HookEntry{
		ID:       "lint",
		Name:     "run linter",
		Entry:    "make lint",
		Language: LanguageSystem,
		Types:    []string{"go"},
	})

	assert.Equal(t, "make lint", def.Entry)
	assert.Equal(t, LanguageSystem, def.Language)
	assert.Equal(t, []string{"go"}, def.Types)
	assert.True(t, def.PassFilenames)
}

func TestResolvedHook_RunsInStage(t *testing.T) {
	hook := ResolvedHook{HookDefinition: NewHookDefinition("x", "x", "x", LanguageSystem)}
	assert.True(t, hook.RunsInStage(StagePrePush))

	hook.Stages = []Stage{StagePreCommit}
	assert.True(t, hook.RunsInStage(StagePreCommit))
	assert.False(t, hook.RunsInStage(StagePrePush))
}

func TestResolvedHook_Matches(t *testing.T) {
	hook := ResolvedHook{HookDefinition: NewHookDefinition("flake8", "flake8", "flake8", LanguagePython)}
	hook.Alias = "lint"

	assert.True(t, hook.Matches("flake8"))
	assert.True(t, hook.Matches("lint"))
	assert.False(t, hook.Matches(""))
	assert.False(t, hook.Matches("black"))
}

func TestBuiltinHooks(t *testing.T) {
	expected := []string{"check-json", "check-toml", "check-yaml", "end-of-file-fixer", "trailing-whitespace"}
	for _, id := range expected {
		t.Run(id, func(t *testing.T) {
			def, ok := BuiltinHooks[id]
			require.True(t, ok)
			assert.Equal(t, id, def.ID)
			assert.Equal(t, LanguageBuiltin, def.Language)
			assert.NotEmpty(t, def.Name)
		})
	}
	assert.Len(t, BuiltinHooks, len(expected))
}

func TestIsNativeRepo(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://github.com/pre-commit/pre-commit-hooks", true},
		{"https://github.com/pre-commit/pre-commit-hooks.git", true},
		{"https://github.com/Pre-Commit/pre-commit-hooks/", true},
		{"https://github.com/psf/black", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNativeRepo(tt.url))
		})
	}
}

func TestNormalizeStage(t *testing.T) {
	tests := []struct {
		input    string
		expected Stage
		wantErr  bool
	}{
		{"pre-commit", StagePreCommit, false},
		{"commit", StagePreCommit, false},
		{"push", StagePrePush, false},
		{"merge-commit", StagePreMergeCommit, false},
		{"manual", StageManual, false},
		{"pre-comit", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stage, err := NormalizeStage(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stage)
		})
	}
}

func TestHookTypeStages_ExcludesManual(t *testing.T) {
	stages := HookTypeStages()

	assert.NotContains(t, stages, string(StageManual))
	assert.Equal(t, StagePrePush, stages["pre-push"])
	assert.Len(t, stages, len(AllStages)-1)
}

func TestFormatResultLine(t *testing.T) {
	line := FormatResultLine("check yaml", SkipNoFiles, StatusSkipped.Label(), ResultLineWidth)

	assert.Len(t, line, ResultLineWidth)
	assert.Equal(t, "check yaml", line[:10])
	assert.True(t, strings.HasSuffix(line, "(no files to check)Skipped"))

	long := FormatResultLine(strings.Repeat("x", 100), "", "Passed", ResultLineWidth)
	assert.Contains(t, long, ".Passed")
}

func TestRunSummary(t *testing.T) {
	summary := RunSummary{Results: []HookResult{
		{Status: StatusPassed},
		{Status: StatusSkipped},
		{Status: StatusPassed},
	}}
	assert.False(t, summary.Failed())
	assert.Equal(t, 2, summary.Count(StatusPassed))

	summary.Results = append(summary.Results, HookResult{Status: StatusFailed})
	assert.True(t, summary.Failed())
}
