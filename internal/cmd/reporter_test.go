package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/theme"
)

func resolved(id, name string) domain.ResolvedHook {
	return domain.ResolvedHook{HookDefinition: domain.HookDefinition{ID: id, Name: name}}
}

func TestReporter_HookFinished(t *testing.T) {
	theme.SetColor(false)

	tests := []struct {
		name    string
		verbose bool
		result  domain.HookResult
		want    []string
		notWant []string
	}{
		{
			name:    "passed is one line",
			result:  domain.HookResult{Hook: resolved("check-yaml", "check yaml"), Output: []byte("noise"), Status: domain.StatusPassed},
			want:    []string{"check yaml....", "Passed"},
			notWant: []string{"- hook id", "noise"},
		},
		{
			name:   "skipped shows reason",
			result: domain.HookResult{Hook: resolved("check-json", "check json"), SkipReason: domain.SkipNoFiles, Status: domain.StatusSkipped},
			want:   []string{"check json", "(no files to check)Skipped"},
		},
		{
			name: "failed shows details",
			result: domain.HookResult{
				ExitCode:      1,
				FilesModified: true,
				Hook:          resolved("trailing-whitespace", "trim trailing whitespace"),
				Output:        []byte("Fixing a.txt\n"),
				Status:        domain.StatusFailed,
			},
			want:    []string{"Failed", "- hook id: trailing-whitespace", "- exit code: 1", "- files were modified by this hook", "Fixing a.txt"},
			notWant: []string{"- duration"},
		},
		{
			name:    "verbose passed shows output",
			verbose: true,
			result:  domain.HookResult{Duration: 1500 * time.Millisecond, Hook: resolved("lint", ""), Output: []byte("all good"), Status: domain.StatusPassed},
			want:    []string{"lint....", "- hook id: lint", "- duration: 1.50s", "all good"},
			notWant: []string{"- exit code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, tt.verbose).HookFinished(tt.result)

			out := buf.String()
			first, _, _ := strings.Cut(out, "\n")
			assert.Len(t, first, domain.ResultLineWidth)
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestReporter_ShowDiff(t *testing.T) {
	theme.SetColor(false)
	var buf bytes.Buffer

	NewReporter(&buf, false).ShowDiff([]byte("--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n"))

	assert.Equal(t, "All changes made by hooks:\n--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n", buf.String())
}
