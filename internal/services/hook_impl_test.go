package services

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hookpin/internal/domain"
)

func TestHookRunOptions(t *testing.T) {
	const (
		local  = "1111111111111111111111111111111111111111"
		remote = "2222222222222222222222222222222222222222"
	)

	tests := []struct {
		name    string
		opts    HookImplOptions
		wantRun bool
		want    RunOptions
		wantErr string
	}{
		{
			name:    "pre-commit",
			opts:    HookImplOptions{HookType: "pre-commit"},
			wantRun: true,
			want:    RunOptions{Stage: domain.StagePreCommit},
		},
		{
			name:    "commit-msg passes the message file",
			opts:    HookImplOptions{Args: []string{".git/COMMIT_EDITMSG"}, HookType: "commit-msg"},
			wantRun: true,
			want:    RunOptions{Files: []string{".git/COMMIT_EDITMSG"}, Stage: domain.StageCommitMsg},
		},
		{
			name:    "commit-msg without file",
			opts:    HookImplOptions{HookType: "commit-msg"},
			wantErr: "expects the commit message file",
		},
		{
			name:    "post-checkout",
			opts:    HookImplOptions{Args: []string{local, remote, "1"}, HookType: "post-checkout"},
			wantRun: true,
			want:    RunOptions{FromRef: local, Stage: domain.StagePostCheckout, ToRef: remote},
		},
		{
			name:    "pre-push existing branch",
			opts:    HookImplOptions{HookType: "pre-push", Stdin: []byte("refs/heads/main " + local + " refs/heads/main " + remote + "\n")},
			wantRun: true,
			want:    RunOptions{FromRef: remote, Stage: domain.StagePrePush, ToRef: local},
		},
		{
			name:    "pre-push new branch",
			opts:    HookImplOptions{HookType: "pre-push", Stdin: []byte("refs/heads/feat " + local + " refs/heads/feat " + zeroSHA + "\n")},
			wantRun: true,
			want:    RunOptions{AllFiles: true, Stage: domain.StagePrePush},
		},
		{
			name: "pre-push branch deletion",
			opts: HookImplOptions{HookType: "pre-push", Stdin: []byte("(delete) " + zeroSHA + " refs/heads/old " + remote + "\n")},
			want: RunOptions{Stage: domain.StagePrePush},
		},
		{
			name:    "unknown type",
			opts:    HookImplOptions{HookType: "manual"},
			wantErr: "unknown hook type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SKIP", "")

			run, ok, err := HookRunOptions(tt.opts)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRun, ok)
			assert.Equal(t, tt.want, run)
		})
	}
}

func TestSkipFromEnv(t *testing.T) {
	t.Setenv("SKIP", " flake8, ,black,")

	assert.Equal(t, []string{"flake8", "black"}, SkipFromEnv())
}

func TestRunLegacyHook(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	dir := t.TempDir()
	opts := HookImplOptions{Args: []string{"msg"}, HookDir: dir, HookType: "commit-msg"}

	code, err := RunLegacyHook(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	script := "#!/bin/sh\n[ \"$1\" = msg ] && exit 7\nexit 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commit-msg.legacy"), []byte(script), 0755))

	code, err = RunLegacyHook(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}
