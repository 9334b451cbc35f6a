package integration_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hookpin/test/integration/harness"
)

const hiManifest = `- id: say-hi
  name: say hi
  entry: hi.sh
  language: script
  pass_filenames: false
  always_run: true
`

var hiFiles = map[string]string{"hi.sh": "#!/bin/sh\necho hi from hook\n"}

func remoteConfig(url, rev string) string {
	return fmt.Sprintf("repos:\n  - repo: %s\n    rev: %s\n    hooks:\n      - id: say-hi\n", url, rev)
}

func TestRemoteRepo_RunAndCache(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	hooks := harness.NewHookRepo(t, hiManifest, hiFiles, "v1.0.0")
	repo := harness.NewTestRepo(t)
	repo.WriteFile(".pre-commit-config.yaml", remoteConfig(hooks.URL(), "v1.0.0"))

	first := harness.RunCommandIn(t, env, repo.Path, "run", "-v")
	harness.AssertSuccess(t, first)
	harness.AssertStdoutContains(t, first, "say hi")
	harness.AssertStdoutContains(t, first, "hi from hook")

	entries, err := os.ReadDir(env.ReposPath())
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	second := harness.RunCommandIn(t, env, repo.Path, "run", "-v")
	harness.AssertSuccess(t, second)
	entries, err = os.ReadDir(env.ReposPath())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "second run must reuse the cached checkout")
}

func TestRemoteRepo_UnknownHookID(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	hooks := harness.NewHookRepo(t, hiManifest, hiFiles, "v1.0.0")
	repo := harness.NewTestRepo(t)
	repo.WriteFile(".pre-commit-config.yaml",
		fmt.Sprintf("repos:\n  - repo: %s\n    rev: v1.0.0\n    hooks:\n      - id: say-bye\n", hooks.URL()))

	result := harness.RunCommandIn(t, env, repo.Path, "run")

	harness.AssertExitCode(t, result, 1)
	harness.AssertStderrContains(t, result, "hook not found")
	harness.AssertStderrContains(t, result, "say-bye")
}

func TestRemoteRepo_BadRev(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	hooks := harness.NewHookRepo(t, hiManifest, hiFiles, "v1.0.0")
	repo := harness.NewTestRepo(t)
	repo.WriteFile(".pre-commit-config.yaml", remoteConfig(hooks.URL(), "v9.9.9"))

	result := harness.RunCommandIn(t, env, repo.Path, "run")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "failed to fetch repository")
}

func TestAutoupdate(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	hooks := harness.NewHookRepo(t, hiManifest, hiFiles, "v1.0.0")
	repo := harness.NewTestRepo(t)
	repo.WriteFile(".pre-commit-config.yaml", "# pinned hooks\n"+remoteConfig(hooks.URL(), "v1.0.0"))

	upToDate := harness.RunCommandIn(t, env, repo.Path, "autoupdate")
	harness.AssertSuccess(t, upToDate)
	harness.AssertStdoutContains(t, upToDate, "already up to date")

	hooks.Release(hiManifest, map[string]string{"hi.sh": "#!/bin/sh\necho hi again\n"}, "v1.1.0")
	update := harness.RunCommandIn(t, env, repo.Path, "autoupdate")
	harness.AssertSuccess(t, update)
	harness.AssertStdoutContains(t, update, "updating v1.0.0 -> v1.1.0")
	config := repo.ReadFile(".pre-commit-config.yaml")
	assert.Contains(t, config, "# pinned hooks\n")
	assert.Contains(t, config, "rev: v1.1.0")

	hooks.Release(hiManifest, hiFiles, "v1.2.0")
	frozen := harness.RunCommandIn(t, env, repo.Path, "autoupdate", "--freeze")
	harness.AssertSuccess(t, frozen)
	assert.Contains(t, repo.ReadFile(".pre-commit-config.yaml"), "# frozen: v1.2.0")

	hooks.Release("- id: say-hello\n  name: say hello\n  entry: hi.sh\n  language: script\n", hiFiles, "v2.0.0")
	broken := harness.RunCommandIn(t, env, repo.Path, "autoupdate")
	harness.AssertExitCode(t, broken, 1)
	harness.AssertStderrContains(t, broken, "say-hi")
	assert.Contains(t, repo.ReadFile(".pre-commit-config.yaml"), "# frozen: v1.2.0")
}

func TestGCAndClean(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	hooks := harness.NewHookRepo(t, hiManifest, hiFiles, "v1.0.0")
	hooks.Release(hiManifest, map[string]string{"hi.sh": "#!/bin/sh\necho hi again\n"}, "v1.1.0")
	repo := harness.NewTestRepo(t)

	repo.WriteFile(".pre-commit-config.yaml", remoteConfig(hooks.URL(), "v1.0.0"))
	harness.AssertSuccess(t, harness.RunCommandIn(t, env, repo.Path, "install-hooks"))
	repo.WriteFile(".pre-commit-config.yaml", remoteConfig(hooks.URL(), "v1.1.0"))
	harness.AssertSuccess(t, harness.RunCommandIn(t, env, repo.Path, "install-hooks"))

	gc := harness.RunCommand(t, env, "gc")
	harness.AssertSuccess(t, gc)
	harness.AssertStdoutContains(t, gc, "1 repo(s) removed, 1 kept.")

	entries, err := os.ReadDir(env.ReposPath())
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	clean := harness.RunCommand(t, env, "clean", "--force")
	harness.AssertSuccess(t, clean)
	assert.NoDirExists(t, env.ReposPath())
}
