package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestRepo is a git working repository hooks run against
type TestRepo struct {
	Path string
	tb   testing.TB
}

// NewTestRepo creates a repository with an initial commit on main.
func NewTestRepo(tb testing.TB) *TestRepo {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "work")
	runGitCommand(tb, filepath.Dir(path), "init", "-q", path)
	runGitCommand(tb, path, "config", "user.email", "test@example.com")
	runGitCommand(tb, path, "config", "user.name", "Test User")
	runGitCommand(tb, path, "config", "commit.gpgsign", "false")

	repo := &TestRepo{Path: path, tb: tb}
	repo.WriteFile("README.md", "# Test Repo\n")
	repo.Commit("Initial commit", "README.md")
	runGitCommand(tb, path, "branch", "-M", "main")
	return repo
}

// WriteFile writes content to a path relative to the repository.
func (r *TestRepo) WriteFile(name, content string) {
	r.tb.Helper()
	writeFile(r.tb, filepath.Join(r.Path, name), content, 0644)
}

// ReadFile returns the content of a path relative to the repository.
func (r *TestRepo) ReadFile(name string) string {
	r.tb.Helper()
	data, err := os.ReadFile(filepath.Join(r.Path, name))
	if err != nil {
		r.tb.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}

// Stage adds files to the index.
func (r *TestRepo) Stage(names ...string) {
	r.tb.Helper()
	runGitCommand(r.tb, r.Path, append([]string{"add", "--"}, names...)...)
}

// Commit stages names and commits them without running hooks.
func (r *TestRepo) Commit(message string, names ...string) {
	r.tb.Helper()
	if len(names) > 0 {
		r.Stage(names...)
	}
	runGitCommand(r.tb, r.Path, "commit", "-q", "--no-verify", "-m", message)
}

// Git runs git in the repository and returns its combined output and error.
func (r *TestRepo) Git(env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Path
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// HookRepo is a repository exporting hooks through a manifest
type HookRepo struct {
	Path string
	tb   testing.TB
}

// NewHookRepo creates a hook repository whose first commit carries manifest
// and files, tagged with tag.
func NewHookRepo(tb testing.TB, manifest string, files map[string]string, tag string) *HookRepo {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "hooks")
	runGitCommand(tb, filepath.Dir(path), "init", "-q", path)
	runGitCommand(tb, path, "config", "commit.gpgsign", "false")

	repo := &HookRepo{Path: path, tb: tb}
	repo.Release(manifest, files, tag)
	return repo
}

// Release commits manifest and files and tags the commit.
func (h *HookRepo) Release(manifest string, files map[string]string, tag string) {
	h.tb.Helper()

	writeFile(h.tb, filepath.Join(h.Path, ".pre-commit-hooks.yaml"), manifest, 0644)
	for name, content := range files {
		mode := os.FileMode(0644)
		if strings.HasSuffix(name, ".sh") {
			mode = 0755
		}
		writeFile(h.tb, filepath.Join(h.Path, name), content, mode)
	}
	runGitCommand(h.tb, h.Path, "add", "-A")
	runGitCommand(h.tb, h.Path, "commit", "-q", "-m", "release "+tag)
	runGitCommand(h.tb, h.Path, "tag", tag)
}

// URL returns a file:// URL for the repository.
func (h *HookRepo) URL() string {
	return "file://" + filepath.ToSlash(h.Path)
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

func writeFile(tb testing.TB, path, content string, mode os.FileMode) {
	tb.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tb.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		tb.Fatalf("Failed to write %s: %v", path, err)
	}
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}
