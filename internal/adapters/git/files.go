package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/renato0307/hookpin/internal/logging"
)

// repoRoot returns the top level of the work tree containing path
func repoRoot(path string) (string, error) {
	out, err := runGit(context.Background(), path, false, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %s: %w", path, err)
	}
	return filepath.Clean(strings.TrimSpace(string(out))), nil
}

// hooksDir honours core.hooksPath and worktrees
func hooksDir(root string) (string, error) {
	out, err := runGit(context.Background(), root, false, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", err
	}
	dir := strings.TrimSpace(string(out))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	logging.Logger.Debug("Resolved hooks directory", "dir", dir)
	return dir, nil
}

// stagedFiles lists files added, copied, modified or renamed in the index
func stagedFiles(root string) ([]string, error) {
	out, err := runGit(context.Background(), root, false,
		"diff", "--staged", "--name-only", "--no-ext-diff", "-z", "--diff-filter=ACMRTUXB")
	if err != nil {
		return nil, err
	}
	return splitNUL(out), nil
}

func allFiles(root string) ([]string, error) {
	out, err := runGit(context.Background(), root, false, "ls-files", "-z")
	if err != nil {
		return nil, err
	}
	return splitNUL(out), nil
}

// changedFiles lists files changed between the merge base of fromRef and toRef
func changedFiles(root, fromRef, toRef string) ([]string, error) {
	out, err := runGit(context.Background(), root, false,
		"diff", "--name-only", "--no-ext-diff", "-z", "--diff-filter=ACMRTUXB", fromRef+"..."+toRef)
	if err != nil {
		return nil, err
	}
	return splitNUL(out), nil
}

// diff snapshots unstaged changes so hook modifications can be detected
func diff(root string) ([]byte, error) {
	return runGit(context.Background(), root, false,
		"diff", "--no-ext-diff", "--no-textconv", "--ignore-submodules")
}
