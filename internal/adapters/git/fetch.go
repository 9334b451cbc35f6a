package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
)

// cloneAtRev checks out url at rev into dest.
// A shallow fetch of rev is tried first; servers that refuse fetching by
// sha fall back to a full fetch.
func cloneAtRev(ctx context.Context, url, rev, dest string) error {
	logging.Logger.Info("Cloning hook repository", "url", url, "rev", rev, "dest", dest)

	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	if err := initRemote(ctx, url, dest); err != nil {
		return err
	}

	if _, err := runGit(ctx, dest, true, "fetch", "--depth=1", "origin", rev); err == nil {
		if _, err := runGit(ctx, dest, true, "-c", "advice.detachedHead=false", "checkout", "FETCH_HEAD"); err != nil {
			return fmt.Errorf("%w: %s@%s: %w", domain.ErrRepoFetch, url, rev, err)
		}
	} else {
		logging.Logger.Debug("Shallow fetch failed, fetching full history", "url", url, "rev", rev, "error", err)
		if _, err := runGit(ctx, dest, true, "fetch", "--tags", "origin"); err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrRepoFetch, url, err)
		}
		if _, err := runGit(ctx, dest, true, "-c", "advice.detachedHead=false", "checkout", rev); err != nil {
			return fmt.Errorf("%w: %s@%s: %w", domain.ErrRepoFetch, url, rev, err)
		}
	}

	if _, err := os.Stat(filepath.Join(dest, ".gitmodules")); err == nil {
		if _, err := runGit(ctx, dest, true, "submodule", "update", "--init", "--recursive", "--depth=1"); err != nil {
			return fmt.Errorf("%w: submodules of %s: %w", domain.ErrRepoFetch, url, err)
		}
	}

	logging.Logger.Info("Hook repository ready", "url", url, "rev", rev)
	return nil
}

// fetchLatest fetches the remote HEAD into dest and resolves the newest rev.
// Without bleedingEdge the newest tag reachable from HEAD wins, preferring
// tags that look like versions.
func fetchLatest(ctx context.Context, url, dest string, bleedingEdge bool) (domain.LatestRev, error) {
	logging.Logger.Debug("Fetching latest revision", "url", url, "bleeding_edge", bleedingEdge)

	if err := os.MkdirAll(dest, 0755); err != nil {
		return domain.LatestRev{}, fmt.Errorf("failed to create %s: %w", dest, err)
	}
	if err := initRemote(ctx, url, dest); err != nil {
		return domain.LatestRev{}, err
	}
	if _, err := runGit(ctx, dest, true, "fetch", "origin", "HEAD", "--tags"); err != nil {
		return domain.LatestRev{}, fmt.Errorf("%w: %s: %w", domain.ErrRepoFetch, url, err)
	}

	rev := "FETCH_HEAD"
	if !bleedingEdge {
		out, err := runGit(ctx, dest, true, "describe", "FETCH_HEAD", "--tags", "--abbrev=0")
		if err != nil {
			logging.Logger.Debug("No tags reachable, using HEAD", "url", url)
		} else {
			rev = bestTag(ctx, dest, strings.TrimSpace(string(out)))
		}
	}

	out, err := runGit(ctx, dest, true, "rev-parse", rev+"^{commit}")
	if err != nil {
		return domain.LatestRev{}, fmt.Errorf("%w: %s: %w", domain.ErrRepoFetch, url, err)
	}
	sha := strings.TrimSpace(string(out))

	if _, err := runGit(ctx, dest, true, "-c", "advice.detachedHead=false", "checkout", sha); err != nil {
		return domain.LatestRev{}, fmt.Errorf("%w: %s: %w", domain.ErrRepoFetch, url, err)
	}

	latest := domain.LatestRev{Rev: sha, SHA: sha}
	if rev != "FETCH_HEAD" {
		latest.Rev = rev
	}
	logging.Logger.Debug("Resolved latest revision", "url", url, "rev", latest.Rev, "sha", latest.SHA)
	return latest, nil
}

// bestTag prefers a tag containing a dot among those pointing at tag's commit
func bestTag(ctx context.Context, dir, tag string) string {
	out, err := runGit(ctx, dir, true, "tag", "--points-at", tag+"^{commit}")
	if err != nil {
		return tag
	}
	for _, t := range strings.Fields(string(out)) {
		if strings.Contains(t, ".") {
			return t
		}
	}
	return tag
}

// remoteBranches lists branch names on url
func remoteBranches(ctx context.Context, url string) ([]string, error) {
	out, err := runGit(ctx, "", true, "ls-remote", "--heads", url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrRepoFetch, url, err)
	}

	var branches []string
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		branches = append(branches, strings.TrimPrefix(fields[1], "refs/heads/"))
	}
	return branches, nil
}

func initRemote(ctx context.Context, url, dest string) error {
	if _, err := os.Stat(filepath.Join(dest, ".git")); err == nil {
		_, err := runGit(ctx, dest, true, "remote", "set-url", "origin", url)
		return err
	}
	if _, err := runGit(ctx, dest, true, "init", "--quiet"); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRepoFetch, err)
	}
	if _, err := runGit(ctx, dest, true, "remote", "add", "origin", url); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRepoFetch, err)
	}
	return nil
}
