package ports

import (
	"context"

	"github.com/renato0307/hookpin/internal/domain"
)

// RepoSourceParser parses repository source information
type RepoSourceParser interface {
	IsGitURL(source string) bool
	IsSameRepo(url1, url2 string) bool
	ParseRepoSource(source string) (*domain.RepoSource, error)
}

// WorkTreeInspector queries the repository hooks run against
type WorkTreeInspector interface {
	AllFiles(repoRoot string) ([]string, error)
	ChangedFiles(repoRoot, fromRef, toRef string) ([]string, error)
	Diff(repoRoot string) ([]byte, error)
	HooksDir(repoRoot string) (string, error)
	RepoRoot(path string) (string, error)
	StagedFiles(repoRoot string) ([]string, error)
}

// RepoFetcher fetches hook repositories
type RepoFetcher interface {
	CloneAtRev(ctx context.Context, url, rev, dest string) error
	FetchLatest(ctx context.Context, url, dest string, bleedingEdge bool) (domain.LatestRev, error)
	RemoteBranches(ctx context.Context, url string) ([]string, error)
}

// GitRepository is the composite interface
type GitRepository interface {
	RepoFetcher
	RepoSourceParser
	WorkTreeInspector
}
