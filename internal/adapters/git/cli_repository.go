package git

import (
	"context"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct{}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

// RepoSourceParser methods

// IsGitURL implements RepoSourceParser.IsGitURL
func (r *CLIRepository) IsGitURL(source string) bool {
	return isGitURL(source)
}

// IsSameRepo implements RepoSourceParser.IsSameRepo
func (r *CLIRepository) IsSameRepo(url1, url2 string) bool {
	return isSameRepo(url1, url2)
}

// ParseRepoSource implements RepoSourceParser.ParseRepoSource
func (r *CLIRepository) ParseRepoSource(source string) (*domain.RepoSource, error) {
	rs, err := parseRepoSource(source)
	if err != nil {
		return nil, err
	}
	return &domain.RepoSource{
		IsRemote: rs.isRemote,
		Owner:    rs.owner,
		Path:     rs.path,
		Repo:     rs.repo,
	}, nil
}

// WorkTreeInspector methods

// AllFiles implements WorkTreeInspector.AllFiles
func (r *CLIRepository) AllFiles(repoRoot string) ([]string, error) {
	return allFiles(repoRoot)
}

// ChangedFiles implements WorkTreeInspector.ChangedFiles
func (r *CLIRepository) ChangedFiles(repoRoot, fromRef, toRef string) ([]string, error) {
	return changedFiles(repoRoot, fromRef, toRef)
}

// Diff implements WorkTreeInspector.Diff
func (r *CLIRepository) Diff(repoRoot string) ([]byte, error) {
	return diff(repoRoot)
}

// HooksDir implements WorkTreeInspector.HooksDir
func (r *CLIRepository) HooksDir(root string) (string, error) {
	return hooksDir(root)
}

// RepoRoot implements WorkTreeInspector.RepoRoot
func (r *CLIRepository) RepoRoot(path string) (string, error) {
	return repoRoot(path)
}

// StagedFiles implements WorkTreeInspector.StagedFiles
func (r *CLIRepository) StagedFiles(root string) ([]string, error) {
	return stagedFiles(root)
}

// RepoFetcher methods

// CloneAtRev implements RepoFetcher.CloneAtRev
func (r *CLIRepository) CloneAtRev(ctx context.Context, url, rev, dest string) error {
	return cloneAtRev(ctx, url, rev, dest)
}

// FetchLatest implements RepoFetcher.FetchLatest
func (r *CLIRepository) FetchLatest(ctx context.Context, url, dest string, bleedingEdge bool) (domain.LatestRev, error) {
	return fetchLatest(ctx, url, dest, bleedingEdge)
}

// RemoteBranches implements RepoFetcher.RemoteBranches
func (r *CLIRepository) RemoteBranches(ctx context.Context, url string) ([]string, error) {
	return remoteBranches(ctx, url)
}
