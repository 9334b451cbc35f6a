package ports

import (
	"context"

	"github.com/renato0307/hookpin/internal/domain"
)

// RepoStore tracks hook repositories checked out in the cache.
// GetRepo returns domain.ErrRepoNotCached when the pair is unknown.
type RepoStore interface {
	AddRepo(ctx context.Context, entry domain.RepoCacheEntry) error
	DeleteRepo(ctx context.Context, repo, rev string) error
	GetRepo(ctx context.Context, repo, rev string) (*domain.RepoCacheEntry, error)
	ListRepos(ctx context.Context) ([]domain.RepoCacheEntry, error)
	TouchRepo(ctx context.Context, repo, rev string) error
}

// ConfigTracker remembers configuration files that used the cache
type ConfigTracker interface {
	DeleteConfig(ctx context.Context, path string) error
	ListConfigs(ctx context.Context) ([]string, error)
	MarkConfigUsed(ctx context.Context, path string) error
}

// RunRecorder persists hook run history
type RunRecorder interface {
	RecordRuns(ctx context.Context, runs []domain.HookRun) error
}

// RunReader reads hook run history
type RunReader interface {
	ListRuns(ctx context.Context, filter domain.RunFilter) ([]domain.HookRun, error)
}

// Store is the composite interface
type Store interface {
	ConfigTracker
	RepoStore
	RunReader
	RunRecorder
	Close() error
}

// StoreLocker serializes cache mutations across hookpin processes
type StoreLocker interface {
	Lock(ctx context.Context) (unlock func() error, err error)
}
