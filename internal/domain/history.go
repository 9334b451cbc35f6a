package domain

import "time"

// HookRun is a persisted record of one hook execution
type HookRun struct {
	Duration  time.Duration
	ExitCode  int
	Files     int
	HookID    string
	Repo      string
	Rev       string
	RunID     string
	StartedAt time.Time
	Status    HookStatus
}

// RepoCacheEntry is a hook repository checked out at a revision
type RepoCacheEntry struct {
	CreatedAt  time.Time
	LastUsedAt time.Time
	Path       string
	Repo       string
	Rev        string
}

// LatestRev is the newest revision found for a repository
type LatestRev struct {
	Rev string // Tag, or commit when no tag is reachable
	SHA string // Commit the revision points at
}

// RunFilter selects hook runs from history
type RunFilter struct {
	HookID string
	Limit  int // 0 means no limit
	Since  time.Time
	Status HookStatus
}
