package storage

import "time"

// RepoModel is the GORM model for the repos table
type RepoModel struct {
	CreatedAt  time.Time
	ID         uint      `gorm:"primaryKey"`
	LastUsedAt time.Time `gorm:"not null;index:idx_repos_last_used"`
	Path       string    `gorm:"not null"`
	Repo       string    `gorm:"not null;uniqueIndex:idx_repo_rev"`
	Rev        string    `gorm:"not null;uniqueIndex:idx_repo_rev"`
}

// TableName specifies the table name for GORM
func (RepoModel) TableName() string { return "repos" }

// ConfigModel is the GORM model for the configs table
type ConfigModel struct {
	CreatedAt  time.Time
	LastUsedAt time.Time `gorm:"not null"`
	Path       string    `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (ConfigModel) TableName() string { return "configs" }

// HookRunModel is the GORM model for the hook_runs table
type HookRunModel struct {
	DurationMs int64     `gorm:"not null;default:0"`
	ExitCode   int       `gorm:"not null;default:0"`
	Files      int       `gorm:"not null;default:0"`
	HookID     string    `gorm:"not null;index:idx_runs_hook"`
	ID         uint      `gorm:"primaryKey"`
	Repo       string    `gorm:"not null;default:''"`
	Rev        string    `gorm:"not null;default:''"`
	RunID      string    `gorm:"not null;index:idx_runs_run"`
	StartedAt  time.Time `gorm:"not null;index:idx_runs_started"`
	Status     string    `gorm:"not null;check:status IN ('passed','failed','skipped')"`
}

// TableName specifies the table name for GORM
func (HookRunModel) TableName() string { return "hook_runs" }
