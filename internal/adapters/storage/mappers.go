package storage

import (
	"time"

	"github.com/renato0307/hookpin/internal/domain"
)

// repoModelToDomain converts a RepoModel (GORM) to domain.RepoCacheEntry
func repoModelToDomain(m RepoModel) domain.RepoCacheEntry {
	return domain.RepoCacheEntry{
		CreatedAt:  m.CreatedAt,
		LastUsedAt: m.LastUsedAt,
		Path:       m.Path,
		Repo:       m.Repo,
		Rev:        m.Rev,
	}
}

// domainToRepoModel converts a domain.RepoCacheEntry to RepoModel (GORM)
func domainToRepoModel(e domain.RepoCacheEntry) RepoModel {
	return RepoModel{
		LastUsedAt: e.LastUsedAt,
		Path:       e.Path,
		Repo:       e.Repo,
		Rev:        e.Rev,
	}
}

func hookRunModelToDomain(m HookRunModel) domain.HookRun {
	return domain.HookRun{
		Duration:  time.Duration(m.DurationMs) * time.Millisecond,
		ExitCode:  m.ExitCode,
		Files:     m.Files,
		HookID:    m.HookID,
		Repo:      m.Repo,
		Rev:       m.Rev,
		RunID:     m.RunID,
		StartedAt: m.StartedAt,
		Status:    domain.HookStatus(m.Status),
	}
}

func domainToHookRunModel(r domain.HookRun) HookRunModel {
	return HookRunModel{
		DurationMs: r.Duration.Milliseconds(),
		ExitCode:   r.ExitCode,
		Files:      r.Files,
		HookID:     r.HookID,
		Repo:       r.Repo,
		Rev:        r.Rev,
		RunID:      r.RunID,
		StartedAt:  r.StartedAt.UTC(),
		Status:     string(r.Status),
	}
}
