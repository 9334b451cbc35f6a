package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/hookpin/internal/config"
	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

// SQLiteRepository implements ports.Store using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.Store = (*SQLiteRepository)(nil)

// gormLogger wraps the hookpin logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	} else {
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Hooks may run concurrently from several terminals
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&RepoModel{}, &ConfigModel{}, &HookRunModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	logging.Logger.Debug("Opened store", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForHome opens db.db inside a hookpin home directory
func NewSQLiteRepositoryForHome(home string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(home, "db.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetRepo implements RepoStore.GetRepo
func (r *SQLiteRepository) GetRepo(ctx context.Context, repo, rev string) (*domain.RepoCacheEntry, error) {
	var model RepoModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("repo = ? AND rev = ?", repo, rev).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s@%s", domain.ErrRepoNotCached, repo, rev)
		}
		return nil, err
	}

	entry := repoModelToDomain(model)
	return &entry, nil
}

// AddRepo implements RepoStore.AddRepo.
// Re-adding a known repo and rev replaces its path.
func (r *SQLiteRepository) AddRepo(ctx context.Context, entry domain.RepoCacheEntry) error {
	model := domainToRepoModel(entry)
	if model.LastUsedAt.IsZero() {
		model.LastUsedAt = time.Now().UTC()
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "repo"}, {Name: "rev"}},
			DoUpdates: clause.AssignmentColumns([]string{"path", "last_used_at"}),
		}).Create(&model).Error
	}, 3)
}

// TouchRepo implements RepoStore.TouchRepo
func (r *SQLiteRepository) TouchRepo(ctx context.Context, repo, rev string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Model(&RepoModel{}).
			Where("repo = ? AND rev = ?", repo, rev).
			Update("last_used_at", time.Now().UTC()).Error
	}, 3)
}

// ListRepos implements RepoStore.ListRepos, oldest first
func (r *SQLiteRepository) ListRepos(ctx context.Context) ([]domain.RepoCacheEntry, error) {
	var models []RepoModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("last_used_at ASC, id ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RepoCacheEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, repoModelToDomain(m))
	}
	return entries, nil
}

// DeleteRepo implements RepoStore.DeleteRepo
func (r *SQLiteRepository) DeleteRepo(ctx context.Context, repo, rev string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("repo = ? AND rev = ?", repo, rev).Delete(&RepoModel{}).Error
	}, 3)
}

// MarkConfigUsed implements ConfigTracker.MarkConfigUsed
func (r *SQLiteRepository) MarkConfigUsed(ctx context.Context, path string) error {
	model := ConfigModel{LastUsedAt: time.Now().UTC(), Path: path}
	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "path"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_used_at"}),
		}).Create(&model).Error
	}, 3)
}

// ListConfigs implements ConfigTracker.ListConfigs
func (r *SQLiteRepository) ListConfigs(ctx context.Context) ([]string, error) {
	var paths []string
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&ConfigModel{}).Order("path").Pluck("path", &paths).Error
	}, 3)
	return paths, err
}

// DeleteConfig implements ConfigTracker.DeleteConfig
func (r *SQLiteRepository) DeleteConfig(ctx context.Context, path string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("path = ?", path).Delete(&ConfigModel{}).Error
	}, 3)
}

// RecordRuns implements RunRecorder.RecordRuns in one transaction
func (r *SQLiteRepository) RecordRuns(ctx context.Context, runs []domain.HookRun) error {
	if len(runs) == 0 {
		return nil
	}

	models := make([]HookRunModel, 0, len(runs))
	for _, run := range runs {
		models = append(models, domainToHookRunModel(run))
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.CreateInBatches(models, 100).Error
		})
	}, 3)
}

// ListRuns implements RunReader.ListRuns, newest first
func (r *SQLiteRepository) ListRuns(ctx context.Context, filter domain.RunFilter) ([]domain.HookRun, error) {
	var models []HookRunModel
	err := withRetry(func() error {
		q := r.db.WithContext(ctx).Model(&HookRunModel{})
		if filter.HookID != "" {
			q = q.Where("hook_id = ?", filter.HookID)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", string(filter.Status))
		}
		if !filter.Since.IsZero() {
			q = q.Where("started_at >= ?", filter.Since.UTC())
		}
		if filter.Limit > 0 {
			q = q.Limit(filter.Limit)
		}
		return q.Order("started_at DESC, id DESC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	runs := make([]domain.HookRun, 0, len(models))
	for _, m := range models {
		runs = append(runs, hookRunModelToDomain(m))
	}
	return runs, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
