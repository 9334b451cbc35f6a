package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/renato0307/hookpin/internal/logging"
	"github.com/renato0307/hookpin/internal/ports"
)

// FileLocker implements ports.StoreLocker with an advisory file lock
type FileLocker struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.StoreLocker = (*FileLocker)(nil)

// NewFileLocker creates a locker on path, usually $HOOKPIN_HOME/.lock
func NewFileLocker(path string) *FileLocker {
	return &FileLocker{path: path}
}

// Lock blocks until the lock is held or ctx is done
func (l *FileLocker) Lock(ctx context.Context) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	fl := flock.New(l.path)
	logging.Logger.Debug("Acquiring store lock", "path", l.path)
	locked, err := fl.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", l.path, err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock %s", l.path)
	}

	logging.Logger.Debug("Store lock acquired", "path", l.path)
	return fl.Unlock, nil
}
