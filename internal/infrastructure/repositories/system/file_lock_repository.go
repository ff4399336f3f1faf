package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

const lockRetryDelay = 500 * time.Millisecond

// FileLockRepository implements install serialization with an advisory file lock.
type FileLockRepository struct{}

// NewFileLockRepository creates a new file lock repository.
func NewFileLockRepository() repositories.LockRepository {
	return &FileLockRepository{}
}

// Acquire tries the lock once and, when another launcher holds it, waits
// for it to be released.
func (r *FileLockRepository) Acquire(ctx context.Context, path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(path)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		logger.Infof("Another bootstrap is installing dependencies, waiting for %s", path)
		ok, err = lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return nil, fmt.Errorf("acquire lock %s: %w", path, err)
		}
		if !ok {
			return nil, fmt.Errorf("acquire lock %s: not acquired", path)
		}
	}

	return func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			logger.Warnf("Failed to release lock %s: %v", path, unlockErr)
		}
	}, nil
}
