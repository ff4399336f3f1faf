package repositories

import (
	"context"
)

// LockRepository serializes dependency installs across launcher processes.
type LockRepository interface {
	// Acquire blocks until the lock at path is held and returns its release function.
	Acquire(ctx context.Context, path string) (func(), error)
}
