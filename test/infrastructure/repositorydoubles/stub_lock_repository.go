//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// StubLockRepository counts lock acquisitions and releases.
type StubLockRepository struct {
	AcquireErr   error
	AcquireCalls []string
	ReleaseCount int
}

var _ repositories.LockRepository = (*StubLockRepository)(nil)

func (s *StubLockRepository) Acquire(_ context.Context, path string) (func(), error) {
	s.AcquireCalls = append(s.AcquireCalls, path)
	if s.AcquireErr != nil {
		return nil, s.AcquireErr
	}
	return func() { s.ReleaseCount++ }, nil
}
