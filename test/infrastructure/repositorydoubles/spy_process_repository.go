//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// ProcessCall records a single invocation of Run.
type ProcessCall struct {
	Executable string
	Args       []string
}

// SpyProcessRepository implements repositories.ProcessRepository as a configurable spy.
type SpyProcessRepository struct {
	RunErr error
	Calls  []ProcessCall
	Events *[]string // shared ordering log, optional
}

var _ repositories.ProcessRepository = (*SpyProcessRepository)(nil)

func (s *SpyProcessRepository) Run(_ context.Context, executable string, args []string) error {
	s.Calls = append(s.Calls, ProcessCall{Executable: executable, Args: args})
	if s.Events != nil {
		*s.Events = append(*s.Events, "run")
	}
	return s.RunErr
}
