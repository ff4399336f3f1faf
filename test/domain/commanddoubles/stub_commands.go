//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bootstrap/internal/domain/commands"
	"github.com/rios0rios0/bootstrap/internal/domain/entities"
)

// StubBootstrapCommand is a stub implementation of commands.Bootstrap.
type StubBootstrapCommand struct {
	ExecuteCallCount int
	Report           *entities.BootstrapReport
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         entities.BootstrapOptions
}

var _ commands.Bootstrap = (*StubBootstrapCommand)(nil)

func (s *StubBootstrapCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts entities.BootstrapOptions,
) (*entities.BootstrapReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.Report == nil {
		return &entities.BootstrapReport{}, s.ExecuteErr
	}
	return s.Report, s.ExecuteErr
}

// StubLaunchCommand is a stub implementation of commands.Launch.
type StubLaunchCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         entities.BootstrapOptions
}

var _ commands.Launch = (*StubLaunchCommand)(nil)

func (s *StubLaunchCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts entities.BootstrapOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubCheckCommand is a stub implementation of commands.Check.
type StubCheckCommand struct {
	ExecuteCallCount int
	Statuses         []entities.EntryStatus
	ExecuteErr       error
}

var _ commands.Check = (*StubCheckCommand)(nil)

func (s *StubCheckCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
) ([]entities.EntryStatus, error) {
	s.ExecuteCallCount++
	return s.Statuses, s.ExecuteErr
}
