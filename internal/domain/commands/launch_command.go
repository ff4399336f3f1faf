package commands

import (
	"context"
	"strings"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

const exitPrompt = "Press any key to exit..."

// Launch is the interface for the full launch sequence.
type Launch interface {
	Execute(ctx context.Context, settings *entities.Settings, opts entities.BootstrapOptions) error
}

// LaunchCommand runs the bootstrap pass and then hands the terminal to the
// application's main entry point.
type LaunchCommand struct {
	bootstrap Bootstrap
	processes repositories.ProcessRepository
	console   repositories.ConsoleRepository
}

// NewLaunchCommand creates a new LaunchCommand.
func NewLaunchCommand(
	bootstrap Bootstrap,
	processes repositories.ProcessRepository,
	console repositories.ConsoleRepository,
) *LaunchCommand {
	return &LaunchCommand{
		bootstrap: bootstrap,
		processes: processes,
		console:   console,
	}
}

// Execute returns only bootstrap failures. The application's own exit status
// is reported as a warning.
func (it *LaunchCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts entities.BootstrapOptions,
) error {
	report, err := it.bootstrap.Execute(ctx, settings, opts)
	if err != nil {
		return err
	}

	args := append([]string{settings.EntryPoint}, settings.EntryArgs...)

	if opts.DryRun {
		it.console.Notice("[DRY RUN] Would launch %s %s", report.Interpreter, strings.Join(args, " "))
		return nil
	}

	if settings.ClearScreen {
		it.console.Clear()
	}

	if runErr := it.processes.Run(ctx, report.Interpreter, args); runErr != nil {
		it.console.Warn("Application finished with an error: %v", runErr)
	}

	if settings.Pause {
		it.console.Pause(exitPrompt)
	}

	return nil
}
