package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/bootstrap/internal/domain/commands"
	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// LaunchController handles the root command: bootstrap, then run the application.
type LaunchController struct {
	command commands.Launch
	console repositories.ConsoleRepository
}

// NewLaunchController creates a new LaunchController.
func NewLaunchController(
	command commands.Launch,
	console repositories.ConsoleRepository,
) *LaunchController {
	return &LaunchController{command: command, console: console}
}

// GetBind returns the Cobra command metadata for the launch controller.
func (it *LaunchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bootstrap",
		Short: "Install missing dependencies and launch the application",
		Long: `Verify the interpreter is on PATH, install every dependency from the
manifest that is not installed yet, then clear the screen and start the
application's main entry point.

Run without arguments. Any failure stops the sequence immediately.`,
	}
}

// Execute runs the launch sequence.
func (it *LaunchController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return reportFailure(it.console, entities.DefaultSettings().Pause, err)
	}

	if err = it.command.Execute(ctx, settings, bootstrapOptions(cmd)); err != nil {
		return reportFailure(it.console, settings.Pause, err)
	}

	return nil
}
