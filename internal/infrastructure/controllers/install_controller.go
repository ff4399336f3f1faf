package controllers

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bootstrap/internal/domain/commands"
	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// InstallController handles the "install" subcommand: the bootstrap pass
// without launching the application.
type InstallController struct {
	command commands.Bootstrap
	console repositories.ConsoleRepository
}

// NewInstallController creates a new InstallController.
func NewInstallController(
	command commands.Bootstrap,
	console repositories.ConsoleRepository,
) *InstallController {
	return &InstallController{command: command, console: console}
}

// GetBind returns the Cobra command metadata for the install controller.
func (it *InstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "install",
		Short: "Install missing dependencies without launching the application",
		Long: `Run the dependency check-and-install pass only.
Useful in CI jobs and container builds where nothing should be launched.`,
	}
}

// Execute runs the bootstrap pass and never pauses.
func (it *InstallController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return reportFailure(it.console, false, err)
	}

	report, err := it.command.Execute(ctx, settings, bootstrapOptions(cmd))
	if err != nil {
		return reportFailure(it.console, false, err)
	}

	logger.Infof(
		"Checked %d dependencies, %d missing, %d installed, %d option lines not processed",
		len(report.Checked), len(report.Missing), len(report.Installed), len(report.Unprocessed),
	)
	if len(report.MissingTools) > 0 {
		it.console.Warn("Missing tools: %s", strings.Join(report.MissingTools, ", "))
	}
	return nil
}
