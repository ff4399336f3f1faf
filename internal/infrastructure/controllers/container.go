package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewLaunchController); err != nil {
		return err
	}
	if err := container.Provide(NewInstallController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
func NewControllers(
	installController *InstallController,
	checkController *CheckController,
) *[]entities.Controller {
	return &[]entities.Controller{
		installController,
		checkController,
	}
}
