package internal

import (
	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/infrastructure/controllers"
)

// AppInternal holds everything the CLI entry point mounts.
type AppInternal struct {
	launchController *controllers.LaunchController
	controllers      []entities.Controller
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(
	launchController *controllers.LaunchController,
	subcommands *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		launchController: launchController,
		controllers:      *subcommands,
	}
}

// GetLaunchController returns the controller bound to the root command.
func (it *AppInternal) GetLaunchController() *controllers.LaunchController {
	return it.launchController
}

// GetControllers returns the controllers bound to subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
