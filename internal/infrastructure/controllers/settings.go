package controllers

import (
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

const failurePrompt = "Press any key to exit..."

// loadSettings reads the --config file, the first auto-detected config file,
// or falls back to the built-in defaults.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return entities.DefaultSettings(), nil
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}

// bootstrapOptions reads the global runtime flags.
func bootstrapOptions(cmd *cobra.Command) entities.BootstrapOptions {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return entities.BootstrapOptions{DryRun: dryRun, Verbose: verbose}
}

// ReportedError marks a failure that was already shown to the user.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// reportFailure shows a fatal error and, when pause is set, waits for a
// keypress before returning the error marked as reported.
func reportFailure(console repositories.ConsoleRepository, pause bool, err error) error {
	console.Error("%v", err)

	switch {
	case errors.Is(err, entities.ErrEnvironmentMissing):
		console.Error("Install the interpreter and make sure it is on your PATH, then try again.")
	case errors.Is(err, entities.ErrInstallFailure):
		console.Error("Fix the failing dependency (or install it manually), then try again.")
	}

	if pause {
		console.Pause(failurePrompt)
	}
	return &ReportedError{Err: err}
}
