package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/bootstrap/internal/infrastructure/repositories"
)

// Bootstrap is the interface for the check-and-install pass.
type Bootstrap interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts entities.BootstrapOptions,
	) (*entities.BootstrapReport, error)
}

// BootstrapCommand verifies the interpreter, then walks the manifest once,
// installing every dependency the package manager reports as absent.
// The first failure ends the pass.
type BootstrapCommand struct {
	executables repositories.ExecutableRepository
	manifests   *infraRepos.ManifestRegistry
	packages    repositories.PackageRepository
	locks       repositories.LockRepository
	console     repositories.ConsoleRepository
}

// NewBootstrapCommand creates a new BootstrapCommand.
func NewBootstrapCommand(
	executables repositories.ExecutableRepository,
	manifests *infraRepos.ManifestRegistry,
	packages repositories.PackageRepository,
	locks repositories.LockRepository,
	console repositories.ConsoleRepository,
) *BootstrapCommand {
	return &BootstrapCommand{
		executables: executables,
		manifests:   manifests,
		packages:    packages,
		locks:       locks,
		console:     console,
	}
}

// Execute runs the pass and returns what it checked and installed. The
// report is returned alongside an install or manifest error as well.
func (it *BootstrapCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts entities.BootstrapOptions,
) (*entities.BootstrapReport, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	interpreter, err := resolveInterpreter(it.executables, settings)
	if err != nil {
		return nil, err
	}

	report := &entities.BootstrapReport{Interpreter: interpreter}
	report.MissingTools = it.checkTools(settings.Tools)

	reader, err := it.manifests.Resolve(settings.ManifestFormat, settings.Manifest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrManifestUnreadable, err)
	}
	logger.Debugf("Reading %s manifest %s", reader.Name(), settings.Manifest)

	release := func() {}
	locked := false
	defer func() { release() }()

	for entry, readErr := range reader.Entries(settings.Manifest, settings.CommentMarker) {
		if readErr != nil {
			return report, readErr
		}
		if entry.Kind == entities.EntryOption {
			report.Unprocessed = append(report.Unprocessed, entry)
			it.console.Warn(
				"Line %d: pip option %q is not processed, install what it refers to manually",
				entry.Line, entry.Text,
			)
			continue
		}
		if entry.Skipped() {
			logger.Debugf("Skipping %s line %d", entry.Kind, entry.Line)
			continue
		}
		if !markerApplies(ctx, it.packages, interpreter, entry) {
			report.NotApplied = append(report.NotApplied, entry)
			continue
		}

		report.Checked = append(report.Checked, entry)

		status := queryEntry(ctx, it.packages, interpreter, entry)
		if status.Installed {
			if settings.CheckVersions && versionMismatch(entry, status) {
				it.console.Warn(
					"%s %s is installed but the manifest pins %s",
					entry.Name, status.Version, entry.PinnedVersion(),
				)
			}
			continue
		}

		report.Missing = append(report.Missing, entry)
		it.console.Notice("%s is not installed, installing...", entry.Name)

		if opts.DryRun {
			it.console.Notice("[DRY RUN] Would install %s", entry.Requirement())
			continue
		}

		if !locked && settings.LockingEnabled() {
			release = it.acquireLock(ctx, settings.LockFile)
			locked = true
		}

		if installErr := it.packages.Install(ctx, interpreter, entry.Requirement()); installErr != nil {
			return report, &entities.InstallFailureError{Entry: entry, Err: installErr}
		}
		report.Installed = append(report.Installed, entry)
		it.console.Notice("Installed %s", entry.Requirement())
	}

	if report.AllInstalled() {
		it.console.Notice("All dependencies are installed.")
	}

	return report, nil
}

// checkTools warns about external programs the application needs but that
// are not on PATH. Missing tools never stop the pass.
func (it *BootstrapCommand) checkTools(tools []string) []string {
	var missing []string
	for _, tool := range tools {
		if _, err := it.executables.Locate(tool); err != nil {
			missing = append(missing, tool)
			it.console.Warn("%s was not found on PATH, parts of the application may not work", tool)
		}
	}
	return missing
}

// acquireLock holds the install lock; failing to lock degrades to an
// unlocked install.
func (it *BootstrapCommand) acquireLock(ctx context.Context, path string) func() {
	release, err := it.locks.Acquire(ctx, path)
	if err != nil {
		it.console.Warn("Installing without lock: %v", err)
		return func() {}
	}
	return release
}
