package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/bootstrap/internal/infrastructure/repositories"
)

// Check is the interface for the read-only status command.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.EntryStatus, error)
}

// CheckCommand queries every manifest requirement without installing anything.
type CheckCommand struct {
	executables repositories.ExecutableRepository
	manifests   *infraRepos.ManifestRegistry
	packages    repositories.PackageRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	executables repositories.ExecutableRepository,
	manifests *infraRepos.ManifestRegistry,
	packages repositories.PackageRepository,
) *CheckCommand {
	return &CheckCommand{
		executables: executables,
		manifests:   manifests,
		packages:    packages,
	}
}

// Execute returns one status per requirement entry, in manifest order.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.EntryStatus, error) {
	interpreter, err := resolveInterpreter(it.executables, settings)
	if err != nil {
		return nil, err
	}

	reader, err := it.manifests.Resolve(settings.ManifestFormat, settings.Manifest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrManifestUnreadable, err)
	}

	statuses := []entities.EntryStatus{}
	for entry, readErr := range reader.Entries(settings.Manifest, settings.CommentMarker) {
		if readErr != nil {
			return statuses, readErr
		}
		if entry.Skipped() {
			continue
		}

		if !markerApplies(ctx, it.packages, interpreter, entry) {
			statuses = append(statuses, entities.EntryStatus{Entry: entry, NotApplicable: true})
			continue
		}

		status := queryEntry(ctx, it.packages, interpreter, entry)
		statuses = append(statuses, entities.EntryStatus{
			Entry:    entry,
			Status:   status,
			Mismatch: status.Installed && versionMismatch(entry, status),
		})
	}

	return statuses, nil
}
