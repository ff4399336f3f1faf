package repositories

import (
	"go.uber.org/dig"

	pyprojectRepo "github.com/rios0rios0/bootstrap/internal/infrastructure/repositories/pyproject"
	pyRepo "github.com/rios0rios0/bootstrap/internal/infrastructure/repositories/python"
	reqRepo "github.com/rios0rios0/bootstrap/internal/infrastructure/repositories/requirements"
	sysRepo "github.com/rios0rios0/bootstrap/internal/infrastructure/repositories/system"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register manifest registry; the requirements reader goes first and
	// doubles as the fallback format
	if err := container.Provide(func() *ManifestRegistry {
		reg := NewManifestRegistry()
		reg.Register(reqRepo.NewRequirementsManifestRepository())
		reg.Register(pyprojectRepo.NewPyprojectManifestRepository())
		return reg
	}); err != nil {
		return err
	}

	constructors := []any{
		sysRepo.NewPathExecutableRepository,
		sysRepo.NewAttachedProcessRepository,
		sysRepo.NewTerminalConsoleRepository,
		sysRepo.NewFileLockRepository,
		pyRepo.NewPipPackageRepository,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}
