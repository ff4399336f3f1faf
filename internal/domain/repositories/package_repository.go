package repositories

import (
	"context"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
)

// PackageRepository abstracts the package manager of the interpreter.
type PackageRepository interface {
	// Query reports whether the named package is installed for the interpreter.
	Query(ctx context.Context, interpreter, name string) (entities.PackageStatus, error)

	// Install installs a single requirement for the interpreter.
	Install(ctx context.Context, interpreter, requirement string) error

	// MarkerApplies evaluates a PEP 508 environment marker for the interpreter.
	MarkerApplies(ctx context.Context, interpreter, marker string) (bool, error)
}
