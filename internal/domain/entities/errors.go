package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrEnvironmentMissing is returned when no interpreter resolves on the search path.
	ErrEnvironmentMissing = errors.New("interpreter not found on PATH")

	// ErrInstallFailure matches every InstallFailureError through errors.Is.
	ErrInstallFailure = errors.New("dependency installation failed")

	// ErrManifestUnreadable is returned when the manifest cannot be opened or decoded.
	ErrManifestUnreadable = errors.New("manifest unreadable")
)

// InstallFailureError identifies the manifest entry that failed to install.
type InstallFailureError struct {
	Entry Entry
	Err   error
}

func (e *InstallFailureError) Error() string {
	return fmt.Sprintf(
		"failed to install %q (manifest line %d): %v",
		e.Entry.Requirement(), e.Entry.Line, e.Err,
	)
}

func (e *InstallFailureError) Unwrap() error { return e.Err }

func (e *InstallFailureError) Is(target error) bool {
	return target == ErrInstallFailure
}
