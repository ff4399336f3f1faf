package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// resolveInterpreter locates the configured interpreter or fails with
// ErrEnvironmentMissing.
func resolveInterpreter(
	executables repositories.ExecutableRepository,
	settings *entities.Settings,
) (string, error) {
	candidates := settings.InterpreterCandidates()

	path, err := executables.Locate(candidates...)
	if err != nil {
		return "", fmt.Errorf(
			"%w (tried %s): %w",
			entities.ErrEnvironmentMissing, strings.Join(candidates, ", "), err,
		)
	}

	logger.Debugf("Using interpreter %s", path)
	return path, nil
}

// queryEntry asks the package manager about an entry. A failing query is
// treated as absent so the install step gets a chance to fix it.
func queryEntry(
	ctx context.Context,
	packages repositories.PackageRepository,
	interpreter string,
	entry entities.Entry,
) entities.PackageStatus {
	status, err := packages.Query(ctx, interpreter, entry.Name)
	if err != nil {
		logger.Warnf("Failed to query %s: %v (treating as not installed)", entry.Name, err)
		return entities.PackageStatus{Installed: false}
	}
	return status
}

// markerApplies evaluates the entry's environment marker with the target
// interpreter. Entries without a marker always apply, and so does a marker
// that cannot be evaluated, leaving the decision to pip.
func markerApplies(
	ctx context.Context,
	packages repositories.PackageRepository,
	interpreter string,
	entry entities.Entry,
) bool {
	marker := entry.EnvironmentMarker()
	if marker == "" {
		return true
	}

	applies, err := packages.MarkerApplies(ctx, interpreter, marker)
	if err != nil {
		logger.Warnf("Failed to evaluate marker of %s: %v (checking it anyway)", entry.Name, err)
		return true
	}
	if !applies {
		logger.Debugf("Skipping %s: marker %q does not match this platform", entry.Name, marker)
	}
	return applies
}

// versionMismatch reports whether an installed version differs from the exact
// pin of the entry. Versions that are not comparable never mismatch.
func versionMismatch(entry entities.Entry, status entities.PackageStatus) bool {
	pinned := entry.PinnedVersion()
	if pinned == "" || status.Version == "" {
		return false
	}

	want, have := canonicalVersion(pinned), canonicalVersion(status.Version)
	if want == "" || have == "" {
		logger.Debugf(
			"Cannot compare %s versions %q and %q, skipping pin check",
			entry.Name, pinned, status.Version,
		)
		return false
	}

	return semver.Compare(want, have) != 0
}

// canonicalVersion maps "1.2" or "v1.2.3" onto canonical semver, or "" when
// the version is not semver-shaped (e.g. "2.0.0.post1").
func canonicalVersion(version string) string {
	v := "v" + strings.TrimPrefix(strings.TrimSpace(version), "v")
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}
