package python

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// markerNotMatched is the exit code of markerScript for a marker that
// evaluates to false. Python itself exits 1 on an uncaught exception.
const markerNotMatched = 3

// markerScript evaluates sys.argv[1] with the packaging library, falling back
// to the copy vendored inside pip.
const markerScript = `import sys
try:
    from packaging.markers import Marker
except ImportError:
    from pip._vendor.packaging.markers import Marker
sys.exit(0 if Marker(sys.argv[1]).evaluate() else 3)
`

// PipPackageRepository queries and installs packages through "<interpreter> -m pip".
type PipPackageRepository struct {
	extraInstallArgs []string
}

// NewPipPackageRepository creates a new pip-backed package repository.
func NewPipPackageRepository() repositories.PackageRepository {
	return &PipPackageRepository{
		extraInstallArgs: []string{"--disable-pip-version-check"},
	}
}

// Query runs "pip show <name>". A non-zero exit means the package is absent;
// only a failure to run pip at all is returned as an error.
func (r *PipPackageRepository) Query(
	ctx context.Context,
	interpreter, name string,
) (entities.PackageStatus, error) {
	cmd := exec.CommandContext(ctx, interpreter, "-m", "pip", "show", name)

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debugf("[pip] %s not installed (exit code %d)", name, exitErr.ExitCode())
			return entities.PackageStatus{Installed: false}, nil
		}
		return entities.PackageStatus{}, fmt.Errorf("pip show %s: %w", name, err)
	}

	return entities.PackageStatus{
		Installed: true,
		Version:   parseShowVersion(string(output)),
	}, nil
}

// Install runs "pip install <requirement>" and includes pip's output in the
// returned error when it fails.
func (r *PipPackageRepository) Install(
	ctx context.Context,
	interpreter, requirement string,
) error {
	args := append([]string{"-m", "pip", "install"}, r.extraInstallArgs...)
	args = append(args, requirement)
	cmd := exec.CommandContext(ctx, interpreter, args...)

	output, err := cmd.CombinedOutput()
	outputStr := string(output)
	logger.Debugf("[pip] install %s output:\n%s", requirement, outputStr)

	if err != nil {
		return fmt.Errorf("pip install %s: %w\nOutput:\n%s", requirement, err, outputStr)
	}
	return nil
}

// parseShowVersion extracts the "Version:" field of "pip show" output.
func parseShowVersion(output string) string {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if found && strings.EqualFold(strings.TrimSpace(key), "version") {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// MarkerApplies runs markerScript with the interpreter so the marker is
// evaluated against the environment pip will install into.
func (r *PipPackageRepository) MarkerApplies(
	ctx context.Context,
	interpreter, marker string,
) (bool, error) {
	cmd := exec.CommandContext(ctx, interpreter, "-c", markerScript, marker)

	output, err := cmd.CombinedOutput()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == markerNotMatched {
		return false, nil
	}
	return false, fmt.Errorf("evaluate marker %q: %w\nOutput:\n%s", marker, err, string(output))
}
