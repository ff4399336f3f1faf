package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// AttachedProcessRepository runs children with the launcher's stdio so the
// application owns the terminal until it exits.
type AttachedProcessRepository struct{}

// NewAttachedProcessRepository creates a new process runner.
func NewAttachedProcessRepository() repositories.ProcessRepository {
	return &AttachedProcessRepository{}
}

func (r *AttachedProcessRepository) Run(ctx context.Context, executable string, args []string) error {
	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debugf("Running %s %v", executable, args)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s exited: %w", executable, err)
	}
	return nil
}
