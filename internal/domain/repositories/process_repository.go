package repositories

import (
	"context"
)

// ProcessRepository runs a child process attached to the launcher's terminal
// and blocks until it exits.
type ProcessRepository interface {
	Run(ctx context.Context, executable string, args []string) error
}
