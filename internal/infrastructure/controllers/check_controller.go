package controllers

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bootstrap/internal/domain/commands"
	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// CheckController handles the "check" subcommand.
type CheckController struct {
	command commands.Check
	console repositories.ConsoleRepository
}

// NewCheckController creates a new CheckController.
func NewCheckController(
	command commands.Check,
	console repositories.ConsoleRepository,
) *CheckController {
	return &CheckController{command: command, console: console}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check",
		Short: "Show which manifest dependencies are installed",
		Long: `Query the package manager for every dependency in the manifest
and print a table with the result. Nothing is installed.`,
	}
}

// Execute prints the status table to the command's output.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return reportFailure(it.console, false, err)
	}

	statuses, err := it.command.Execute(ctx, settings)
	if err != nil {
		return reportFailure(it.console, false, err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderStatusTable(statuses))
	return nil
}

// renderStatusTable formats entry statuses as a rounded table.
func renderStatusTable(statuses []entities.EntryStatus) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Line", "Name", "Constraint", "Status", "Installed"})

	missing := 0
	for _, s := range statuses {
		state := "installed"
		switch {
		case s.NotApplicable:
			state = "not applicable"
		case !s.Status.Installed:
			state = "missing"
			missing++
		case s.Mismatch:
			state = "version mismatch"
		}
		tw.AppendRow(table.Row{s.Entry.Line, s.Entry.Name, s.Entry.Constraint, state, s.Status.Version})
	}

	tw.AppendFooter(table.Row{"", "", "", "missing", fmt.Sprintf("%d/%d", missing, len(statuses))})
	return tw.Render()
}
