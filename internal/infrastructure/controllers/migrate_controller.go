package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rrabelo/bb2ado/internal/domain/commands"
	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// MigrateController handles the "migrate" subcommand.
type MigrateController struct {
	command  commands.Migrate
	prompter repositories.Prompter
}

// NewMigrateController creates a new MigrateController.
func NewMigrateController(
	command commands.Migrate,
	prompter repositories.Prompter,
) *MigrateController {
	return &MigrateController{command: command, prompter: prompter}
}

// GetBind returns the Cobra command metadata for the migrate controller.
func (it *MigrateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "migrate",
		Short: "Mirror-migrate every workspace repository to Azure DevOps",
		Long: `Fetch the full repository list of the Bitbucket workspace, then for each
repository: mirror-clone it, create a same-named repository on the Azure
DevOps project, mirror-push all refs and tags, and remove the local clone.

One repository's failure never aborts the batch; per-repository outcomes
are written to ` + commands.MigrationReportFile + `.`,
	}
}

// Execute runs the migration workflow. A failing repository listing is
// fatal; per-repository failures only show up in the report.
func (it *MigrateController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	creds, err := collectCredentials(cmd, it.prompter, true)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(ctx, creds)
	return err
}
