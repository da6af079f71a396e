package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rrabelo/bb2ado/internal/domain/commands"
	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// ValidateController handles the "validate" subcommand.
type ValidateController struct {
	command  commands.Validate
	prompter repositories.Prompter
}

// NewValidateController creates a new ValidateController.
func NewValidateController(
	command commands.Validate,
	prompter repositories.Prompter,
) *ValidateController {
	return &ValidateController{command: command, prompter: prompter}
}

// GetBind returns the Cobra command metadata for the validate controller.
func (it *ValidateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "validate",
		Short: "Compare commit counts between both platforms",
		Long: `For every repository of the workspace, mirror-clone both the Bitbucket and
the Azure DevOps copy, count all reachable commits on each side, and compare
the counts for exact equality. Outcomes are written to ` + commands.ValidationReportFile + `.

Note: equal counts do not prove equal histories; this is a completeness
check, not a ref-by-ref comparison.`,
	}
}

// Execute runs the validation workflow.
func (it *ValidateController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	creds, err := collectCredentials(cmd, it.prompter, true)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(ctx, creds)
	return err
}
