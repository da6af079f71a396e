package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rrabelo/bb2ado/internal/domain/commands"
	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// AnalyzeProjectsController handles the "analyze projects" subcommand.
type AnalyzeProjectsController struct {
	command  commands.AnalyzeProjects
	prompter repositories.Prompter
}

// NewAnalyzeProjectsController creates a new AnalyzeProjectsController.
func NewAnalyzeProjectsController(
	command commands.AnalyzeProjects,
	prompter repositories.Prompter,
) *AnalyzeProjectsController {
	return &AnalyzeProjectsController{command: command, prompter: prompter}
}

// GetBind returns the Cobra command metadata for the project analysis.
func (it *AnalyzeProjectsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:    "projects",
		Parent: "analyze",
		Short:  "Report the repository count of every project",
		Long: `List every project of the workspace and count the repositories assigned to
each project key. Read-only; only Bitbucket credentials are needed. The
report is written to ` + commands.ProjectAnalysisReportFile + `.`,
	}
}

// Execute runs the project analysis workflow.
func (it *AnalyzeProjectsController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	creds, err := collectCredentials(cmd, it.prompter, false)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(ctx, creds.Source)
	return err
}
