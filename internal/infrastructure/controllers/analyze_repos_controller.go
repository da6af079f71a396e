package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rrabelo/bb2ado/internal/domain/commands"
	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// AnalyzeReposController handles the "analyze repos" subcommand.
type AnalyzeReposController struct {
	command  commands.AnalyzeRepos
	prompter repositories.Prompter
}

// NewAnalyzeReposController creates a new AnalyzeReposController.
func NewAnalyzeReposController(
	command commands.AnalyzeRepos,
	prompter repositories.Prompter,
) *AnalyzeReposController {
	return &AnalyzeReposController{command: command, prompter: prompter}
}

// GetBind returns the Cobra command metadata for the repository analysis.
func (it *AnalyzeReposController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:    "repos",
		Parent: "analyze",
		Short:  "Report collaborators and pipeline presence per repository",
		Long: `For every repository of the workspace, list its collaborators with their
permission level and probe whether a CI pipeline is configured. Read-only;
only Bitbucket credentials are needed. The report is written to
` + commands.RepoAnalysisReportFile + `.`,
	}
}

// Execute runs the repository analysis workflow.
func (it *AnalyzeReposController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	creds, err := collectCredentials(cmd, it.prompter, false)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(ctx, creds.Source)
	return err
}
