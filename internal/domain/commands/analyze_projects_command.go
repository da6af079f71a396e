package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// ProjectAnalysisReportFile is the fixed project-analysis report filename.
const ProjectAnalysisReportFile = "bitbucket_projects_analysis.xlsx"

const repoCountErrorMarker = "Error"

// AnalyzeProjects is the interface for the project analysis workflow.
type AnalyzeProjects interface {
	Execute(ctx context.Context, creds entities.SourceCredentials) (*entities.WorkflowOutcome, error)
}

// AnalyzeProjectsCommand reports the repository count of every project in
// the workspace. Read-only, no destination credentials required.
type AnalyzeProjectsCommand struct {
	sources repositories.SourceProviderFactory
	writer  repositories.ReportWriter
}

// NewAnalyzeProjectsCommand creates a new AnalyzeProjectsCommand.
func NewAnalyzeProjectsCommand(
	sources repositories.SourceProviderFactory,
	writer repositories.ReportWriter,
) *AnalyzeProjectsCommand {
	return &AnalyzeProjectsCommand{sources: sources, writer: writer}
}

// Execute runs the analysis. A failing per-project repository fetch marks
// the count cell and continues.
func (it *AnalyzeProjectsCommand) Execute(
	ctx context.Context,
	creds entities.SourceCredentials,
) (*entities.WorkflowOutcome, error) {
	source := it.sources(creds)

	projects, err := source.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project list: %w", err)
	}
	logger.Infof("Analyzing %d projects", len(projects))

	outcome := &entities.WorkflowOutcome{}
	for i, project := range projects {
		logger.Infof("[%d/%d] Processing project %q", i+1, len(projects), project.Key)

		row := entities.NewReportRow().
			Set("ProjectName", project.Name).
			Set("ProjectCode", project.Key)

		repos, reposErr := source.ListProjectRepositories(ctx, project.Key)
		if reposErr != nil {
			logger.Errorf("Project %q failed: %v", project.Key, reposErr)
			outcome.Append(row.Set("RepoCount", repoCountErrorMarker), false)
			continue
		}

		outcome.Append(row.Set("RepoCount", len(repos)), true)
	}

	if writeErr := it.writer.Write(ProjectAnalysisReportFile, outcome.Rows); writeErr != nil {
		return nil, fmt.Errorf("failed to write analysis report: %w", writeErr)
	}

	logger.Infof("Project analysis written to %s", ProjectAnalysisReportFile)
	return outcome, nil
}
