package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// RepoAnalysisReportFile is the fixed repository-analysis report filename.
const RepoAnalysisReportFile = "bitbucket_analysis.xlsx"

const membersErrorMarker = "Error fetching members"

// AnalyzeRepos is the interface for the repository analysis workflow.
type AnalyzeRepos interface {
	Execute(ctx context.Context, creds entities.SourceCredentials) (*entities.WorkflowOutcome, error)
}

// AnalyzeReposCommand builds one report row per repository with its
// collaborator list and whether a CI pipeline is configured. Read-only, no
// destination credentials required.
type AnalyzeReposCommand struct {
	sources repositories.SourceProviderFactory
	writer  repositories.ReportWriter
}

// NewAnalyzeReposCommand creates a new AnalyzeReposCommand.
func NewAnalyzeReposCommand(
	sources repositories.SourceProviderFactory,
	writer repositories.ReportWriter,
) *AnalyzeReposCommand {
	return &AnalyzeReposCommand{sources: sources, writer: writer}
}

// Execute runs the analysis. A failing members fetch marks the affected cell
// and continues; a failing pipeline probe simply reads as "No".
func (it *AnalyzeReposCommand) Execute(
	ctx context.Context,
	creds entities.SourceCredentials,
) (*entities.WorkflowOutcome, error) {
	source := it.sources(creds)

	repos, err := source.ListRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository list: %w", err)
	}
	logger.Infof("Analyzing %d repositories", len(repos))

	outcome := forEachRepository(repos, func(repo entities.Repository) (*entities.ReportRow, error) {
		row := entities.NewReportRow().Set("Repository", repo.Slug)

		members, membersErr := source.ListMembers(ctx, repo.Slug)
		if membersErr != nil {
			row.Set("Members", membersErrorMarker)
		} else {
			row.Set("Members", strings.Join(members, ", "))
		}

		pipeline := "No"
		if source.HasPipeline(ctx, repo.Slug) {
			pipeline = "Yes"
		}
		row.Set("Pipeline", pipeline)

		return row, membersErr
	})

	if writeErr := it.writer.Write(RepoAnalysisReportFile, outcome.Rows); writeErr != nil {
		return nil, fmt.Errorf("failed to write analysis report: %w", writeErr)
	}

	logger.Infof("Repository analysis written to %s", RepoAnalysisReportFile)
	return outcome, nil
}
