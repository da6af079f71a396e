package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// ValidationReportFile is the fixed validation report filename.
const ValidationReportFile = "validation_report.xlsx"

// Validate is the interface for the validate workflow.
type Validate interface {
	Execute(ctx context.Context, creds entities.Credentials) (*entities.WorkflowOutcome, error)
}

// ValidateCommand compares the total reachable commit count of each
// repository on both platforms. Counts are compared for exact equality only;
// two divergent histories of equal length pass undetected.
type ValidateCommand struct {
	sources repositories.SourceProviderFactory
	dests   repositories.DestinationProviderFactory
	git     repositories.GitClient
	writer  repositories.ReportWriter
}

// NewValidateCommand creates a new ValidateCommand.
func NewValidateCommand(
	sources repositories.SourceProviderFactory,
	dests repositories.DestinationProviderFactory,
	git repositories.GitClient,
	writer repositories.ReportWriter,
) *ValidateCommand {
	return &ValidateCommand{
		sources: sources,
		dests:   dests,
		git:     git,
		writer:  writer,
	}
}

// Execute runs the validation batch. Per-repository clone or counting
// failures are accounted and never abort the batch.
func (it *ValidateCommand) Execute(
	ctx context.Context,
	creds entities.Credentials,
) (*entities.WorkflowOutcome, error) {
	source := it.sources(creds.Source)
	dest := it.dests(creds.Destination)

	repos, err := source.ListRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository list: %w", err)
	}
	logger.Infof("Validating %d repositories", len(repos))

	outcome := forEachRepository(repos, func(repo entities.Repository) (*entities.ReportRow, error) {
		row := entities.NewReportRow().Set("Repository", repo.Slug)

		if validateErr := it.validate(ctx, source, dest, repo); validateErr != nil {
			return row.Set("Status", statusFailed), validateErr
		}
		return row.Set("Status", statusSuccess), nil
	})

	if writeErr := it.writer.Write(ValidationReportFile, outcome.Rows); writeErr != nil {
		return nil, fmt.Errorf("failed to write validation report: %w", writeErr)
	}

	logger.Infof(
		"Validation complete: %d passed, %d failed (report: %s)",
		outcome.Passed, outcome.Failed, ValidationReportFile,
	)
	return outcome, nil
}

// validate mirror-clones both sides of one repository into distinct scratch
// paths, counts all reachable commits on each, and compares. Both clones are
// removed regardless of outcome.
func (it *ValidateCommand) validate(
	ctx context.Context,
	source repositories.SourceProvider,
	dest repositories.DestinationProvider,
	repo entities.Repository,
) error {
	srcDir := "src-" + repo.Slug + ".git"
	dstDir := "dst-" + repo.Slug + ".git"

	srcCount, err := it.countClone(ctx, source.CloneURL(repo.Slug), srcDir)
	if err != nil {
		return fmt.Errorf("source side: %w", err)
	}

	dstCount, err := it.countClone(ctx, dest.PushURL(repo.Slug), dstDir)
	if err != nil {
		return fmt.Errorf("destination side: %w", err)
	}

	if srcCount != dstCount {
		return fmt.Errorf("commit count mismatch: source has %d, destination has %d", srcCount, dstCount)
	}

	logger.Debugf("Repository %q: %d commits on both sides", repo.Slug, srcCount)
	return nil
}

func (it *ValidateCommand) countClone(ctx context.Context, url, dir string) (int, error) {
	if err := it.git.CloneMirror(ctx, url, dir); err != nil {
		return 0, fmt.Errorf("mirror clone failed: %w", err)
	}
	defer func() {
		_ = it.git.RemoveClone(dir)
	}()

	count, err := it.git.CountCommits(dir)
	if err != nil {
		return 0, fmt.Errorf("commit counting failed: %w", err)
	}
	return count, nil
}
