package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	logger "github.com/sirupsen/logrus"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// MigrationReportFile is the fixed migration report filename, overwritten on
// every run.
const MigrationReportFile = "migration_report.xlsx"

const destinationRemote = "azure"

// Migrate is the interface for the migrate workflow.
type Migrate interface {
	// Execute migrates every repository of the source workspace to the
	// destination project. A nil outcome with a nil error means the user
	// declined the confirmation before any mutating work began.
	Execute(ctx context.Context, creds entities.Credentials) (*entities.WorkflowOutcome, error)
}

// MigrateCommand mirror-clones every source repository, registers it on the
// destination, mirror-pushes it, and records one timed report row per
// repository.
type MigrateCommand struct {
	sources  repositories.SourceProviderFactory
	dests    repositories.DestinationProviderFactory
	git      repositories.GitClient
	writer   repositories.ReportWriter
	prompter repositories.Prompter
}

// NewMigrateCommand creates a new MigrateCommand.
func NewMigrateCommand(
	sources repositories.SourceProviderFactory,
	dests repositories.DestinationProviderFactory,
	git repositories.GitClient,
	writer repositories.ReportWriter,
	prompter repositories.Prompter,
) *MigrateCommand {
	return &MigrateCommand{
		sources:  sources,
		dests:    dests,
		git:      git,
		writer:   writer,
		prompter: prompter,
	}
}

// Execute runs the migration batch. The repository listing must succeed in
// full before any transfer starts; per-repository failures are accounted and
// never abort the batch.
func (it *MigrateCommand) Execute(
	ctx context.Context,
	creds entities.Credentials,
) (*entities.WorkflowOutcome, error) {
	source := it.sources(creds.Source)
	dest := it.dests(creds.Destination)

	repos, err := source.ListRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository list: %w", err)
	}
	logger.Infof("Found %d repositories in workspace %q", len(repos), creds.Source.Workspace)

	confirmed, confirmErr := it.prompter.Confirm(fmt.Sprintf(
		"Migrate %d repositories to project %q?", len(repos), creds.Destination.Project,
	))
	if confirmErr != nil {
		return nil, fmt.Errorf("confirmation prompt failed: %w", confirmErr)
	}
	if !confirmed {
		logger.Info("Migration declined, nothing was changed")
		return nil, nil
	}

	outcome := forEachRepository(repos, func(repo entities.Repository) (*entities.ReportRow, error) {
		start := time.Now()

		if transferErr := it.transfer(ctx, source, dest, repo); transferErr != nil {
			return entities.NewReportRow().
				Set("Repository", repo.Slug).
				Set("Status", statusFailed).
				Set("TimeTaken", notApplicable), transferErr
		}

		elapsed := int(time.Since(start).Round(time.Second).Seconds())
		return entities.NewReportRow().
			Set("Repository", repo.Slug).
			Set("Status", statusSuccess).
			Set("TimeTaken", fmt.Sprintf("%ds", elapsed)), nil
	})

	if writeErr := it.writer.Write(MigrationReportFile, outcome.Rows); writeErr != nil {
		return nil, fmt.Errorf("failed to write migration report: %w", writeErr)
	}

	logger.Infof(
		"Migration complete: %d passed, %d failed (report: %s)",
		outcome.Passed, outcome.Failed, MigrationReportFile,
	)
	return outcome, nil
}

// transfer performs the four-step mirror transfer of one repository. The
// scratch clone is removed on every path; a destination repository created
// before a later failure is intentionally left in place.
func (it *MigrateCommand) transfer(
	ctx context.Context,
	source repositories.SourceProvider,
	dest repositories.DestinationProvider,
	repo entities.Repository,
) error {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = fmt.Sprintf(" migrating %s...", repo.Slug)
	sp.Start()
	defer sp.Stop()

	dir := repo.Slug + ".git"

	if err := it.git.CloneMirror(ctx, source.CloneURL(repo.Slug), dir); err != nil {
		return fmt.Errorf("mirror clone failed: %w", err)
	}
	defer func() {
		_ = it.git.RemoveClone(dir)
	}()

	if err := dest.CreateRepository(ctx, repo.Slug); err != nil {
		return err
	}

	if err := it.git.AddRemote(ctx, dir, destinationRemote, dest.PushURL(repo.Slug)); err != nil {
		return fmt.Errorf("failed to add destination remote: %w", err)
	}

	if err := it.git.PushMirror(ctx, dir, destinationRemote); err != nil {
		return fmt.Errorf("mirror push failed: %w", err)
	}

	return nil
}
