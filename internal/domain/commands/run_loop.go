package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
)

const (
	statusSuccess = "Success"
	statusFailed  = "Failed"
	notApplicable = "N/A"
)

// forEachRepository applies process to every repository in fetch order,
// isolating per-item failures: a failing item is logged, accounted, and the
// loop continues. Every repository yields exactly one report row.
func forEachRepository(
	repos []entities.Repository,
	process func(entities.Repository) (*entities.ReportRow, error),
) *entities.WorkflowOutcome {
	outcome := &entities.WorkflowOutcome{}

	for i, repo := range repos {
		logger.Infof("[%d/%d] Processing repository %q", i+1, len(repos), repo.Slug)

		row, err := process(repo)
		if err != nil {
			logger.Errorf("Repository %q failed: %v", repo.Slug, err)
			outcome.Append(row, false)
			continue
		}

		logger.Infof("Repository %q done", repo.Slug)
		outcome.Append(row, true)
	}

	return outcome
}
