//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
)

func TestReportRow(t *testing.T) {
	t.Parallel()

	t.Run("should keep columns in first-insertion order", func(t *testing.T) {
		// given
		row := entities.NewReportRow().
			Set("Repository", "alpha").
			Set("Status", "Success").
			Set("TimeTaken", "3s")

		// when
		row.Set("Status", "Failed")

		// then
		assert.Equal(t, []string{"Repository", "Status", "TimeTaken"}, row.Keys())
		assert.Equal(t, "Failed", row.Value("Status"))
	})

	t.Run("should return nil for a column that was never set", func(t *testing.T) {
		// given
		row := entities.NewReportRow().Set("Repository", "alpha")

		// then
		assert.Nil(t, row.Value("Status"))
	})
}

func TestWorkflowOutcomeAppend(t *testing.T) {
	t.Parallel()

	t.Run("should count passes and failures separately", func(t *testing.T) {
		// given
		outcome := &entities.WorkflowOutcome{}

		// when
		outcome.Append(entities.NewReportRow().Set("Repository", "alpha"), true)
		outcome.Append(entities.NewReportRow().Set("Repository", "beta"), false)
		outcome.Append(entities.NewReportRow().Set("Repository", "gamma"), true)

		// then
		assert.Equal(t, 2, outcome.Passed)
		assert.Equal(t, 1, outcome.Failed)
		assert.Len(t, outcome.Rows, 3)
	})
}
