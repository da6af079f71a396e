//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrabelo/bb2ado/internal/domain/commands"
	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
	"github.com/rrabelo/bb2ado/test/domain/entitybuilders"
	doubles "github.com/rrabelo/bb2ado/test/infrastructure/repositorydoubles"
)

type analyzeReposFixture struct {
	source  *doubles.SpySourceProvider
	writer  *doubles.SpyReportWriter
	command *commands.AnalyzeReposCommand
}

func newAnalyzeReposFixture(repos []entities.Repository) *analyzeReposFixture {
	f := &analyzeReposFixture{
		source: &doubles.SpySourceProvider{Repositories: repos},
		writer: &doubles.SpyReportWriter{},
	}
	f.command = commands.NewAnalyzeReposCommand(
		func(_ entities.SourceCredentials) repositories.SourceProvider { return f.source },
		f.writer,
	)
	return f
}

func TestAnalyzeReposCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should report members and pipeline presence per repository", func(t *testing.T) {
		// given
		repos := []entities.Repository{
			entitybuilders.NewRepositoryBuilder().WithSlug("alpha").BuildRepository(),
			entitybuilders.NewRepositoryBuilder().WithSlug("beta").BuildRepository(),
		}
		f := newAnalyzeReposFixture(repos)
		f.source.Members = map[string][]string{
			"alpha": {"Ada Lovelace (admin)", "Grace Hopper (write)"},
			"beta":  {},
		}
		f.source.Pipelines = map[string]bool{"alpha": true}

		// when
		outcome, err := f.command.Execute(context.Background(), testCredentials().Source)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, outcome.Passed)
		require.Len(t, outcome.Rows, 2)
		assert.Equal(t, []string{"Repository", "Members", "Pipeline"}, outcome.Rows[0].Keys())
		assert.Equal(t, "Ada Lovelace (admin), Grace Hopper (write)", outcome.Rows[0].Value("Members"))
		assert.Equal(t, "Yes", outcome.Rows[0].Value("Pipeline"))
		assert.Equal(t, "", outcome.Rows[1].Value("Members"))
		assert.Equal(t, "No", outcome.Rows[1].Value("Pipeline"))
		assert.Equal(t, commands.RepoAnalysisReportFile, f.writer.Filename)
	})

	t.Run("should mark the members cell and keep going when the fetch fails", func(t *testing.T) {
		// given
		repos := []entities.Repository{
			entitybuilders.NewRepositoryBuilder().WithSlug("alpha").BuildRepository(),
			entitybuilders.NewRepositoryBuilder().WithSlug("beta").BuildRepository(),
		}
		f := newAnalyzeReposFixture(repos)
		f.source.MembersErr = map[string]error{"alpha": errors.New("unexpected status 403")}
		f.source.Members = map[string][]string{"beta": {"Ada Lovelace (read)"}}

		// when
		outcome, err := f.command.Execute(context.Background(), testCredentials().Source)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, outcome.Passed)
		assert.Equal(t, 1, outcome.Failed)
		assert.Equal(t, "Error fetching members", outcome.Rows[0].Value("Members"))
		assert.Equal(t, "Ada Lovelace (read)", outcome.Rows[1].Value("Members"))
		assert.Equal(t, []string{"alpha", "beta"}, f.source.RequestedMemberSlugs)

		// the failed row still reaches the report
		assert.Equal(t, 1, f.writer.Writes)
		require.Len(t, f.writer.Rows, 2)
	})

	t.Run("should fail the whole run when the listing fetch fails", func(t *testing.T) {
		// given
		f := newAnalyzeReposFixture(nil)
		f.source.ListReposErr = errors.New("unexpected status 503")

		// when
		outcome, err := f.command.Execute(context.Background(), testCredentials().Source)

		// then
		require.Error(t, err)
		assert.Nil(t, outcome)
		assert.Equal(t, 0, f.writer.Writes)
	})

	t.Run("should write an empty report for an empty workspace", func(t *testing.T) {
		// given
		f := newAnalyzeReposFixture(nil)

		// when
		outcome, err := f.command.Execute(context.Background(), testCredentials().Source)

		// then
		require.NoError(t, err)
		assert.Empty(t, outcome.Rows)
		assert.Equal(t, 1, f.writer.Writes)
	})
}
