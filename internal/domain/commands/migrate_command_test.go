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

type migrateFixture struct {
	source   *doubles.SpySourceProvider
	dest     *doubles.SpyDestinationProvider
	git      *doubles.SpyGitClient
	writer   *doubles.SpyReportWriter
	prompter *doubles.StubPrompter
	command  *commands.MigrateCommand
}

func newMigrateFixture(repos []entities.Repository) *migrateFixture {
	f := &migrateFixture{
		source:   &doubles.SpySourceProvider{Repositories: repos},
		dest:     &doubles.SpyDestinationProvider{},
		git:      &doubles.SpyGitClient{},
		writer:   &doubles.SpyReportWriter{},
		prompter: &doubles.StubPrompter{ConfirmResult: true},
	}
	f.command = commands.NewMigrateCommand(
		func(_ entities.SourceCredentials) repositories.SourceProvider { return f.source },
		func(_ entities.DestinationCredentials) repositories.DestinationProvider { return f.dest },
		f.git,
		f.writer,
		f.prompter,
	)
	return f
}

func testCredentials() entities.Credentials {
	return entities.Credentials{
		Source: entities.SourceCredentials{
			Workspace: "acme",
			Username:  "bot",
			AppSecret: "secret",
		},
		Destination: entities.DestinationCredentials{
			OrgURL:      "https://dev.azure.com/acme",
			Project:     "Target",
			AccessToken: "pat",
		},
	}
}

func TestMigrateCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should migrate every repository and record timed success rows", func(t *testing.T) {
		// given
		repos := []entities.Repository{
			entitybuilders.NewRepositoryBuilder().WithSlug("alpha").BuildRepository(),
			entitybuilders.NewRepositoryBuilder().WithSlug("beta").BuildRepository(),
		}
		f := newMigrateFixture(repos)

		// when
		outcome, err := f.command.Execute(context.Background(), testCredentials())

		// then
		require.NoError(t, err)
		require.NotNil(t, outcome)
		assert.Equal(t, 2, outcome.Passed)
		assert.Equal(t, 0, outcome.Failed)

		require.Len(t, outcome.Rows, 2)
		assert.Equal(t, "alpha", outcome.Rows[0].Value("Repository"))
		assert.Equal(t, "beta", outcome.Rows[1].Value("Repository"))
		for _, row := range outcome.Rows {
			assert.Equal(t, "Success", row.Value("Status"))
			assert.NotEqual(t, "N/A", row.Value("TimeTaken"))
		}

		assert.Equal(t, []string{"alpha", "beta"}, f.dest.CreatedNames)
		assert.Equal(t, commands.MigrationReportFile, f.writer.Filename)
		assert.ElementsMatch(t, []string{"alpha.git", "beta.git"}, f.git.RemovedDirs)
	})

	t.Run("should isolate a destination creation conflict to its own row", func(t *testing.T) {
		// given
		repos := []entities.Repository{
			entitybuilders.NewRepositoryBuilder().WithSlug("alpha").BuildRepository(),
			entitybuilders.NewRepositoryBuilder().WithSlug("beta").BuildRepository(),
			entitybuilders.NewRepositoryBuilder().WithSlug("gamma").BuildRepository(),
		}
		f := newMigrateFixture(repos)
		f.dest.CreateErr = map[string]error{
			"beta": errors.New("repository already exists on the destination (status 409)"),
		}

		// when
		outcome, err := f.command.Execute(context.Background(), testCredentials())

		// then
		require.NoError(t, err)
		require.NotNil(t, outcome)
		assert.Equal(t, 2, outcome.Passed)
		assert.Equal(t, 1, outcome.Failed)

		require.Len(t, outcome.Rows, 3)
		assert.Equal(t, "Success", outcome.Rows[0].Value("Status"))
		assert.Equal(t, "Failed", outcome.Rows[1].Value("Status"))
		assert.Equal(t, "N/A", outcome.Rows[1].Value("TimeTaken"))
		assert.Equal(t, "Success", outcome.Rows[2].Value("Status"))

		// the failed repository's scratch clone is still cleaned up
		assert.Contains(t, f.git.RemovedDirs, "beta.git")
		assert.Equal(t, 1, f.writer.Writes)
	})

	t.Run("should skip the destination when the clone already fails", func(t *testing.T) {
		// given
		repos := []entities.Repository{
			entitybuilders.NewRepositoryBuilder().WithSlug("alpha").BuildRepository(),
			entitybuilders.NewRepositoryBuilder().WithSlug("beta").BuildRepository(),
		}
		f := newMigrateFixture(repos)
		f.git.CloneErr = map[string]error{"alpha.git": errors.New("authentication failed")}

		// when
		outcome, err := f.command.Execute(context.Background(), testCredentials())

		// then
		require.NoError(t, err)
		require.NotNil(t, outcome)
		assert.Equal(t, "Failed", outcome.Rows[0].Value("Status"))
		assert.Equal(t, "Success", outcome.Rows[1].Value("Status"))
		assert.Equal(t, []string{"beta"}, f.dest.CreatedNames)
	})

	t.Run("should stop before any mutating work when the user declines", func(t *testing.T) {
		// given
		repos := []entities.Repository{
			entitybuilders.NewRepositoryBuilder().WithSlug("alpha").BuildRepository(),
		}
		f := newMigrateFixture(repos)
		f.prompter.ConfirmResult = false

		// when
		outcome, err := f.command.Execute(context.Background(), testCredentials())

		// then
		require.NoError(t, err)
		assert.Nil(t, outcome)
		assert.Empty(t, f.git.Clones)
		assert.Empty(t, f.dest.CreatedNames)
		assert.Equal(t, 0, f.writer.Writes)
	})

	t.Run("should fail the whole run when the listing fetch fails", func(t *testing.T) {
		// given
		f := newMigrateFixture(nil)
		f.source.ListReposErr = errors.New("unexpected status 401")

		// when
		outcome, err := f.command.Execute(context.Background(), testCredentials())

		// then
		require.Error(t, err)
		assert.Nil(t, outcome)
		assert.Empty(t, f.prompter.ConfirmMessages)
		assert.Equal(t, 0, f.writer.Writes)
	})
}
