//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bb2ado.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSettings(t *testing.T) {
	t.Run("should parse source and destination sections", func(t *testing.T) {
		// given
		path := writeSettingsFile(t, `
source:
  workspace: acme
  username: ada
  app_secret: plain-secret
destination:
  org_url: https://dev.azure.com/acme
  project: Platform
  access_token: plain-token
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		creds := settings.Credentials()
		assert.Equal(t, "acme", creds.Source.Workspace)
		assert.Equal(t, "ada", creds.Source.Username)
		assert.Equal(t, "plain-secret", creds.Source.AppSecret)
		assert.Equal(t, "https://dev.azure.com/acme", creds.Destination.OrgURL)
		assert.Equal(t, "Platform", creds.Destination.Project)
		assert.Equal(t, "plain-token", creds.Destination.AccessToken)
	})

	t.Run("should expand environment variable references in secrets", func(t *testing.T) {
		// given
		t.Setenv("BB2ADO_TEST_SECRET", "from-env")
		path := writeSettingsFile(t, `
source:
  workspace: acme
  app_secret: ${BB2ADO_TEST_SECRET}
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "from-env", settings.Source.AppSecret)
	})

	t.Run("should expand an unset environment variable to empty", func(t *testing.T) {
		// given
		path := writeSettingsFile(t, `
source:
  app_secret: ${BB2ADO_TEST_UNSET_VAR}
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Empty(t, settings.Source.AppSecret)
	})

	t.Run("should read a secret from a file when the value is a path", func(t *testing.T) {
		// given
		secretPath := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(secretPath, []byte("file-secret\n"), 0o600))
		path := writeSettingsFile(t, `
destination:
  access_token: `+secretPath+`
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "file-secret", settings.Destination.AccessToken)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		// when
		settings, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
	})

	t.Run("should fail on malformed yaml", func(t *testing.T) {
		// given
		path := writeSettingsFile(t, "source: [not a mapping")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
	})
}

func TestCredentialsComplete(t *testing.T) {
	t.Parallel()

	t.Run("should report source credentials complete only when all fields are set", func(t *testing.T) {
		// given
		creds := entities.SourceCredentials{Workspace: "acme", Username: "ada", AppSecret: "s"}

		// then
		assert.True(t, creds.Complete())
		creds.AppSecret = ""
		assert.False(t, creds.Complete())
	})

	t.Run("should report destination credentials complete only when all fields are set", func(t *testing.T) {
		// given
		creds := entities.DestinationCredentials{
			OrgURL:      "https://dev.azure.com/acme",
			Project:     "Platform",
			AccessToken: "t",
		}

		// then
		assert.True(t, creds.Complete())
		creds.Project = ""
		assert.False(t, creds.Complete())
	})
}
