package controllers

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// resolveSettings loads the settings file named by --config, falling back to
// the default locations. A missing file is not an error; every credential is
// then collected interactively.
func resolveSettings(cmd *cobra.Command) (*entities.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		found, err := entities.FindSettingsFile()
		if err != nil {
			if errors.Is(err, entities.ErrSettingsNotFound) {
				return &entities.Settings{}, nil
			}
			return nil, err
		}
		path = found
	}

	logger.Infof("Using settings file: %s", path)
	return entities.NewSettings(path)
}

// collectCredentials resolves settings-file defaults and prompts for
// whatever is still missing. Destination credentials are only collected for
// workflows that touch the destination platform.
func collectCredentials(
	cmd *cobra.Command,
	prompter repositories.Prompter,
	needDestination bool,
) (entities.Credentials, error) {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return entities.Credentials{}, fmt.Errorf("failed to load settings: %w", err)
	}

	creds := settings.Credentials()

	creds.Source, err = prompter.SourceCredentials(creds.Source)
	if err != nil {
		return entities.Credentials{}, fmt.Errorf("failed to collect source credentials: %w", err)
	}
	if !creds.Source.Complete() {
		return entities.Credentials{}, errors.New("incomplete source credentials")
	}

	if needDestination {
		creds.Destination, err = prompter.DestinationCredentials(creds.Destination)
		if err != nil {
			return entities.Credentials{}, fmt.Errorf("failed to collect destination credentials: %w", err)
		}
		if !creds.Destination.Complete() {
			return entities.Credentials{}, errors.New("incomplete destination credentials")
		}
	}

	return creds, nil
}
