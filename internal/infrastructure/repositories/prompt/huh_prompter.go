// Package prompt implements the Prompter port with interactive terminal
// forms. Secret values are masked on input.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// Prompter collects credentials and confirmations via huh forms.
type Prompter struct{}

var _ repositories.Prompter = (*Prompter)(nil)

// NewPrompter creates a terminal prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// SourceCredentials prompts for any empty Bitbucket credential field.
// Fields already set (from the settings file) are not asked again.
func (p *Prompter) SourceCredentials(
	existing entities.SourceCredentials,
) (entities.SourceCredentials, error) {
	creds := existing

	var fields []huh.Field
	if creds.Workspace == "" {
		fields = append(fields, huh.NewInput().
			Title("Bitbucket workspace").
			Value(&creds.Workspace))
	}
	if creds.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("Bitbucket username").
			Value(&creds.Username))
	}
	if creds.AppSecret == "" {
		fields = append(fields, huh.NewInput().
			Title("Bitbucket app password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.AppSecret))
	}

	if err := runForm(fields); err != nil {
		return entities.SourceCredentials{}, err
	}
	return creds, nil
}

// DestinationCredentials prompts for any empty Azure DevOps credential field.
func (p *Prompter) DestinationCredentials(
	existing entities.DestinationCredentials,
) (entities.DestinationCredentials, error) {
	creds := existing

	var fields []huh.Field
	if creds.OrgURL == "" {
		fields = append(fields, huh.NewInput().
			Title("Azure DevOps organization URL").
			Placeholder("https://dev.azure.com/my-org").
			Value(&creds.OrgURL))
	}
	if creds.Project == "" {
		fields = append(fields, huh.NewInput().
			Title("Azure DevOps project").
			Value(&creds.Project))
	}
	if creds.AccessToken == "" {
		fields = append(fields, huh.NewInput().
			Title("Azure DevOps personal access token").
			EchoMode(huh.EchoModePassword).
			Value(&creds.AccessToken))
	}

	if err := runForm(fields); err != nil {
		return entities.DestinationCredentials{}, err
	}
	return creds, nil
}

// Confirm asks a yes/no question. Aborting the prompt counts as declining.
func (p *Prompter) Confirm(message string) (bool, error) {
	confirmed := false

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	return confirmed, nil
}

func runForm(fields []huh.Field) error {
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
