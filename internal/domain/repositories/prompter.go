package repositories

import "github.com/rrabelo/bb2ado/internal/domain/entities"

// Prompter collects credentials and confirmations interactively. Secret
// values are masked on input.
type Prompter interface {
	// SourceCredentials prompts for any empty field of the given credentials
	// and returns the completed value.
	SourceCredentials(existing entities.SourceCredentials) (entities.SourceCredentials, error)

	// DestinationCredentials prompts for any empty field of the given
	// credentials and returns the completed value.
	DestinationCredentials(existing entities.DestinationCredentials) (entities.DestinationCredentials, error)

	// Confirm asks a yes/no question. A user abort counts as "no".
	Confirm(message string) (bool, error)
}
