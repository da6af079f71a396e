//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// StubPrompter implements repositories.Prompter without any terminal
// interaction: credentials pass through unchanged (or are replaced by the
// configured results) and confirmations answer with a configured result.
type StubPrompter struct {
	SourceResult      *entities.SourceCredentials
	DestinationResult *entities.DestinationCredentials

	ConfirmResult bool
	ConfirmErr    error

	// spy: confirmation messages received
	ConfirmMessages []string
}

var _ repositories.Prompter = (*StubPrompter)(nil)

func (p *StubPrompter) SourceCredentials(
	existing entities.SourceCredentials,
) (entities.SourceCredentials, error) {
	if p.SourceResult != nil {
		return *p.SourceResult, nil
	}
	return existing, nil
}

func (p *StubPrompter) DestinationCredentials(
	existing entities.DestinationCredentials,
) (entities.DestinationCredentials, error) {
	if p.DestinationResult != nil {
		return *p.DestinationResult, nil
	}
	return existing, nil
}

func (p *StubPrompter) Confirm(message string) (bool, error) {
	p.ConfirmMessages = append(p.ConfirmMessages, message)
	return p.ConfirmResult, p.ConfirmErr
}
