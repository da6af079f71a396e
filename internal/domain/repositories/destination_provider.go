package repositories

import (
	"context"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
)

// DestinationProvider exposes the operations the workflows need from the
// destination platform (Azure DevOps).
type DestinationProvider interface {
	// CreateRepository registers a new, empty repository under the target
	// project. Creating an already-existing repository is an error.
	CreateRepository(ctx context.Context, name string) error

	// PushURL builds the authenticated push URL for one repository.
	PushURL(name string) string
}

// DestinationProviderFactory builds a DestinationProvider once credentials
// are known.
type DestinationProviderFactory func(creds entities.DestinationCredentials) DestinationProvider
