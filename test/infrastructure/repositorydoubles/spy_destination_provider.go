//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// SpyDestinationProvider implements repositories.DestinationProvider as a
// configurable spy.
type SpyDestinationProvider struct {
	// --- CreateRepository ---
	CreateErr map[string]error // repository name -> error
	// spy: names that were created
	CreatedNames []string
}

var _ repositories.DestinationProvider = (*SpyDestinationProvider)(nil)

func (p *SpyDestinationProvider) CreateRepository(_ context.Context, name string) error {
	if err, ok := p.CreateErr[name]; ok {
		return err
	}
	p.CreatedNames = append(p.CreatedNames, name)
	return nil
}

func (p *SpyDestinationProvider) PushURL(name string) string {
	return fmt.Sprintf("https://destination.example/_git/%s", name)
}
