package internal

import (
	"go.uber.org/dig"

	"github.com/rrabelo/bb2ado/internal/domain/commands"
	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/infrastructure/controllers"
	"github.com/rrabelo/bb2ado/internal/infrastructure/repositories"
)

// AppInternal aggregates everything the CLI entry point needs.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application aggregate.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all registered subcommand controllers.
func (a *AppInternal) GetControllers() []entities.Controller {
	return *a.controllers
}

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}
