package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewMigrateCommand); err != nil {
		return err
	}
	if err := container.Provide(NewValidateCommand); err != nil {
		return err
	}
	if err := container.Provide(NewAnalyzeReposCommand); err != nil {
		return err
	}
	if err := container.Provide(NewAnalyzeProjectsCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *MigrateCommand) Migrate {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ValidateCommand) Validate {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *AnalyzeReposCommand) AnalyzeRepos {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *AnalyzeProjectsCommand) AnalyzeProjects {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
