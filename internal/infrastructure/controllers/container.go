package controllers

import (
	"go.uber.org/dig"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewMigrateController); err != nil {
		return err
	}
	if err := container.Provide(NewValidateController); err != nil {
		return err
	}
	if err := container.Provide(NewAnalyzeReposController); err != nil {
		return err
	}
	if err := container.Provide(NewAnalyzeProjectsController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	migrateController *MigrateController,
	validateController *ValidateController,
	analyzeReposController *AnalyzeReposController,
	analyzeProjectsController *AnalyzeProjectsController,
) *[]entities.Controller {
	return &[]entities.Controller{
		migrateController,
		validateController,
		analyzeReposController,
		analyzeProjectsController,
	}
}
