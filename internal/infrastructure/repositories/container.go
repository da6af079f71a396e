package repositories

import (
	"go.uber.org/dig"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	domainRepos "github.com/rrabelo/bb2ado/internal/domain/repositories"
	adoRepo "github.com/rrabelo/bb2ado/internal/infrastructure/repositories/azuredevops"
	bbRepo "github.com/rrabelo/bb2ado/internal/infrastructure/repositories/bitbucket"
	excelRepo "github.com/rrabelo/bb2ado/internal/infrastructure/repositories/excel"
	gitRepo "github.com/rrabelo/bb2ado/internal/infrastructure/repositories/gitcli"
	promptRepo "github.com/rrabelo/bb2ado/internal/infrastructure/repositories/prompt"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Provider factories: providers are built per run once credentials are known.
	if err := container.Provide(func() domainRepos.SourceProviderFactory {
		return func(creds entities.SourceCredentials) domainRepos.SourceProvider {
			return bbRepo.NewSourceProvider(creds)
		}
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.DestinationProviderFactory {
		return func(creds entities.DestinationCredentials) domainRepos.DestinationProvider {
			return adoRepo.NewDestinationProvider(creds)
		}
	}); err != nil {
		return err
	}

	if err := container.Provide(gitRepo.NewClient); err != nil {
		return err
	}
	if err := container.Provide(excelRepo.NewReportWriter); err != nil {
		return err
	}
	if err := container.Provide(promptRepo.NewPrompter); err != nil {
		return err
	}

	// Bind ports to implementations.
	if err := container.Provide(func(impl *gitRepo.Client) domainRepos.GitClient {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *excelRepo.ReportWriter) domainRepos.ReportWriter {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *promptRepo.Prompter) domainRepos.Prompter {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
