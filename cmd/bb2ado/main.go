package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rrabelo/bb2ado/internal"
	"github.com/rrabelo/bb2ado/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "bb2ado",
		Short: "Migrate Git repositories from Bitbucket to Azure DevOps",
		Long: `bb2ado mirror-migrates every repository of a Bitbucket workspace to an
Azure DevOps project, validates transfer completeness by comparing commit
counts, and produces read-only analysis reports over the source workspace.

Per-repository outcomes are written as xlsx reports in the working
directory; one repository's failure never aborts a batch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, _ []string) error {
			_ = command.Help()
			return errors.New("a command is required")
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to settings file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	// Parent group commands, created on demand by name.
	groups := make(map[string]*cobra.Command)

	parentFor := func(bind entities.ControllerBind) *cobra.Command {
		if bind.Parent == "" {
			return rootCmd
		}
		group, ok := groups[bind.Parent]
		if !ok {
			//nolint:exhaustruct // Minimal Command initialization with required fields only
			group = &cobra.Command{
				Use:   bind.Parent,
				Short: "Read-only analysis reports over the source workspace",
			}
			groups[bind.Parent] = group
			rootCmd.AddCommand(group)
		}
		return group
	}

	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				if verbose, _ := command.Flags().GetBool("verbose"); verbose {
					logger.SetLevel(logger.DebugLevel)
				}
				return ctrl.Execute(command, arguments)
			},
		}

		parentFor(bind).AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	rootCmd := buildRootCommand()
	addSubcommands(rootCmd, appContext)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Error executing 'bb2ado': %s", err)
	}
}
