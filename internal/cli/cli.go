// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/toolbelt/internal/config"
	"github.com/temirov/toolbelt/internal/menu"
	"github.com/temirov/toolbelt/internal/prompt"
	"github.com/temirov/toolbelt/internal/registry"
	"github.com/temirov/toolbelt/internal/services/clipboard"
	"github.com/temirov/toolbelt/internal/services/runner"
	"github.com/temirov/toolbelt/internal/tools/cachetool"
	"github.com/temirov/toolbelt/internal/tools/contexttool"
	"github.com/temirov/toolbelt/internal/tools/envtool"
	"github.com/temirov/toolbelt/internal/tools/filestool"
	"github.com/temirov/toolbelt/internal/tools/scaffoldtool"
	"github.com/temirov/toolbelt/internal/tools/statstool"
	"github.com/temirov/toolbelt/internal/types"
)

const (
	versionFlagName      = "version"
	configFlagName       = "config"
	pathFlagName         = "path"
	generatorFlagName    = "generator"
	versionTemplate      = "toolbelt version: {{.Version}}\n"
	rootUse              = "toolbelt"
	rootShortDescription = "toolbelt interactive developer utilities"
	rootLongDescription  = `toolbelt bundles small developer utilities behind one interactive menu.
It generates AI-ready project context documents, cleans cache directories,
manages environment files, drives project scaffolding, and performs common
file operations.`
	versionFlagDescription   = "display application version"
	configFlagDescription    = "path to a configuration file"
	pathFlagDescription      = "initial working directory"
	generatorFlagDescription = "scaffold generator executable"
	defaultGeneratorName     = "django-admin"

	cacheToolIdentifier    = "cache_cleanup"
	filesToolIdentifier    = "file_operations"
	envToolIdentifier      = "env_manager"
	scaffoldToolIdentifier = "scaffold_manager"
	contextToolIdentifier  = "context_generator"
	statsToolIdentifier    = "file_statistics"
)

// applicationVersion is injected at build time via ldflags.
var applicationVersion = "dev"

// Execute runs the root command with the process-wide logger.
func Execute(loggerInstance *zap.Logger) error {
	return newRootCommand(loggerInstance).Execute()
}

// newRootCommand builds the cobra root command over the given logger.
func newRootCommand(loggerInstance *zap.Logger) *cobra.Command {
	var configFilePath string
	var initialDirectory string
	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Version:       applicationVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if initialDirectory != "" {
				if changeDirectoryError := os.Chdir(initialDirectory); changeDirectoryError != nil {
					return fmt.Errorf("changing to %s: %w", initialDirectory, changeDirectoryError)
				}
			}
			generatorName, _ := command.Flags().GetString(generatorFlagName)
			return runMenu(configFilePath, generatorName, loggerInstance)
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)
	rootCommand.Flags().BoolP(versionFlagName, "v", false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&configFilePath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().StringVar(&initialDirectory, pathFlagName, "", pathFlagDescription)
	rootCommand.Flags().String(generatorFlagName, defaultGeneratorName, generatorFlagDescription)
	return rootCommand
}

// runMenu loads configuration, assembles the tool registry, and runs the
// interactive loop on standard input and output.
func runMenu(configFilePath string, generatorName string, loggerInstance *zap.Logger) error {
	settings, settingsError := config.LoadSettings(config.LoadOptions{ExplicitFilePath: configFilePath})
	if settingsError != nil {
		return settingsError
	}

	interactor := prompt.NewInteractor(os.Stdin, os.Stdout)
	clipboardService := clipboard.NewService()
	workingDirectory, _ := os.Getwd()
	commandRunner := runner.NewExecRunner(workingDirectory)

	entries := []registry.Entry{
		{Identifier: cacheToolIdentifier, Build: func() (types.Tool, error) {
			return cachetool.New(interactor, config.CacheDirectoryNames(settings), loggerInstance), nil
		}},
		{Identifier: filesToolIdentifier, Build: func() (types.Tool, error) {
			return filestool.New(interactor, clipboardService, loggerInstance), nil
		}},
		{Identifier: envToolIdentifier, Build: func() (types.Tool, error) {
			return envtool.New(interactor, commandRunner), nil
		}},
		{Identifier: scaffoldToolIdentifier, Build: func() (types.Tool, error) {
			return scaffoldtool.New(interactor, commandRunner, generatorName), nil
		}},
		{Identifier: contextToolIdentifier, Build: func() (types.Tool, error) {
			return contexttool.New(interactor, settings, clipboardService, loggerInstance), nil
		}},
		{Identifier: statsToolIdentifier, Build: func() (types.Tool, error) {
			return statstool.New(interactor), nil
		}},
	}

	tools, discoverError := registry.Discover(entries, loggerInstance)
	if discoverError != nil {
		return discoverError
	}
	return menu.NewLoop(tools, interactor, loggerInstance).Run()
}
