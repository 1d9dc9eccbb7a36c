// Package scaffoldtool implements the project scaffold manager. It drives an
// external project generator through the runner collaborator; every step is
// confirmation-gated and subprocess detail stays behind the Runner interface.
package scaffoldtool

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/toolbelt/internal/prompt"
	"github.com/temirov/toolbelt/internal/services/runner"
)

const (
	toolName        = "Scaffold Manager"
	toolDescription = "Create projects and components with an external generator"

	sessionHeader = "PROJECT SCAFFOLD MANAGER"

	backOption = "5"
)

// Tool wraps an external generator executable.
type Tool struct {
	interactor    *prompt.Interactor
	commandRunner runner.Runner
	generatorName string
}

// New constructs the scaffold manager for the given generator executable.
func New(interactor *prompt.Interactor, commandRunner runner.Runner, generatorName string) *Tool {
	return &Tool{
		interactor:    interactor,
		commandRunner: commandRunner,
		generatorName: generatorName,
	}
}

// Name returns the display name.
func (tool *Tool) Name() string { return toolName }

// Description returns the display description.
func (tool *Tool) Description() string { return toolDescription }

// Run displays the scaffold sub-menu until the operator goes back.
func (tool *Tool) Run() error {
	for {
		tool.interactor.PrintHeader(sessionHeader)
		tool.interactor.Printf("\nGenerator: %s\n", tool.generatorName)
		tool.interactor.Println("\n1. Check Generator Installation")
		tool.interactor.Println("2. Create Project")
		tool.interactor.Println("3. Create Component")
		tool.interactor.Println("4. Run Generator Command")
		tool.interactor.Println("5. Back to Main Menu")

		choice := tool.interactor.Ask("\nSelect option (1-5): ")
		switch choice {
		case "1":
			tool.checkGenerator()
		case "2":
			tool.createProject()
		case "3":
			tool.createComponent()
		case "4":
			tool.runGeneratorCommand()
		case backOption, "":
			return nil
		default:
			tool.interactor.Println("Invalid option")
		}
	}
}

// checkGenerator reports whether the generator executable is available.
func (tool *Tool) checkGenerator() {
	executablePath, lookupError := tool.commandRunner.LookPath(tool.generatorName)
	if lookupError != nil {
		tool.interactor.Printf("%s is not installed or not on PATH.\n", tool.generatorName)
		return
	}
	tool.interactor.Printf("Found: %s\n", executablePath)
	versionOutput, versionError := tool.commandRunner.Run(tool.generatorName, "--version")
	if versionError == nil && versionOutput != "" {
		tool.interactor.Printf("Version: %s\n", versionOutput)
	}
}

// createProject runs the generator's project creation in the working directory.
func (tool *Tool) createProject() {
	workingDirectory, _ := os.Getwd()
	tool.interactor.Printf("\nThis will create a new project in: %s\n", workingDirectory)
	if !tool.interactor.Confirm("Do you want to continue? (y/n): ") {
		tool.interactor.Println("Operation cancelled.")
		return
	}

	projectName := tool.interactor.Ask("Enter project name: ")
	if projectName == "" {
		tool.interactor.Println("Project name cannot be empty.")
		return
	}

	commandOutput, commandError := tool.commandRunner.Run(tool.generatorName, "startproject", projectName)
	if commandError != nil {
		tool.interactor.Printf("Failed to create project: %v\n%s\n", commandError, commandOutput)
		return
	}
	tool.interactor.Printf("Project %q created.\n", projectName)
	tool.interactor.Printf("Location: %s\n", filepath.Join(workingDirectory, projectName))
}

// createComponent runs the generator's component creation.
func (tool *Tool) createComponent() {
	componentName := tool.interactor.Ask("Enter component name: ")
	if componentName == "" {
		tool.interactor.Println("Component name cannot be empty.")
		return
	}
	commandOutput, commandError := tool.commandRunner.Run(tool.generatorName, "startapp", componentName)
	if commandError != nil {
		tool.interactor.Printf("Failed to create component: %v\n%s\n", commandError, commandOutput)
		return
	}
	tool.interactor.Printf("Component %q created.\n", componentName)
}

// runGeneratorCommand forwards an arbitrary subcommand to the generator
// after confirmation.
func (tool *Tool) runGeneratorCommand() {
	commandLine := tool.interactor.Ask("Enter generator arguments: ")
	if commandLine == "" {
		tool.interactor.Println("Nothing to run.")
		return
	}
	arguments := strings.Fields(commandLine)
	if !tool.interactor.Confirm("Run '"+tool.generatorName+" "+commandLine+"'? (y/n): ") {
		tool.interactor.Println("Operation cancelled.")
		return
	}
	commandOutput, commandError := tool.commandRunner.Run(tool.generatorName, arguments...)
	if commandOutput != "" {
		tool.interactor.Println(commandOutput)
	}
	if commandError != nil {
		tool.interactor.Printf("Command failed: %v\n", commandError)
	}
}
