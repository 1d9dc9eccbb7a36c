// Package envtool implements the environment manager: .env file maintenance
// through godotenv, process environment inspection, and toolchain checks
// through the runner collaborator.
package envtool

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/temirov/toolbelt/internal/prompt"
	"github.com/temirov/toolbelt/internal/services/runner"
	"github.com/temirov/toolbelt/internal/utils"
)

const (
	toolName        = "Environment Manager"
	toolDescription = "Create/inspect/delete .env file, list environment, check toolchain"

	sessionHeader = "ENVIRONMENT MANAGER"
	envFileName   = ".env"

	backOption = "6"
)

// toolchainExecutables lists the executables the toolchain check probes.
var toolchainExecutables = []string{"go", "git", "make", "docker"}

// Tool manages .env files and inspects the environment.
type Tool struct {
	interactor    *prompt.Interactor
	commandRunner runner.Runner
}

// New constructs the environment manager.
func New(interactor *prompt.Interactor, commandRunner runner.Runner) *Tool {
	return &Tool{
		interactor:    interactor,
		commandRunner: commandRunner,
	}
}

// Name returns the display name.
func (tool *Tool) Name() string { return toolName }

// Description returns the display description.
func (tool *Tool) Description() string { return toolDescription }

// Run displays the environment sub-menu until the operator goes back.
func (tool *Tool) Run() error {
	for {
		tool.interactor.PrintHeader(sessionHeader)
		tool.interactor.Println("\n1. Create .env File")
		tool.interactor.Println("2. Show .env File")
		tool.interactor.Println("3. Delete .env File")
		tool.interactor.Println("4. List Environment Variables")
		tool.interactor.Println("5. Check Toolchain")
		tool.interactor.Println("6. Back to Main Menu")

		choice := tool.interactor.Ask("\nSelect option (1-6): ")
		switch choice {
		case "1":
			tool.createEnvFile()
		case "2":
			tool.showEnvFile()
		case "3":
			tool.deleteEnvFile()
		case "4":
			tool.listEnvironment()
		case "5":
			tool.checkToolchain()
		case backOption, "":
			return nil
		default:
			tool.interactor.Println("Invalid option")
		}
	}
}

// createEnvFile collects key/value pairs interactively and writes them with
// godotenv so quoting stays consistent with the files it later parses.
func (tool *Tool) createEnvFile() {
	if _, statError := os.Stat(envFileName); statError == nil {
		if !tool.interactor.Confirm(".env already exists. Overwrite? (y/n): ") {
			tool.interactor.Println("Operation cancelled.")
			return
		}
	}

	tool.interactor.Println("\nEnter variables as KEY=VALUE, empty line to finish:")
	values := map[string]string{}
	for {
		line := tool.interactor.Ask("> ")
		if line == "" {
			break
		}
		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			tool.interactor.Println("Expected KEY=VALUE")
			continue
		}
		values[key] = strings.TrimSpace(value)
	}
	if len(values) == 0 {
		tool.interactor.Println("Nothing to write.")
		return
	}

	if writeError := godotenv.Write(values, envFileName); writeError != nil {
		tool.interactor.Printf("Failed to write %s: %v\n", envFileName, writeError)
		return
	}
	absolutePath, _ := filepath.Abs(envFileName)
	tool.interactor.Printf("Created %s with %d variables.\n", absolutePath, len(values))
}

// showEnvFile parses the .env file and prints its keys with values masked.
func (tool *Tool) showEnvFile() {
	values, readError := godotenv.Read(envFileName)
	if readError != nil {
		tool.interactor.Printf("Cannot read %s: %v\n", envFileName, readError)
		return
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tool.interactor.Printf("\n%s (%d variables):\n", envFileName, len(values))
	for _, key := range keys {
		tool.interactor.Printf("  %s=%s\n", key, maskValue(values[key]))
	}
}

// deleteEnvFile removes the .env file after confirmation.
func (tool *Tool) deleteEnvFile() {
	fileInfo, statError := os.Stat(envFileName)
	if statError != nil {
		tool.interactor.Printf("No %s file found.\n", envFileName)
		return
	}
	tool.interactor.Printf("%s (%s)\n", envFileName, utils.FormatSize(fileInfo.Size()))
	if !tool.interactor.Confirm("Delete it? (y/n): ") {
		tool.interactor.Println("Operation cancelled.")
		return
	}
	if removeError := os.Remove(envFileName); removeError != nil {
		tool.interactor.Printf("Deletion failed: %v\n", removeError)
		return
	}
	tool.interactor.Printf("Deleted %s\n", envFileName)
}

// listEnvironment prints the process environment, optionally filtered by a
// substring.
func (tool *Tool) listEnvironment() {
	filter := strings.ToLower(tool.interactor.Ask("Filter (substring, empty for all): "))
	environment := os.Environ()
	sort.Strings(environment)
	shownCount := 0
	for _, entry := range environment {
		if filter != "" && !strings.Contains(strings.ToLower(entry), filter) {
			continue
		}
		tool.interactor.Printf("  %s\n", entry)
		shownCount++
	}
	tool.interactor.Printf("\n%d variables shown.\n", shownCount)
}

// checkToolchain probes the known executables and reports their versions.
func (tool *Tool) checkToolchain() {
	tool.interactor.Println("\nToolchain check:")
	for _, executableName := range toolchainExecutables {
		executablePath, lookupError := tool.commandRunner.LookPath(executableName)
		if lookupError != nil {
			tool.interactor.Printf("  %s: not found\n", executableName)
			continue
		}
		versionOutput, versionError := tool.commandRunner.Run(executableName, "version")
		if versionError != nil {
			versionOutput, versionError = tool.commandRunner.Run(executableName, "--version")
		}
		if versionError != nil {
			tool.interactor.Printf("  %s: %s (version unavailable)\n", executableName, executablePath)
			continue
		}
		tool.interactor.Printf("  %s: %s\n", executableName, firstLine(versionOutput))
	}
}

// maskValue hides all but a short prefix of a value for display.
func maskValue(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-4)
}

// firstLine returns the first line of command output.
func firstLine(output string) string {
	line, _, _ := strings.Cut(output, "\n")
	return strings.TrimSpace(line)
}
