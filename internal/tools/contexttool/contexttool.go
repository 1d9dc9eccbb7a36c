// Package contexttool implements the AI-context generation tool. The
// interactive session collects a filter configuration, runs the pure tree and
// selection algorithms, previews the result, and handles the save variants.
package contexttool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"

	"github.com/temirov/toolbelt/internal/commands"
	"github.com/temirov/toolbelt/internal/config"
	"github.com/temirov/toolbelt/internal/prompt"
	"github.com/temirov/toolbelt/internal/services/clipboard"
	"github.com/temirov/toolbelt/internal/tokenizer"
	"github.com/temirov/toolbelt/internal/types"
	"github.com/temirov/toolbelt/internal/utils"
)

const (
	toolName        = "Generate AI Context"
	toolDescription = "Create optimized project context with filtering options for AI"

	sessionHeader = "AI-PROJECT CONTEXT GENERATOR"

	previewLineCount      = 30
	quickTreeDepth        = 2
	gitIgnoreFileName     = ".gitignore"
	defaultFilenameSuffix = "_context.txt"

	customSelectionDone = "done"
	customSelectionTree = "tree"

	saveChoiceFull     = "1"
	saveChoiceSection  = "2"
	saveChoiceTemplate = "3"
	saveChoiceNone     = "4"
)

// Tool generates bounded-size project context documents.
type Tool struct {
	interactor *prompt.Interactor
	settings   config.Settings
	copier     clipboard.Copier
	logger     *zap.Logger
}

// New constructs the context generation tool.
func New(interactor *prompt.Interactor, settings config.Settings, copier clipboard.Copier, logger *zap.Logger) *Tool {
	return &Tool{
		interactor: interactor,
		settings:   settings,
		copier:     copier,
		logger:     logger,
	}
}

// Name returns the display name.
func (tool *Tool) Name() string { return toolName }

// Description returns the display description.
func (tool *Tool) Description() string { return toolDescription }

// Run performs one interactive context-generation session.
func (tool *Tool) Run() error {
	tool.interactor.PrintHeader(sessionHeader)

	projectPath := tool.interactor.ProjectPath()
	projectName := filepath.Base(projectPath)
	tool.interactor.Printf("\nProject: %s\nLocation: %s\n", projectName, projectPath)

	configuration := tool.collectConfiguration()

	var customPaths []string
	if configuration.SelectionMode == types.SelectionModeCustom {
		customPaths = tool.collectCustomPaths(projectPath, configuration.IgnoreDirectories)
	}

	tool.interactor.Println("\nScanning project...")

	selector := &commands.Selector{
		Configuration: configuration,
		GitIgnore:     tool.loadGitIgnore(projectPath),
	}
	treeText := commands.BuildTree(projectPath, configuration.IgnoreDirectories, config.DefaultMaxTreeDepth)
	contentText := selector.SelectContent(projectPath, customPaths)

	document := commands.Document{
		ProjectName:   projectName,
		SelectionMode: configuration.SelectionMode,
		GeneratedAt:   utils.Timestamp(),
		Tree:          treeText,
		Contents:      contentText,
	}
	renderedDocument := document.Render()

	tool.showPreview(renderedDocument)
	tool.handleSaveOptions(projectName, renderedDocument)
	return nil
}

// collectConfiguration merges the default ignore sets, configured overrides,
// and session additions into one FilterConfiguration.
func (tool *Tool) collectConfiguration() types.FilterConfiguration {
	tool.interactor.Println("\nConfiguration Options:")
	tool.interactor.Println(strings.Repeat("-", 40))

	tool.interactor.Println("\n1. Ignore Directories (defaults include .git, node_modules, dist, ...)")
	additionalDirectories := tool.interactor.Ask("   Add more (comma separated, leave empty for default): ")

	tool.interactor.Println("\n2. Ignore File Patterns (defaults include *.log, *.tmp, .env, ...)")
	additionalPatterns := tool.interactor.Ask("   Add more patterns (comma separated): ")

	tool.interactor.Println("\n3. File Selection Mode:")
	tool.interactor.Println("   [1] Smart (recommended) - Key files only")
	tool.interactor.Println("   [2] All - All readable files")
	tool.interactor.Println("   [3] Custom - Select specific files/folders")
	modeChoice := tool.interactor.Ask("   Choose mode (1/2/3): ")

	selectionMode := types.SelectionModeSmart
	switch modeChoice {
	case "2":
		selectionMode = types.SelectionModeAll
	case "3":
		selectionMode = types.SelectionModeCustom
	}

	configuration := config.NewFilterConfiguration(tool.settings, selectionMode)
	configuration.IgnoreDirectories = config.MergeNames(configuration.IgnoreDirectories, splitCommaList(additionalDirectories))
	configuration.IgnoreFilePatterns = config.MergeNames(configuration.IgnoreFilePatterns, splitCommaList(additionalPatterns))
	return configuration
}

// collectCustomPaths gathers the explicit selection list. Paths are validated
// as they are entered; invalid entries are dropped with a message, so the
// selector falls back to smart mode only when the validated list is empty.
func (tool *Tool) collectCustomPaths(projectPath string, ignoreDirectories map[string]struct{}) []string {
	tool.interactor.Println("\nCustom File Selection:")
	tool.interactor.Println(strings.Repeat("-", 40))
	tool.interactor.Println("Enter file/folder paths (relative to project, one per line).")
	tool.interactor.Printf("Type '%s' when finished, or '%s' to see structure.\n", customSelectionDone, customSelectionTree)

	var selectedPaths []string
	for {
		entry := tool.interactor.Ask(fmt.Sprintf("\nEnter path (or '%s'/'%s'): ", customSelectionDone, customSelectionTree))
		switch strings.ToLower(entry) {
		case customSelectionDone, "":
			if len(selectedPaths) == 0 {
				tool.interactor.Println("No files selected. Using smart selection instead.")
			}
			return selectedPaths
		case customSelectionTree:
			tool.interactor.Printf("\nCurrent tree (first %d levels):\n", quickTreeDepth)
			tool.interactor.Printf("%s", commands.BuildTree(projectPath, ignoreDirectories, quickTreeDepth))
			continue
		}
		fullPath := filepath.Join(projectPath, entry)
		if _, statError := os.Stat(fullPath); statError != nil {
			tool.interactor.Printf("Not found: %s\n", entry)
			continue
		}
		selectedPaths = append(selectedPaths, entry)
		tool.interactor.Printf("Added: %s\n", entry)
	}
}

// loadGitIgnore compiles the project's .gitignore as an overlay matcher when
// present. Absence or a parse failure simply disables the overlay.
func (tool *Tool) loadGitIgnore(projectPath string) gitignore.IgnoreParser {
	gitIgnorePath := filepath.Join(projectPath, gitIgnoreFileName)
	if _, statError := os.Stat(gitIgnorePath); statError != nil {
		return nil
	}
	matcher, compileError := gitignore.CompileIgnoreFile(gitIgnorePath)
	if compileError != nil {
		tool.logger.Warn("ignoring unreadable .gitignore",
			zap.String("path", gitIgnorePath),
			zap.Error(compileError))
		return nil
	}
	return matcher
}

// showPreview prints the first lines of the document plus size statistics
// and a token estimate.
func (tool *Tool) showPreview(renderedDocument string) {
	tool.interactor.Println("\nPREVIEW:")
	tool.interactor.Println(strings.Repeat("-", 60))

	lines := strings.Split(renderedDocument, "\n")
	for lineIndex, line := range lines {
		if lineIndex >= previewLineCount {
			tool.interactor.Printf("...\n(Showing first %d of %d lines)\n", previewLineCount, len(lines))
			break
		}
		tool.interactor.Println(line)
	}

	tool.interactor.Println("\nStatistics:")
	tool.interactor.Printf("  Total lines: %s\n", humanize.Comma(int64(len(lines))))
	tool.interactor.Printf("  Approx. size: %s bytes\n", humanize.Comma(int64(len(renderedDocument))))
	tool.reportTokenEstimate(renderedDocument)
}

// reportTokenEstimate attaches a tiktoken-based token count to the preview.
// Tokenizer failures are logged and skip the statistic, nothing more.
func (tool *Tool) reportTokenEstimate(renderedDocument string) {
	counter, counterError := tokenizer.NewCounter(tool.settings.TokenizerModel)
	if counterError != nil {
		tool.logger.Warn("token estimate unavailable", zap.Error(counterError))
		return
	}
	tokenCount, countError := counter.CountString(renderedDocument)
	if countError != nil {
		tool.logger.Warn("token estimate unavailable", zap.Error(countError))
		return
	}
	tool.interactor.Printf("  Approx. tokens (%s): %s\n", counter.Name(), humanize.Comma(int64(tokenCount)))
}

// handleSaveOptions offers the full/section/template save variants plus a
// clipboard copy. Write failures are reported to the operator, never raised.
func (tool *Tool) handleSaveOptions(projectName string, renderedDocument string) {
	tool.interactor.Println("\nSave Options:")
	tool.interactor.Println("  [1] Save full context")
	tool.interactor.Println("  [2] Save only specific section")
	tool.interactor.Println("  [3] Save as AI prompt template")
	tool.interactor.Println("  [4] Don't save")
	saveChoice := tool.interactor.Ask("Choose option (1-4): ")

	if saveChoice == saveChoiceNone || saveChoice == "" {
		tool.offerClipboardCopy(renderedDocument)
		return
	}

	defaultFilename := projectName + defaultFilenameSuffix
	filename := tool.interactor.Ask(fmt.Sprintf("Enter filename [%s]: ", defaultFilename))
	if filename == "" {
		filename = defaultFilename
	}

	saveContent := renderedDocument
	switch saveChoice {
	case saveChoiceSection:
		tool.interactor.Println("\nSelect section to save:")
		tool.interactor.Println("  [1] Only project structure")
		tool.interactor.Println("  [2] Only file contents")
		section := commands.SectionContents
		if tool.interactor.Ask("Choose (1/2): ") == "1" {
			section = commands.SectionStructure
		}
		extracted, extractError := commands.ExtractSection(renderedDocument, section)
		if extractError != nil {
			tool.interactor.Printf("Error extracting section: %v\n", extractError)
			return
		}
		saveContent = extracted
	case saveChoiceTemplate:
		saveContent = commands.PromptTemplate(renderedDocument)
	}

	if writeError := os.WriteFile(filename, []byte(saveContent), 0o644); writeError != nil {
		tool.interactor.Printf("Error saving file: %v\n", writeError)
		return
	}
	absolutePath, _ := filepath.Abs(filename)
	tool.interactor.Printf("Saved to: %s\n", absolutePath)
	tool.interactor.Printf("Size: %s\n", utils.FormatSize(int64(len(saveContent))))

	tool.offerClipboardCopy(saveContent)
}

// offerClipboardCopy optionally places the document on the system clipboard.
func (tool *Tool) offerClipboardCopy(content string) {
	if tool.copier == nil {
		return
	}
	if !tool.interactor.Confirm("\nCopy to clipboard? (y/n): ") {
		return
	}
	if copyError := tool.copier.Copy(content); copyError != nil {
		tool.interactor.Printf("Clipboard not available: %v\n", copyError)
		return
	}
	tool.interactor.Println("Copied to clipboard.")
}

// splitCommaList splits a comma-separated answer into trimmed entries.
func splitCommaList(answer string) []string {
	if strings.TrimSpace(answer) == "" {
		return nil
	}
	var entries []string
	for _, part := range strings.Split(answer, ",") {
		trimmedPart := strings.TrimSpace(part)
		if trimmedPart != "" {
			entries = append(entries, trimmedPart)
		}
	}
	return entries
}
