// Package statstool implements the file statistics tool: it counts files and
// directories under a project root and groups files by extension.
package statstool

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/temirov/toolbelt/internal/prompt"
	"github.com/temirov/toolbelt/internal/utils"
)

const (
	toolName        = "File Statistics"
	toolDescription = "Count files and folders by type"

	sessionHeader      = "FILE STATISTICS"
	noExtensionDisplay = "[no extension]"
)

// ExtensionCount pairs an extension with its number of occurrences.
type ExtensionCount struct {
	Extension string
	Count     int
}

// Tool reports file and directory statistics for a project root.
type Tool struct {
	interactor *prompt.Interactor
}

// New constructs the statistics tool.
func New(interactor *prompt.Interactor) *Tool {
	return &Tool{interactor: interactor}
}

// Name returns the display name.
func (tool *Tool) Name() string { return toolName }

// Description returns the display description.
func (tool *Tool) Description() string { return toolDescription }

// Run walks the selected root and prints totals plus a per-extension
// breakdown sorted by frequency.
func (tool *Tool) Run() error {
	tool.interactor.PrintHeader(sessionHeader)

	projectPath := tool.interactor.ProjectPath()

	extensionCounts, totalFiles, totalDirectories, totalBytes := GatherStatistics(projectPath)

	tool.interactor.Printf("\nProject: %s\n", filepath.Base(projectPath))
	tool.interactor.Printf("Path: %s\n", projectPath)
	tool.interactor.Println("\nStatistics:")
	tool.interactor.Printf("  Total folders: %s\n", humanize.Comma(int64(totalDirectories)))
	tool.interactor.Printf("  Total files: %s\n", humanize.Comma(int64(totalFiles)))
	tool.interactor.Printf("  Total size: %s\n", utils.FormatSize(totalBytes))

	tool.interactor.Println("\nFiles by extension:")
	for _, entry := range extensionCounts {
		display := entry.Extension
		if display == "" {
			display = noExtensionDisplay
		}
		tool.interactor.Printf("  %s: %d\n", display, entry.Count)
	}
	return nil
}

// GatherStatistics walks the root and returns per-extension counts sorted by
// descending frequency, plus file, directory, and byte totals. Unreadable
// entries are skipped.
func GatherStatistics(rootPath string) ([]ExtensionCount, int, int, int64) {
	countsByExtension := map[string]int{}
	totalFiles := 0
	totalDirectories := 0
	var totalBytes int64

	_ = filepath.WalkDir(rootPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			return nil
		}
		if directoryEntry.IsDir() {
			if walkedPath != rootPath {
				totalDirectories++
			}
			return nil
		}
		totalFiles++
		countsByExtension[strings.ToLower(filepath.Ext(directoryEntry.Name()))]++
		if entryInfo, infoError := directoryEntry.Info(); infoError == nil {
			totalBytes += entryInfo.Size()
		}
		return nil
	})

	extensionCounts := lo.MapToSlice(countsByExtension, func(extension string, count int) ExtensionCount {
		return ExtensionCount{Extension: extension, Count: count}
	})
	sort.Slice(extensionCounts, func(firstIndex, secondIndex int) bool {
		if extensionCounts[firstIndex].Count != extensionCounts[secondIndex].Count {
			return extensionCounts[firstIndex].Count > extensionCounts[secondIndex].Count
		}
		return extensionCounts[firstIndex].Extension < extensionCounts[secondIndex].Extension
	})
	return extensionCounts, totalFiles, totalDirectories, totalBytes
}
