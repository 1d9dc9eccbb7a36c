// Package commands contains the core algorithms behind the toolbelt tools:
// directory tree rendering, content selection, and document assembly. The
// functions here take configuration as plain data and never prompt.
package commands

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// treeHeading opens the rendered tree text.
	treeHeading = "Project Tree:"
	// depthLimitMarker is emitted in place of entries beyond the depth cutoff.
	depthLimitMarker = "[depth limit reached]"
	// hiddenPrefix marks entries that are always skipped during rendering.
	hiddenPrefix = "."

	middleConnector = "├── "
	lastConnector   = "└── "
	middleExtension = "│   "
	lastExtension   = "    "
)

// BuildTree renders the directory at rootPath as a box-drawing tree. Hidden
// entries are always skipped; directories named in ignoreDirectories are
// neither shown nor descended into. At each level directories precede files,
// both sorted lexicographically. Recursion stops past maxDepth with a marker
// leaf, and unreadable directories render as empty subtrees.
func BuildTree(rootPath string, ignoreDirectories map[string]struct{}, maxDepth int) string {
	var builder strings.Builder
	builder.WriteString(treeHeading)
	builder.WriteString("\n")
	renderTreeLevel(&builder, rootPath, "", 0, maxDepth, ignoreDirectories)
	return builder.String()
}

// renderTreeLevel writes one directory level and recurses into subdirectories.
func renderTreeLevel(builder *strings.Builder, directoryPath string, prefix string, depth int, maxDepth int, ignoreDirectories map[string]struct{}) {
	if depth > maxDepth {
		builder.WriteString(prefix + lastConnector + depthLimitMarker + "\n")
		return
	}

	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return
	}

	var directoryNames []string
	var fileNames []string
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if strings.HasPrefix(entryName, hiddenPrefix) {
			continue
		}
		if directoryEntry.IsDir() {
			if _, ignored := ignoreDirectories[entryName]; ignored {
				continue
			}
			directoryNames = append(directoryNames, entryName)
		} else {
			fileNames = append(fileNames, entryName)
		}
	}
	sort.Strings(directoryNames)
	sort.Strings(fileNames)

	// Directories listed before files, each group sorted on its own.
	orderedEntries := make([]string, 0, len(directoryNames)+len(fileNames))
	orderedEntries = append(orderedEntries, directoryNames...)
	orderedEntries = append(orderedEntries, fileNames...)
	directoryCount := len(directoryNames)

	for entryIndex, entryName := range orderedEntries {
		isLastEntry := entryIndex == len(orderedEntries)-1
		connector := middleConnector
		childPrefixExtension := middleExtension
		if isLastEntry {
			connector = lastConnector
			childPrefixExtension = lastExtension
		}
		builder.WriteString(prefix + connector + entryName + "\n")

		if entryIndex < directoryCount {
			renderTreeLevel(builder, filepath.Join(directoryPath, entryName), prefix+childPrefixExtension, depth+1, maxDepth, ignoreDirectories)
		}
	}
}
