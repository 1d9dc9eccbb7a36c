// Package cachetool implements the cache-directory cleaner. It removes a
// configured set of cache directory names recursively after one confirmation.
package cachetool

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/temirov/toolbelt/internal/prompt"
	"github.com/temirov/toolbelt/internal/utils"
)

const (
	toolName        = "Clean Caches"
	toolDescription = "Remove cache directories recursively"

	sessionHeader = "CLEAN CACHE DIRECTORIES"
)

// Tool removes cache directories below the working directory.
type Tool struct {
	interactor          *prompt.Interactor
	cacheDirectoryNames []string
	logger              *zap.Logger
}

// New constructs the cache cleaner for the given directory-name set.
func New(interactor *prompt.Interactor, cacheDirectoryNames []string, logger *zap.Logger) *Tool {
	return &Tool{
		interactor:          interactor,
		cacheDirectoryNames: cacheDirectoryNames,
		logger:              logger,
	}
}

// Name returns the display name.
func (tool *Tool) Name() string { return toolName }

// Description returns the display description.
func (tool *Tool) Description() string { return toolDescription }

// Run scans for cache directories, confirms once, deletes them, and reports
// the freed space. Individual delete failures are reported and skipped.
func (tool *Tool) Run() error {
	tool.interactor.PrintHeader(sessionHeader)

	startPath, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		tool.interactor.Printf("Cannot determine working directory: %v\n", workingDirectoryError)
		return nil
	}
	tool.interactor.Printf("Cleaning in: %s\n", startPath)
	tool.interactor.Printf("Target directory names: %v\n", tool.cacheDirectoryNames)

	if !tool.interactor.Confirm("\nAre you sure you want to delete all matching cache directories? (y/n): ") {
		tool.interactor.Println("Operation cancelled.")
		return nil
	}

	cachePaths := tool.findCacheDirectories(startPath)
	if len(cachePaths) == 0 {
		tool.interactor.Println("\nNo cache directories found.")
		return nil
	}

	deletedCount := 0
	var freedBytes int64
	for _, cachePath := range cachePaths {
		directorySize := directoryTreeSize(cachePath)
		if removeError := os.RemoveAll(cachePath); removeError != nil {
			tool.interactor.Printf("Failed to delete %s: %v\n", cachePath, removeError)
			tool.logger.Warn("cache delete failed", zap.String("path", cachePath), zap.Error(removeError))
			continue
		}
		deletedCount++
		freedBytes += directorySize
		relativePath, relativeError := filepath.Rel(startPath, cachePath)
		if relativeError != nil {
			relativePath = cachePath
		}
		tool.interactor.Printf("Deleted: %s (%s)\n", relativePath, utils.FormatSize(directorySize))
	}

	tool.interactor.Println("\nSummary:")
	tool.interactor.Printf("  Directories deleted: %s\n", humanize.Comma(int64(deletedCount)))
	tool.interactor.Printf("  Space freed: %s\n", utils.FormatSize(freedBytes))
	return nil
}

// findCacheDirectories collects every directory whose name is in the target
// set, without descending into matches.
func (tool *Tool) findCacheDirectories(startPath string) []string {
	targetNames := make(map[string]struct{}, len(tool.cacheDirectoryNames))
	for _, name := range tool.cacheDirectoryNames {
		targetNames[name] = struct{}{}
	}

	var cachePaths []string
	walkError := filepath.WalkDir(startPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			return nil
		}
		if !directoryEntry.IsDir() || walkedPath == startPath {
			return nil
		}
		if _, isTarget := targetNames[directoryEntry.Name()]; isTarget {
			cachePaths = append(cachePaths, walkedPath)
			return filepath.SkipDir
		}
		return nil
	})
	if walkError != nil {
		tool.logger.Warn("cache scan incomplete", zap.Error(walkError))
	}
	return cachePaths
}

// directoryTreeSize sums the file sizes below a directory. Unreadable entries
// count as zero.
func directoryTreeSize(directoryPath string) int64 {
	var totalBytes int64
	_ = filepath.WalkDir(directoryPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil || directoryEntry.IsDir() {
			return nil
		}
		entryInfo, infoError := directoryEntry.Info()
		if infoError != nil {
			return nil
		}
		totalBytes += entryInfo.Size()
		return nil
	})
	return totalBytes
}
