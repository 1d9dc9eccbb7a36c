package statstool_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/toolbelt/internal/tools/statstool"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// TestGatherStatistics verifies totals and the frequency-sorted extension breakdown.
func TestGatherStatistics(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	subDirectory := filepath.Join(rootDirectory, "pkg")
	if makeError := os.MkdirAll(subDirectory, 0o755); makeError != nil {
		testingHandle.Fatalf("failed to create directory: %v", makeError)
	}
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "main.go"), "package main")
	writeTestFile(testingHandle, filepath.Join(subDirectory, "pkg.go"), "package pkg")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "README.md"), "# readme")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "Makefile"), "all:\n")

	extensionCounts, totalFiles, totalDirectories, totalBytes := statstool.GatherStatistics(rootDirectory)

	if totalFiles != 4 {
		testingHandle.Fatalf("totalFiles = %d, want 4", totalFiles)
	}
	if totalDirectories != 1 {
		testingHandle.Fatalf("totalDirectories = %d, want 1", totalDirectories)
	}
	if totalBytes <= 0 {
		testingHandle.Fatalf("totalBytes = %d, want positive", totalBytes)
	}

	if len(extensionCounts) != 3 {
		testingHandle.Fatalf("expected 3 extension groups, got %d: %v", len(extensionCounts), extensionCounts)
	}
	if extensionCounts[0].Extension != ".go" || extensionCounts[0].Count != 2 {
		testingHandle.Fatalf("most frequent group should be .go with 2, got %+v", extensionCounts[0])
	}
	// Remaining groups tie on count and fall back to extension order: "" before ".md".
	if extensionCounts[1].Extension != "" || extensionCounts[2].Extension != ".md" {
		testingHandle.Fatalf("tied groups out of order: %+v", extensionCounts)
	}
}

// TestGatherStatisticsEmptyRoot verifies the zero-value result for an empty directory.
func TestGatherStatisticsEmptyRoot(testingHandle *testing.T) {
	extensionCounts, totalFiles, totalDirectories, totalBytes := statstool.GatherStatistics(testingHandle.TempDir())
	if len(extensionCounts) != 0 || totalFiles != 0 || totalDirectories != 0 || totalBytes != 0 {
		testingHandle.Fatalf("expected zero statistics, got %v / %d / %d / %d", extensionCounts, totalFiles, totalDirectories, totalBytes)
	}
}
