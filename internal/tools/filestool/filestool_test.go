package filestool_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/toolbelt/internal/tools/filestool"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// TestCollectFileRecords verifies sorted records, hidden-entry skipping, and
// the aggregate size.
func TestCollectFileRecords(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	subDirectory := filepath.Join(rootDirectory, "src")
	if makeError := os.MkdirAll(subDirectory, 0o755); makeError != nil {
		testingHandle.Fatalf("failed to create directory: %v", makeError)
	}
	hiddenDirectory := filepath.Join(rootDirectory, ".git")
	if makeError := os.MkdirAll(hiddenDirectory, 0o755); makeError != nil {
		testingHandle.Fatalf("failed to create directory: %v", makeError)
	}
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "zeta.txt"), "12345")
	writeTestFile(testingHandle, filepath.Join(subDirectory, "alpha.go"), "1234567890")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, ".hidden"), "secret")
	writeTestFile(testingHandle, filepath.Join(hiddenDirectory, "config"), "internal")

	records, totalBytes := filestool.CollectFileRecords(rootDirectory)

	if len(records) != 2 {
		testingHandle.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].RelativePath != "src/alpha.go" || records[1].RelativePath != "zeta.txt" {
		testingHandle.Fatalf("records out of order: %+v", records)
	}
	if totalBytes != 15 {
		testingHandle.Fatalf("totalBytes = %d, want 15", totalBytes)
	}
	if records[0].SizeBytes != 10 {
		testingHandle.Fatalf("alpha.go size = %d, want 10", records[0].SizeBytes)
	}
}

// TestFuzzySearch verifies that ranked matches come back and non-matches are dropped.
func TestFuzzySearch(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "main.go"), "package main")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "main_test.go"), "package main")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "README.md"), "# readme")
	records, _ := filestool.CollectFileRecords(rootDirectory)

	results := filestool.FuzzySearch(records, "main")
	if len(results) != 2 {
		testingHandle.Fatalf("expected 2 fuzzy matches, got %d: %+v", len(results), results)
	}
	for _, result := range results {
		if !strings.Contains(result.RelativePath, "main") {
			testingHandle.Fatalf("unexpected match %q", result.RelativePath)
		}
	}

	if noResults := filestool.FuzzySearch(records, "zzzz"); len(noResults) != 0 {
		testingHandle.Fatalf("expected no matches, got %+v", noResults)
	}
}

// TestFileTemplate exercises the per-extension starter content.
func TestFileTemplate(testingHandle *testing.T) {
	if template := filestool.FileTemplate(".go", "my-widget.go"); template != "package my_widget\n" {
		testingHandle.Fatalf("go template = %q", template)
	}
	if template := filestool.FileTemplate(".md", "notes.md"); !strings.HasPrefix(template, "# notes\n") {
		testingHandle.Fatalf("markdown template = %q", template)
	}
	if template := filestool.FileTemplate(".json", "data.json"); template != "{\n}\n" {
		testingHandle.Fatalf("json template = %q", template)
	}
	if template := filestool.FileTemplate(".sh", "run.sh"); !strings.HasPrefix(template, "#!/usr/bin/env bash") {
		testingHandle.Fatalf("shell template = %q", template)
	}
	if template := filestool.FileTemplate(".xyz", "thing.xyz"); template != "" {
		testingHandle.Fatalf("unknown extension must yield empty content, got %q", template)
	}
}
