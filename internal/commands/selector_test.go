package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/toolbelt/internal/commands"
	"github.com/temirov/toolbelt/internal/types"
)

const (
	testMaxFileBytes  = 10000
	testMaxTotalBytes = 50000

	truncationMarker  = "...[File truncated due to size]..."
	totalLimitMarker  = "[Total size limit reached. Some files omitted.]"
	readmeFileName    = "README.md"
	pythonFileName    = "main.py"
	binaryFileName    = "notes.bin"
	ignoredModuleName = "node_modules"
)

// newTestSelector builds a selector with the given mode and default-sized budgets.
func newTestSelector(mode types.SelectionMode, ignoreDirectories map[string]struct{}, ignorePatterns map[string]struct{}) *commands.Selector {
	return &commands.Selector{
		Configuration: types.FilterConfiguration{
			IgnoreDirectories:  ignoreDirectories,
			IgnoreFilePatterns: ignorePatterns,
			SelectionMode:      mode,
			MaxFileBytes:       testMaxFileBytes,
			MaxTotalBytes:      testMaxTotalBytes,
		},
	}
}

// TestSelectContentSmartMode verifies that smart mode includes important
// files and excludes unimportant ones and ignored directories.
func TestSelectContentSmartMode(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, readmeFileName), "# Project")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, pythonFileName), "print('hello')")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, binaryFileName), "binary payload")
	makeTestDirectory(testingHandle, filepath.Join(rootDirectory, ignoredModuleName))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, ignoredModuleName, "lib.js"), "module.exports = 1")

	selector := newTestSelector(types.SelectionModeSmart, map[string]struct{}{ignoredModuleName: {}}, nil)
	selected := selector.SelectContent(rootDirectory, nil)

	if !strings.Contains(selected, "FILE: "+readmeFileName) {
		testingHandle.Fatalf("smart selection missing %s:\n%s", readmeFileName, selected)
	}
	if !strings.Contains(selected, "FILE: "+pythonFileName) {
		testingHandle.Fatalf("smart selection missing %s:\n%s", pythonFileName, selected)
	}
	if strings.Contains(selected, binaryFileName) {
		testingHandle.Fatalf("smart selection must exclude %s:\n%s", binaryFileName, selected)
	}
	if strings.Contains(selected, "lib.js") {
		testingHandle.Fatalf("ignored directory contents must be excluded:\n%s", selected)
	}
}

// TestSelectContentIgnoreFilePatterns verifies that suffix and exact-name
// ignore patterns exclude files in all mode.
func TestSelectContentIgnoreFilePatterns(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "app.log"), "log line")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "Thumbs.db"), "thumb data")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "main.go"), "package main")

	ignorePatterns := map[string]struct{}{"*.log": {}, "Thumbs.db": {}}
	selector := newTestSelector(types.SelectionModeAll, nil, ignorePatterns)
	selected := selector.SelectContent(rootDirectory, nil)

	if strings.Contains(selected, "app.log") || strings.Contains(selected, "Thumbs.db") {
		testingHandle.Fatalf("ignore patterns not applied:\n%s", selected)
	}
	if !strings.Contains(selected, "FILE: main.go") {
		testingHandle.Fatalf("all mode missing main.go:\n%s", selected)
	}
}

// TestSelectContentPerFileTruncation verifies that an oversized file is cut
// to exactly the per-file cap and carries the truncation marker.
func TestSelectContentPerFileTruncation(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	oversizedContent := strings.Repeat("a", testMaxFileBytes+500)
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "big.txt"), oversizedContent)

	selector := newTestSelector(types.SelectionModeAll, nil, nil)
	selected := selector.SelectContent(rootDirectory, nil)

	if !strings.Contains(selected, truncationMarker) {
		testingHandle.Fatalf("truncation marker missing:\n%s", selected)
	}
	expectedKept := strings.Repeat("a", testMaxFileBytes)
	if !strings.Contains(selected, expectedKept+"\n\n"+truncationMarker) {
		testingHandle.Fatalf("truncated content is not exactly %d bytes before the marker", testMaxFileBytes)
	}
	if strings.Contains(selected, strings.Repeat("a", testMaxFileBytes+1)) {
		testingHandle.Fatalf("more than %d content bytes survived truncation", testMaxFileBytes)
	}
}

// TestSelectContentReplacesUndecodableBytes verifies that invalid byte
// sequences inside otherwise-readable files are replaced lossily instead of
// excluding the file.
func TestSelectContentReplacesUndecodableBytes(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	mixedContent := append([]byte("valid start "), 0xff, 0xfe)
	mixedContent = append(mixedContent, []byte(" valid end")...)
	filePath := filepath.Join(rootDirectory, "mixed.txt")
	if writeError := os.WriteFile(filePath, mixedContent, 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}

	selector := newTestSelector(types.SelectionModeAll, nil, nil)
	selected := selector.SelectContent(rootDirectory, nil)

	if !strings.Contains(selected, "FILE: mixed.txt") {
		testingHandle.Fatalf("file with invalid bytes must still be included:\n%s", selected)
	}
	// ToValidUTF8 collapses a run of invalid bytes into one replacement.
	if !strings.Contains(selected, "valid start � valid end") {
		testingHandle.Fatalf("invalid bytes not replaced with U+FFFD:\n%s", selected)
	}
	if strings.Contains(selected, "\xff") {
		testingHandle.Fatal("raw invalid bytes leaked into the output")
	}
}

// TestSelectContentTruncationAtRuneBoundary verifies that a byte cut landing
// inside a multi-byte rune backs off to the previous rune boundary instead of
// fabricating a replacement character.
func TestSelectContentTruncationAtRuneBoundary(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "accents.txt"), strings.Repeat("é", 8))

	selector := newTestSelector(types.SelectionModeAll, nil, nil)
	// Nine bytes cuts through the fifth two-byte rune.
	selector.Configuration.MaxFileBytes = 9
	selected := selector.SelectContent(rootDirectory, nil)

	if !strings.Contains(selected, "éééé\n\n"+truncationMarker) {
		testingHandle.Fatalf("truncation did not back off to the rune boundary:\n%s", selected)
	}
	if strings.Contains(selected, "�") {
		testingHandle.Fatalf("truncation fabricated a replacement character:\n%s", selected)
	}
}

// TestSelectContentTotalBudget verifies that the file exceeding the aggregate
// budget is dropped, exactly one notice is emitted, and the pass stops.
func TestSelectContentTotalBudget(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "a.txt"), strings.Repeat("a", 30))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "b.txt"), strings.Repeat("b", 30))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "c.txt"), strings.Repeat("c", 30))

	selector := newTestSelector(types.SelectionModeAll, nil, nil)
	selector.Configuration.MaxTotalBytes = 40
	selected := selector.SelectContent(rootDirectory, nil)

	if !strings.Contains(selected, "FILE: a.txt") {
		testingHandle.Fatalf("first file within budget must be included:\n%s", selected)
	}
	if strings.Contains(selected, "FILE: b.txt") || strings.Contains(selected, "FILE: c.txt") {
		testingHandle.Fatalf("files past the budget must be omitted:\n%s", selected)
	}
	if noticeCount := strings.Count(selected, totalLimitMarker); noticeCount != 1 {
		testingHandle.Fatalf("expected exactly one budget notice, got %d:\n%s", noticeCount, selected)
	}
}

// TestSelectContentEmptyCustomFallsBackToSmart verifies that custom mode with
// no paths behaves identically to smart mode.
func TestSelectContentEmptyCustomFallsBackToSmart(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, readmeFileName), "# Project")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, binaryFileName), "binary payload")

	customSelector := newTestSelector(types.SelectionModeCustom, nil, nil)
	smartSelector := newTestSelector(types.SelectionModeSmart, nil, nil)

	customSelection := customSelector.SelectContent(rootDirectory, nil)
	smartSelection := smartSelector.SelectContent(rootDirectory, nil)
	if customSelection != smartSelection {
		testingHandle.Fatalf("empty custom selection diverged from smart:\ncustom:\n%s\nsmart:\n%s", customSelection, smartSelection)
	}
}

// TestSelectContentCustomPaths verifies that custom mode includes listed
// files directly and walks listed directories.
func TestSelectContentCustomPaths(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "target.txt"), "target content")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "other.txt"), "other content")
	makeTestDirectory(testingHandle, filepath.Join(rootDirectory, "sub"))
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "sub", "inner.txt"), "inner content")

	selector := newTestSelector(types.SelectionModeCustom, nil, nil)
	selected := selector.SelectContent(rootDirectory, []string{"target.txt", "sub"})

	if !strings.Contains(selected, "FILE: target.txt") {
		testingHandle.Fatalf("custom selection missing listed file:\n%s", selected)
	}
	if !strings.Contains(selected, "FILE: sub/inner.txt") {
		testingHandle.Fatalf("custom selection missing directory contents:\n%s", selected)
	}
	if strings.Contains(selected, "other.txt") {
		testingHandle.Fatalf("unlisted file must not be included:\n%s", selected)
	}
}

// TestSelectContentExcludesWhitespaceOnlyFiles verifies that empty and
// all-whitespace files never produce a block.
func TestSelectContentExcludesWhitespaceOnlyFiles(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "blank.txt"), "   \n\t\n")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "empty.txt"), "")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "real.txt"), "content")

	selector := newTestSelector(types.SelectionModeAll, nil, nil)
	selected := selector.SelectContent(rootDirectory, nil)

	if strings.Contains(selected, "blank.txt") || strings.Contains(selected, "empty.txt") {
		testingHandle.Fatalf("whitespace-only files must be excluded:\n%s", selected)
	}
	if !strings.Contains(selected, "FILE: real.txt") {
		testingHandle.Fatalf("non-empty file missing:\n%s", selected)
	}
}

// TestShouldIgnoreFile exercises suffix and exact-name pattern semantics.
func TestShouldIgnoreFile(testingHandle *testing.T) {
	ignorePatterns := map[string]struct{}{"*.log": {}, ".DS_Store": {}}
	testCases := []struct {
		fileName string
		expected bool
	}{
		{fileName: "server.log", expected: true},
		{fileName: ".DS_Store", expected: true},
		{fileName: "server.log.txt", expected: false},
		{fileName: "main.go", expected: false},
	}
	for _, testCase := range testCases {
		if actual := commands.ShouldIgnoreFile(testCase.fileName, ignorePatterns); actual != testCase.expected {
			testingHandle.Fatalf("ShouldIgnoreFile(%q) = %v, want %v", testCase.fileName, actual, testCase.expected)
		}
	}
}

// TestIsImportantFile exercises the smart-mode importance rules.
func TestIsImportantFile(testingHandle *testing.T) {
	testCases := []struct {
		fileName string
		expected bool
	}{
		{fileName: "README.md", expected: true},
		{fileName: "go.mod", expected: true},
		{fileName: "Dockerfile", expected: true},
		{fileName: "main.py", expected: true},
		{fileName: "schema.sql", expected: true},
		{fileName: "notes.bin", expected: false},
		{fileName: "archive.tar.gz", expected: false},
	}
	for _, testCase := range testCases {
		if actual := commands.IsImportantFile(testCase.fileName); actual != testCase.expected {
			testingHandle.Fatalf("IsImportantFile(%q) = %v, want %v", testCase.fileName, actual, testCase.expected)
		}
	}
}
