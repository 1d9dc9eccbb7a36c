package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/temirov/toolbelt/internal/utils"
)

// TestFormatSize exercises the 1024-based unit formatting.
func TestFormatSize(testingHandle *testing.T) {
	testCases := []struct {
		sizeBytes int64
		expected  string
	}{
		{sizeBytes: 0, expected: "0 B"},
		{sizeBytes: -5, expected: "0 B"},
		{sizeBytes: 1, expected: "1.00 B"},
		{sizeBytes: 1023, expected: "1023.00 B"},
		{sizeBytes: 1024, expected: "1.00 KB"},
		{sizeBytes: 1536, expected: "1.50 KB"},
		{sizeBytes: 1048576, expected: "1.00 MB"},
		{sizeBytes: 1073741824, expected: "1.00 GB"},
		{sizeBytes: 1099511627776, expected: "1.00 TB"},
	}
	for _, testCase := range testCases {
		if actual := utils.FormatSize(testCase.sizeBytes); actual != testCase.expected {
			testingHandle.Fatalf("FormatSize(%d) = %q, want %q", testCase.sizeBytes, actual, testCase.expected)
		}
	}
}

// TestFormatTimestamp verifies the document header layout and the zero-time case.
func TestFormatTimestamp(testingHandle *testing.T) {
	sampleTime := time.Date(2025, time.March, 9, 14, 30, 45, 0, time.Local)
	if actual := utils.FormatTimestamp(sampleTime); actual != "2025-03-09 14:30:45" {
		testingHandle.Fatalf("FormatTimestamp = %q", actual)
	}
	if actual := utils.FormatTimestamp(time.Time{}); actual != "" {
		testingHandle.Fatalf("zero time must format to empty, got %q", actual)
	}
}

// TestIsBinary exercises the content-based binary detection.
func TestIsBinary(testingHandle *testing.T) {
	testCases := []struct {
		label    string
		data     []byte
		expected bool
	}{
		{label: "empty", data: nil, expected: false},
		{label: "plain text", data: []byte("hello world"), expected: false},
		{label: "utf8 text", data: []byte("héllo wörld"), expected: false},
		{label: "null byte", data: []byte{'a', 0, 'b'}, expected: true},
		{label: "invalid utf8", data: []byte{0xff, 0xfe, 0xfd}, expected: true},
	}
	for _, testCase := range testCases {
		if actual := utils.IsBinary(testCase.data); actual != testCase.expected {
			testingHandle.Fatalf("IsBinary(%s) = %v, want %v", testCase.label, actual, testCase.expected)
		}
	}
}

// TestNewApplicationLogger verifies the logger builds and accepts writes.
func TestNewApplicationLogger(testingHandle *testing.T) {
	loggerInstance, loggerError := utils.NewApplicationLogger()
	if loggerError != nil {
		testingHandle.Fatalf("NewApplicationLogger failed: %v", loggerError)
	}
	loggerInstance.Info("logger construction check")
	if syncError := loggerInstance.Sync(); syncError != nil {
		testingHandle.Logf("sync on stderr reported: %v", syncError)
	}
}

// TestIsFileBinary verifies detection against files on disk.
func TestIsFileBinary(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()

	textPath := filepath.Join(rootDirectory, "notes.txt")
	if writeError := os.WriteFile(textPath, []byte("just text\n"), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write text file: %v", writeError)
	}
	binaryPath := filepath.Join(rootDirectory, "blob.bin")
	if writeError := os.WriteFile(binaryPath, []byte{0x00, 0x01, 0x02, 0xff}, 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write binary file: %v", writeError)
	}

	if utils.IsFileBinary(textPath) {
		testingHandle.Fatal("text file misdetected as binary")
	}
	if !utils.IsFileBinary(binaryPath) {
		testingHandle.Fatal("binary file not detected")
	}
	if utils.IsFileBinary(filepath.Join(rootDirectory, "missing")) {
		testingHandle.Fatal("missing file must not be reported binary")
	}
}
