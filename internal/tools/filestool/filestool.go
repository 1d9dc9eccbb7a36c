// Package filestool implements the file operations tool: project listing
// with search and export, copy/move/delete with confirmation, file
// information, and file/folder creation.
package filestool

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/temirov/toolbelt/internal/prompt"
	"github.com/temirov/toolbelt/internal/services/clipboard"
	"github.com/temirov/toolbelt/internal/types"
	"github.com/temirov/toolbelt/internal/utils"
)

const (
	toolName        = "File Operations"
	toolDescription = "List, search, copy, move, delete files and folders"

	sessionHeader = "FILE OPERATIONS"

	detailListLimit = 100
	pathsOnlyLimit  = 50

	backOption = "8"
)

// Tool performs interactive file and folder operations.
type Tool struct {
	interactor *prompt.Interactor
	copier     clipboard.Copier
	logger     *zap.Logger
}

// New constructs the file operations tool.
func New(interactor *prompt.Interactor, copier clipboard.Copier, logger *zap.Logger) *Tool {
	return &Tool{
		interactor: interactor,
		copier:     copier,
		logger:     logger,
	}
}

// Name returns the display name.
func (tool *Tool) Name() string { return toolName }

// Description returns the display description.
func (tool *Tool) Description() string { return toolDescription }

// Run displays the file operations sub-menu until the operator goes back.
func (tool *Tool) Run() error {
	for {
		tool.interactor.PrintHeader(sessionHeader)
		tool.interactor.Println("\n1. List project files")
		tool.interactor.Println("2. Copy file/folder")
		tool.interactor.Println("3. Move file/folder")
		tool.interactor.Println("4. Delete file/folder")
		tool.interactor.Println("5. File information")
		tool.interactor.Println("6. Create new folder")
		tool.interactor.Println("7. Create new file")
		tool.interactor.Println("8. Back to Main Menu")

		choice := tool.interactor.Ask("\nSelect option (1-8): ")
		switch choice {
		case "1":
			tool.listProjectFiles()
		case "2":
			tool.copyPath()
		case "3":
			tool.movePath()
		case "4":
			tool.deletePath()
		case "5":
			tool.pathInformation()
		case "6":
			tool.createFolder()
		case "7":
			tool.createFile()
		case backOption, "":
			return nil
		default:
			tool.interactor.Println("Invalid option")
		}
	}
}

// CollectFileRecords walks the root and returns records for every visible
// file, sorted by relative path, plus the aggregate size. Hidden entries are
// skipped; unreadable entries are dropped.
func CollectFileRecords(rootPath string) ([]types.FileRecord, int64) {
	var records []types.FileRecord
	var totalBytes int64

	_ = filepath.WalkDir(rootPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		entryName := directoryEntry.Name()
		if strings.HasPrefix(entryName, ".") && walkedPath != rootPath {
			if directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if directoryEntry.IsDir() {
			return nil
		}
		entryInfo, infoError := directoryEntry.Info()
		if infoError != nil {
			return nil
		}
		relativePath, relativeError := filepath.Rel(rootPath, walkedPath)
		if relativeError != nil {
			relativePath = walkedPath
		}
		records = append(records, types.FileRecord{
			RelativePath: filepath.ToSlash(relativePath),
			AbsolutePath: walkedPath,
			SizeBytes:    entryInfo.Size(),
		})
		totalBytes += entryInfo.Size()
		return nil
	})

	sort.Slice(records, func(firstIndex, secondIndex int) bool {
		return records[firstIndex].RelativePath < records[secondIndex].RelativePath
	})
	return records, totalBytes
}

// listProjectFiles walks the working directory and offers display, search,
// and export options over the listing.
func (tool *Tool) listProjectFiles() {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		tool.interactor.Printf("Cannot determine working directory: %v\n", workingDirectoryError)
		return
	}
	tool.interactor.Printf("Current directory: %s\n", workingDirectory)
	tool.interactor.Println("\nScanning files...")

	records, totalBytes := CollectFileRecords(workingDirectory)
	if len(records) == 0 {
		tool.interactor.Println("No files found.")
		return
	}
	tool.interactor.Printf("\nFound %s files (%s)\n", humanize.Comma(int64(len(records))), utils.FormatSize(totalBytes))

	tool.interactor.Println("\nDisplay options:")
	tool.interactor.Println("1. Show all files with details")
	tool.interactor.Println("2. Show only file paths (for copying)")
	tool.interactor.Println("3. Search for specific files")
	tool.interactor.Println("4. Export list to file")
	displayChoice := tool.interactor.Ask("\nSelect option (1-4): ")

	switch displayChoice {
	case "2":
		tool.showPathsOnly(records)
	case "3":
		tool.searchRecords(records)
	case "4":
		tool.exportRecords(records, workingDirectory)
	default:
		tool.showRecordDetails(records)
	}
}

// showRecordDetails prints a numbered size/path table and offers clipboard
// copies of individual or all paths.
func (tool *Tool) showRecordDetails(records []types.FileRecord) {
	tool.interactor.Println("\nFiles with details:")
	tool.interactor.Println(strings.Repeat("-", 80))
	tool.interactor.Printf("%-4s %-12s %s\n", "No.", "Size", "Path")
	tool.interactor.Println(strings.Repeat("-", 80))
	for recordIndex, record := range records {
		if recordIndex >= detailListLimit {
			tool.interactor.Printf("... and %d more files\n", len(records)-detailListLimit)
			break
		}
		tool.interactor.Printf("%-4d %-12s %s\n", recordIndex+1, utils.FormatSize(record.SizeBytes), record.RelativePath)
	}
	tool.interactor.Println(strings.Repeat("-", 80))

	tool.interactor.Println("\nEnter file number to copy its path, 'a' for all paths, 'q' to quit")
	for {
		choice := strings.ToLower(tool.interactor.Ask("\nSelect file number (or q to quit): "))
		switch {
		case choice == "q", choice == "":
			return
		case choice == "a":
			tool.copyTextToClipboard(joinedPaths(records), fmt.Sprintf("%d paths", len(records)))
			return
		default:
			recordNumber, parseError := strconv.Atoi(choice)
			if parseError != nil || recordNumber < 1 || recordNumber > len(records) {
				tool.interactor.Println("Invalid file number")
				continue
			}
			tool.copyTextToClipboard(records[recordNumber-1].RelativePath, records[recordNumber-1].RelativePath)
		}
	}
}

// showPathsOnly prints bare relative paths for easy copying.
func (tool *Tool) showPathsOnly(records []types.FileRecord) {
	tool.interactor.Println("\nFile paths:")
	tool.interactor.Println(strings.Repeat("-", 60))
	for recordIndex, record := range records {
		if recordIndex >= pathsOnlyLimit {
			tool.interactor.Printf("... and %d more files\n", len(records)-pathsOnlyLimit)
			break
		}
		tool.interactor.Println(record.RelativePath)
	}
	tool.interactor.Println(strings.Repeat("-", 60))
	if tool.interactor.Confirm("\nCopy all paths to clipboard? (y/n): ") {
		tool.copyTextToClipboard(joinedPaths(records), fmt.Sprintf("%d paths", len(records)))
	}
}

// searchRecords filters the listing by fuzzy name match, extension, or size
// range and shows the matches.
func (tool *Tool) searchRecords(records []types.FileRecord) {
	tool.interactor.Println("\nSearch files:")
	tool.interactor.Println("1. Search by filename (fuzzy)")
	tool.interactor.Println("2. Search by extension")
	tool.interactor.Println("3. Search by size range")
	searchChoice := tool.interactor.Ask("\nSelect search type (1-3): ")

	var results []types.FileRecord
	switch searchChoice {
	case "1":
		pattern := tool.interactor.Ask("Enter filename or part of filename: ")
		if pattern == "" {
			tool.interactor.Println("Search term cannot be empty.")
			return
		}
		results = FuzzySearch(records, pattern)
	case "2":
		extension := strings.ToLower(tool.interactor.Ask("Enter extension (e.g., .go, .txt): "))
		if extension != "" && !strings.HasPrefix(extension, ".") {
			extension = "." + extension
		}
		for _, record := range records {
			if strings.ToLower(filepath.Ext(record.RelativePath)) == extension {
				results = append(results, record)
			}
		}
	case "3":
		minimumBytes, maximumBytes, rangeError := tool.askSizeRange()
		if rangeError != nil {
			tool.interactor.Printf("Invalid size input: %v\n", rangeError)
			return
		}
		for _, record := range records {
			if record.SizeBytes >= minimumBytes && record.SizeBytes <= maximumBytes {
				results = append(results, record)
			}
		}
	default:
		tool.interactor.Println("Invalid choice")
		return
	}

	if len(results) == 0 {
		tool.interactor.Println("\nNo files found.")
		return
	}
	tool.interactor.Printf("\n%d files found\n", len(results))
	tool.showRecordDetails(results)
}

// FuzzySearch ranks records against the pattern by fuzzy-matching their
// relative paths, best matches first.
func FuzzySearch(records []types.FileRecord, pattern string) []types.FileRecord {
	relativePaths := make([]string, len(records))
	for recordIndex, record := range records {
		relativePaths[recordIndex] = record.RelativePath
	}
	matches := fuzzy.Find(pattern, relativePaths)
	results := make([]types.FileRecord, 0, len(matches))
	for _, match := range matches {
		results = append(results, records[match.Index])
	}
	return results
}

// askSizeRange reads the optional minimum and maximum sizes in kilobytes.
func (tool *Tool) askSizeRange() (int64, int64, error) {
	minimumAnswer := tool.interactor.Ask("Minimum size in KB (press Enter for 0): ")
	maximumAnswer := tool.interactor.Ask("Maximum size in KB (press Enter for no limit): ")

	var minimumBytes int64
	if minimumAnswer != "" {
		minimumKilobytes, parseError := strconv.ParseFloat(minimumAnswer, 64)
		if parseError != nil {
			return 0, 0, parseError
		}
		minimumBytes = int64(minimumKilobytes * 1024)
	}
	maximumBytes := int64(1) << 62
	if maximumAnswer != "" {
		maximumKilobytes, parseError := strconv.ParseFloat(maximumAnswer, 64)
		if parseError != nil {
			return 0, 0, parseError
		}
		maximumBytes = int64(maximumKilobytes * 1024)
	}
	return minimumBytes, maximumBytes, nil
}

// exportRecords writes the listing to a file in plain, detailed, or CSV form.
func (tool *Tool) exportRecords(records []types.FileRecord, workingDirectory string) {
	filename := tool.interactor.Ask("\nEnter output filename [file_list.txt]: ")
	if filename == "" {
		filename = "file_list.txt"
	}
	tool.interactor.Println("\nExport options:")
	tool.interactor.Println("1. Simple list (paths only)")
	tool.interactor.Println("2. Detailed list (with sizes)")
	tool.interactor.Println("3. CSV format")
	formatChoice := tool.interactor.Ask("\nSelect format (1-3): ")

	outputFile, createError := os.Create(filename)
	if createError != nil {
		tool.interactor.Printf("Failed to export file list: %v\n", createError)
		return
	}
	defer outputFile.Close()

	var totalBytes int64
	for _, record := range records {
		totalBytes += record.SizeBytes
	}
	fmt.Fprintf(outputFile, "File list for: %s\n", workingDirectory)
	fmt.Fprintf(outputFile, "Generated on: %s\n", utils.Timestamp())
	fmt.Fprintf(outputFile, "Total files: %d\n", len(records))
	fmt.Fprintf(outputFile, "Total size: %s\n", utils.FormatSize(totalBytes))
	fmt.Fprintf(outputFile, "%s\n\n", strings.Repeat("=", 80))

	var exportError error
	switch formatChoice {
	case "2":
		for _, record := range records {
			fmt.Fprintf(outputFile, "%-12s %s\n", utils.FormatSize(record.SizeBytes), record.RelativePath)
		}
	case "3":
		exportError = writeRecordsCSV(outputFile, records)
	default:
		for _, record := range records {
			fmt.Fprintln(outputFile, record.RelativePath)
		}
	}
	if exportError != nil {
		tool.interactor.Printf("Failed to export file list: %v\n", exportError)
		return
	}

	absolutePath, _ := filepath.Abs(filename)
	tool.interactor.Printf("File list exported to: %s\n", absolutePath)
}

// writeRecordsCSV emits the listing as path,bytes,human rows.
func writeRecordsCSV(output io.Writer, records []types.FileRecord) error {
	csvWriter := csv.NewWriter(output)
	if headerError := csvWriter.Write([]string{"Path", "Size(bytes)", "Size(human)"}); headerError != nil {
		return headerError
	}
	for _, record := range records {
		row := []string{record.RelativePath, strconv.FormatInt(record.SizeBytes, 10), utils.FormatSize(record.SizeBytes)}
		if rowError := csvWriter.Write(row); rowError != nil {
			return rowError
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// copyPath copies a file or folder after confirmation, with overwrite/rename
// handling and size verification.
func (tool *Tool) copyPath() {
	sourcePath, sourceInfo, resolved := tool.askExistingPath("\nEnter source file/folder path: ")
	if !resolved {
		return
	}

	suggestedDestination := filepath.Join(filepath.Dir(sourcePath), "copy_of_"+filepath.Base(sourcePath))
	destinationPath := tool.interactor.Ask(fmt.Sprintf("Enter destination path [%s]: ", suggestedDestination))
	if destinationPath == "" {
		destinationPath = suggestedDestination
	}
	destinationPath = tool.absolutePath(destinationPath)

	destinationPath, proceed := tool.resolveDestinationConflict(destinationPath)
	if !proceed {
		return
	}

	sourceSize := pathSize(sourcePath)
	tool.interactor.Println("\nCopy details:")
	tool.interactor.Printf("   Source: %s\n", sourcePath)
	tool.interactor.Printf("   Destination: %s\n", destinationPath)
	tool.interactor.Printf("   Size: %s\n", utils.FormatSize(sourceSize))
	if !tool.interactor.Confirm("\nConfirm copy? (y/n): ") {
		tool.interactor.Println("Operation cancelled.")
		return
	}

	var copyError error
	if sourceInfo.IsDir() {
		copyError = copyDirectory(sourcePath, destinationPath)
	} else {
		copyError = copyFile(sourcePath, destinationPath)
	}
	if copyError != nil {
		tool.interactor.Printf("Copy failed: %v\n", copyError)
		return
	}
	tool.interactor.Printf("Copied successfully (%s -> %s)\n",
		utils.FormatSize(sourceSize), utils.FormatSize(pathSize(destinationPath)))
}

// movePath moves a file or folder into a destination directory.
func (tool *Tool) movePath() {
	sourcePath, _, resolved := tool.askExistingPath("\nEnter source file/folder path: ")
	if !resolved {
		return
	}

	destinationDirectory := tool.interactor.Ask("Enter destination directory: ")
	if destinationDirectory == "" {
		tool.interactor.Println("Destination cannot be empty.")
		return
	}
	destinationDirectory = tool.absolutePath(destinationDirectory)

	if _, statError := os.Stat(destinationDirectory); statError != nil {
		if !tool.interactor.Confirm("Destination directory doesn't exist. Create it? (y/n): ") {
			tool.interactor.Println("Operation cancelled.")
			return
		}
		if makeError := os.MkdirAll(destinationDirectory, 0o755); makeError != nil {
			tool.interactor.Printf("Failed to create directory: %v\n", makeError)
			return
		}
	}

	destinationPath := filepath.Join(destinationDirectory, filepath.Base(sourcePath))
	destinationPath, proceed := tool.resolveDestinationConflict(destinationPath)
	if !proceed {
		return
	}

	if !tool.interactor.Confirm(fmt.Sprintf("\nMove %s to %s? (y/n): ", sourcePath, destinationPath)) {
		tool.interactor.Println("Operation cancelled.")
		return
	}
	if moveError := os.Rename(sourcePath, destinationPath); moveError != nil {
		tool.interactor.Printf("Move failed: %v\n", moveError)
		return
	}
	tool.interactor.Println("Moved successfully.")
}

// deletePath removes a file or folder after a safety check and confirmation.
func (tool *Tool) deletePath() {
	targetPath, targetInfo, resolved := tool.askExistingPath("\nEnter file/folder path to delete: ")
	if !resolved {
		return
	}

	tool.interactor.Println("\nTarget information:")
	tool.interactor.Printf("   Path: %s\n", targetPath)
	tool.interactor.Printf("   Type: %s\n", pathKind(targetInfo))
	tool.interactor.Printf("   Size: %s\n", utils.FormatSize(pathSize(targetPath)))
	tool.interactor.Printf("   Modified: %s\n", humanize.Time(targetInfo.ModTime()))

	if isProtectedPath(targetPath) {
		tool.interactor.Println("\nWARNING: you're about to delete an important path!")
		if tool.interactor.Ask("Are you ABSOLUTELY sure? (type 'YES' to confirm): ") != "YES" {
			tool.interactor.Println("Operation cancelled.")
			return
		}
	} else if !tool.interactor.Confirm("\nAre you sure you want to delete this? (y/n): ") {
		tool.interactor.Println("Operation cancelled.")
		return
	}

	var removeError error
	if targetInfo.IsDir() {
		removeError = os.RemoveAll(targetPath)
	} else {
		removeError = os.Remove(targetPath)
	}
	if removeError != nil {
		tool.interactor.Printf("Deletion failed: %v\n", removeError)
		tool.logger.Warn("delete failed", zap.String("path", targetPath), zap.Error(removeError))
		return
	}
	tool.interactor.Printf("Deleted: %s\n", targetPath)
}

// pathInformation prints details about a file or folder.
func (tool *Tool) pathInformation() {
	targetPath, targetInfo, resolved := tool.askExistingPath("\nEnter file/folder path: ")
	if !resolved {
		return
	}

	tool.interactor.Println("\nBasic Information:")
	tool.interactor.Printf("   Path: %s\n", targetPath)
	tool.interactor.Printf("   Name: %s\n", filepath.Base(targetPath))
	tool.interactor.Printf("   Type: %s\n", pathKind(targetInfo))
	if !targetInfo.IsDir() {
		tool.interactor.Printf("   Extension: %s\n", filepath.Ext(targetPath))
		if utils.IsFileBinary(targetPath) {
			tool.interactor.Println("   Content: binary")
		} else {
			tool.interactor.Println("   Content: text")
		}
	}

	size := pathSize(targetPath)
	tool.interactor.Println("\nSize Information:")
	tool.interactor.Printf("   Size: %s (%s bytes)\n", utils.FormatSize(size), humanize.Comma(size))

	if targetInfo.IsDir() {
		fileCount, directoryCount := countContents(targetPath)
		tool.interactor.Printf("   Contains: %d files, %d folders\n", fileCount, directoryCount)
	}

	tool.interactor.Println("\nTime Information:")
	tool.interactor.Printf("   Modified: %s (%s)\n", utils.FormatTimestamp(targetInfo.ModTime()), humanize.Time(targetInfo.ModTime()))

	tool.interactor.Println("\nPermission Information:")
	tool.interactor.Printf("   Mode: %s\n", targetInfo.Mode().String())
}

// createFolder creates a directory, optionally with a README.
func (tool *Tool) createFolder() {
	folderName := tool.interactor.Ask("\nEnter folder name: ")
	if folderName == "" {
		tool.interactor.Println("Folder name cannot be empty.")
		return
	}
	folderPath := tool.absolutePath(folderName)
	if _, statError := os.Stat(folderPath); statError == nil {
		tool.interactor.Printf("Folder already exists: %s\n", folderPath)
		return
	}
	if makeError := os.MkdirAll(folderPath, 0o755); makeError != nil {
		tool.interactor.Printf("Failed to create folder: %v\n", makeError)
		return
	}
	tool.interactor.Printf("Folder created: %s\n", folderPath)

	if tool.interactor.Confirm("\nCreate README.txt in new folder? (y/n): ") {
		readmePath := filepath.Join(folderPath, "README.txt")
		readmeContent := fmt.Sprintf("Folder: %s\nCreated: %s\nPurpose:\n", folderName, utils.Timestamp())
		if writeError := os.WriteFile(readmePath, []byte(readmeContent), 0o644); writeError != nil {
			tool.interactor.Printf("Failed to create README.txt: %v\n", writeError)
			return
		}
		tool.interactor.Println("README.txt created.")
	}
}

// createFile creates a file with optional template content based on its
// extension.
func (tool *Tool) createFile() {
	fileName := tool.interactor.Ask("\nEnter file name (with extension): ")
	if fileName == "" {
		tool.interactor.Println("File name cannot be empty.")
		return
	}
	filePath := tool.absolutePath(fileName)
	if _, statError := os.Stat(filePath); statError == nil {
		if !tool.interactor.Confirm("File already exists. Overwrite? (y/n): ") {
			tool.interactor.Println("Operation cancelled.")
			return
		}
	}

	parentDirectory := filepath.Dir(filePath)
	if _, statError := os.Stat(parentDirectory); statError != nil {
		if !tool.interactor.Confirm("Parent directory doesn't exist. Create it? (y/n): ") {
			tool.interactor.Println("Operation cancelled.")
			return
		}
		if makeError := os.MkdirAll(parentDirectory, 0o755); makeError != nil {
			tool.interactor.Printf("Failed to create directory: %v\n", makeError)
			return
		}
	}

	content := ""
	if tool.interactor.Confirm("Start from a template for the extension? (y/n): ") {
		content = FileTemplate(filepath.Ext(fileName), filepath.Base(fileName))
	}
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		tool.interactor.Printf("Failed to create file: %v\n", writeError)
		return
	}
	tool.interactor.Printf("File created: %s (%s)\n", filePath, utils.FormatSize(int64(len(content))))
}

// FileTemplate returns starter content for a handful of known extensions and
// an empty string for everything else.
func FileTemplate(extension string, fileName string) string {
	baseName := strings.TrimSuffix(fileName, extension)
	switch strings.ToLower(extension) {
	case ".go":
		return fmt.Sprintf("package %s\n", strings.ReplaceAll(baseName, "-", "_"))
	case ".md":
		return fmt.Sprintf("# %s\n\nCreated on %s\n", baseName, utils.Timestamp())
	case ".txt":
		return fmt.Sprintf("%s\nCreated on %s\n", fileName, utils.Timestamp())
	case ".json":
		return "{\n}\n"
	case ".yaml", ".yml":
		return fmt.Sprintf("# %s\n", fileName)
	case ".sh":
		return "#!/usr/bin/env bash\nset -euo pipefail\n"
	default:
		return ""
	}
}

// askExistingPath prompts for a path, resolves it against the working
// directory, and requires it to exist.
func (tool *Tool) askExistingPath(question string) (string, os.FileInfo, bool) {
	enteredPath := tool.interactor.Ask(question)
	if enteredPath == "" {
		tool.interactor.Println("Path cannot be empty.")
		return "", nil, false
	}
	resolvedPath := tool.absolutePath(enteredPath)
	pathInfo, statError := os.Stat(resolvedPath)
	if statError != nil {
		tool.interactor.Printf("Path not found: %s\n", resolvedPath)
		return "", nil, false
	}
	return resolvedPath, pathInfo, true
}

// resolveDestinationConflict handles an existing destination with an
// overwrite/rename/cancel prompt. Renaming appends a numeric suffix.
func (tool *Tool) resolveDestinationConflict(destinationPath string) (string, bool) {
	if _, statError := os.Stat(destinationPath); statError != nil {
		return destinationPath, true
	}
	tool.interactor.Printf("Destination already exists: %s\n", destinationPath)
	action := strings.ToLower(tool.interactor.Ask("Overwrite, Rename, or Cancel? (o/r/c): "))
	switch action {
	case "o":
		return destinationPath, true
	case "r":
		extension := filepath.Ext(destinationPath)
		base := strings.TrimSuffix(destinationPath, extension)
		for suffix := 1; ; suffix++ {
			candidate := fmt.Sprintf("%s_%d%s", base, suffix, extension)
			if _, statError := os.Stat(candidate); statError != nil {
				tool.interactor.Printf("New destination: %s\n", candidate)
				return candidate, true
			}
		}
	default:
		tool.interactor.Println("Operation cancelled.")
		return "", false
	}
}

// absolutePath resolves a possibly relative path against the working directory.
func (tool *Tool) absolutePath(enteredPath string) string {
	if filepath.IsAbs(enteredPath) {
		return enteredPath
	}
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return enteredPath
	}
	return filepath.Join(workingDirectory, enteredPath)
}

// copyTextToClipboard copies text and reports the outcome to the operator.
func (tool *Tool) copyTextToClipboard(text string, label string) {
	if tool.copier == nil {
		tool.interactor.Println("Clipboard not available.")
		return
	}
	if copyError := tool.copier.Copy(text); copyError != nil {
		tool.interactor.Printf("Clipboard not available: %v\n", copyError)
		return
	}
	tool.interactor.Printf("Copied: %s\n", label)
}

// joinedPaths joins the relative paths of the records with newlines.
func joinedPaths(records []types.FileRecord) string {
	paths := make([]string, len(records))
	for recordIndex, record := range records {
		paths[recordIndex] = record.RelativePath
	}
	return strings.Join(paths, "\n")
}

// copyFile copies one file preserving its mode.
func copyFile(sourcePath string, destinationPath string) error {
	sourceInfo, statError := os.Stat(sourcePath)
	if statError != nil {
		return statError
	}
	sourceHandle, openError := os.Open(sourcePath)
	if openError != nil {
		return openError
	}
	defer sourceHandle.Close()

	destinationHandle, createError := os.OpenFile(destinationPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, sourceInfo.Mode().Perm())
	if createError != nil {
		return createError
	}
	defer destinationHandle.Close()

	if _, copyError := io.Copy(destinationHandle, sourceHandle); copyError != nil {
		return copyError
	}
	return destinationHandle.Close()
}

// copyDirectory recursively copies a directory tree.
func copyDirectory(sourcePath string, destinationPath string) error {
	return filepath.WalkDir(sourcePath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			return accessError
		}
		relativePath, relativeError := filepath.Rel(sourcePath, walkedPath)
		if relativeError != nil {
			return relativeError
		}
		targetPath := filepath.Join(destinationPath, relativePath)
		if directoryEntry.IsDir() {
			return os.MkdirAll(targetPath, 0o755)
		}
		return copyFile(walkedPath, targetPath)
	})
}

// pathSize returns the size of a file or the total size of a directory tree.
func pathSize(targetPath string) int64 {
	pathInfo, statError := os.Stat(targetPath)
	if statError != nil {
		return 0
	}
	if !pathInfo.IsDir() {
		return pathInfo.Size()
	}
	var totalBytes int64
	_ = filepath.WalkDir(targetPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil || directoryEntry.IsDir() {
			return nil
		}
		if entryInfo, infoError := directoryEntry.Info(); infoError == nil {
			totalBytes += entryInfo.Size()
		}
		return nil
	})
	return totalBytes
}

// countContents counts files and directories below a directory.
func countContents(directoryPath string) (int, int) {
	fileCount := 0
	directoryCount := 0
	_ = filepath.WalkDir(directoryPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			return nil
		}
		if walkedPath == directoryPath {
			return nil
		}
		if directoryEntry.IsDir() {
			directoryCount++
		} else {
			fileCount++
		}
		return nil
	})
	return fileCount, directoryCount
}

// pathKind names a file or folder for display.
func pathKind(pathInfo os.FileInfo) string {
	if pathInfo.IsDir() {
		return "Folder"
	}
	return "File"
}

// isProtectedPath guards against deleting the home directory, filesystem
// root, or the working directory and its parent.
func isProtectedPath(targetPath string) bool {
	protectedPaths := []string{string(os.PathSeparator)}
	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil {
		protectedPaths = append(protectedPaths, homeDirectory)
	}
	if workingDirectory, workingDirectoryError := os.Getwd(); workingDirectoryError == nil {
		protectedPaths = append(protectedPaths, workingDirectory, filepath.Dir(workingDirectory))
	}
	cleanTarget := filepath.Clean(targetPath)
	for _, protectedPath := range protectedPaths {
		if cleanTarget == filepath.Clean(protectedPath) {
			return true
		}
	}
	return false
}
