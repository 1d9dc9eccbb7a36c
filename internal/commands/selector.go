package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/temirov/toolbelt/internal/types"
)

const (
	// fileSeparatorWidth is the width of the per-file separator line.
	fileSeparatorWidth = 60
	// fileHeaderFormat names the file inside its block, relative to the project root.
	fileHeaderFormat = "FILE: %s"
	// truncationSuffix is appended to a file whose content exceeded the per-file cap.
	truncationSuffix = "\n\n...[File truncated due to size]..."
	// totalLimitNotice is emitted exactly once when the aggregate budget is exceeded.
	totalLimitNotice = "\n[Total size limit reached. Some files omitted.]\n"
	// undecodableReplacement substitutes bytes that are not valid UTF-8.
	undecodableReplacement = "�"

	warningReadFileFormat   = "Warning: failed to read file %s: %v\n"
	warningAccessPathFormat = "Warning: error accessing path %s: %v\n"
)

// importantFilePatterns are the glob patterns smart mode always considers important.
var importantFilePatterns = []string{
	"README*", "readme*",
	"go.mod", "Makefile", "Dockerfile",
	"requirements*.txt", "pyproject.toml", "package.json",
	"setup.py", "setup.cfg",
	"*.go", "*.py", "*.js", "*.ts", "*.jsx", "*.tsx",
	"*.html", "*.css",
	"*.json", "*.yaml", "*.yml",
}

// priorityExtensions are the extensions smart mode includes regardless of name.
var priorityExtensions = map[string]struct{}{
	".go": {}, ".rs": {}, ".rb": {}, ".php": {},
	".py": {}, ".js": {}, ".jsx": {}, ".ts": {}, ".tsx": {},
	".html": {}, ".htm": {}, ".css": {}, ".scss": {}, ".sass": {},
	".json": {}, ".yaml": {}, ".yml": {}, ".toml": {},
	".md": {}, ".txt": {}, ".rst": {},
	".sql": {}, ".graphql": {}, ".gql": {},
	".java": {}, ".cpp": {}, ".c": {}, ".h": {}, ".hpp": {},
	".cs": {}, ".swift": {}, ".kt": {}, ".dart": {},
}

// Selector selects and formats file content under a project root according to
// a FilterConfiguration. GitIgnore is an optional overlay: when present, any
// path it matches is excluded in addition to the configured ignore sets.
type Selector struct {
	Configuration types.FilterConfiguration
	GitIgnore     gitignore.IgnoreParser
}

// SelectContent returns the formatted content blocks for one selection pass.
// The mode comes from the configuration; customPaths is consulted only in
// custom mode, and an empty list falls back to smart selection.
func (selector *Selector) SelectContent(rootPath string, customPaths []string) string {
	switch selector.Configuration.SelectionMode {
	case types.SelectionModeAll:
		return selector.selectAll(rootPath)
	case types.SelectionModeCustom:
		if len(customPaths) == 0 {
			return selector.selectSmart(rootPath)
		}
		return selector.selectCustom(rootPath, customPaths)
	default:
		return selector.selectSmart(rootPath)
	}
}

// selectSmart walks the root and includes only important files.
func (selector *Selector) selectSmart(rootPath string) string {
	accumulator := newContentAccumulator(selector.Configuration.MaxTotalBytes)
	selector.walkInto(rootPath, rootPath, accumulator, true)
	return accumulator.text()
}

// selectAll walks the root and includes every non-ignored file.
func (selector *Selector) selectAll(rootPath string) string {
	accumulator := newContentAccumulator(selector.Configuration.MaxTotalBytes)
	selector.walkInto(rootPath, rootPath, accumulator, false)
	return accumulator.text()
}

// selectCustom includes the listed files directly and walks listed
// directories with the same pruning rules as selectAll. The aggregate budget
// spans the whole pass, so a single truncation notice ends it.
func (selector *Selector) selectCustom(rootPath string, customPaths []string) string {
	accumulator := newContentAccumulator(selector.Configuration.MaxTotalBytes)
	for _, customPath := range customPaths {
		if accumulator.exceeded {
			break
		}
		absolutePath := customPath
		if !filepath.IsAbs(absolutePath) {
			absolutePath = filepath.Join(rootPath, customPath)
		}
		pathInfo, statError := os.Stat(absolutePath)
		if statError != nil {
			fmt.Fprintf(os.Stderr, warningAccessPathFormat, absolutePath, statError)
			continue
		}
		if pathInfo.IsDir() {
			selector.walkInto(absolutePath, rootPath, accumulator, false)
			continue
		}
		selector.appendFile(absolutePath, rootPath, accumulator)
	}
	return accumulator.text()
}

// walkInto traverses startPath depth-first, pruning ignored directories, and
// appends every eligible file until the aggregate budget is exceeded.
func (selector *Selector) walkInto(startPath string, rootPath string, accumulator *contentAccumulator, smartOnly bool) {
	walkError := filepath.WalkDir(startPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			fmt.Fprintf(os.Stderr, warningAccessPathFormat, walkedPath, accessError)
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		entryName := directoryEntry.Name()
		if directoryEntry.IsDir() {
			if walkedPath == startPath {
				return nil
			}
			if _, ignored := selector.Configuration.IgnoreDirectories[entryName]; ignored {
				return filepath.SkipDir
			}
			if selector.matchesGitIgnore(walkedPath, rootPath) {
				return filepath.SkipDir
			}
			return nil
		}
		if ShouldIgnoreFile(entryName, selector.Configuration.IgnoreFilePatterns) {
			return nil
		}
		if selector.matchesGitIgnore(walkedPath, rootPath) {
			return nil
		}
		if smartOnly && !IsImportantFile(entryName) {
			return nil
		}
		if !selector.appendFile(walkedPath, rootPath, accumulator) {
			return filepath.SkipAll
		}
		return nil
	})
	if walkError != nil {
		fmt.Fprintf(os.Stderr, warningAccessPathFormat, startPath, walkError)
	}
}

// appendFile reads one file and adds its formatted block to the accumulator.
// It returns false once the aggregate budget has been exceeded.
func (selector *Selector) appendFile(filePath string, rootPath string, accumulator *contentAccumulator) bool {
	content, readable := readFileCapped(filePath, selector.Configuration.MaxFileBytes)
	if !readable {
		return true
	}
	relativePath := relativePathOrSelf(filePath, rootPath)
	return accumulator.add(relativePath, content)
}

// matchesGitIgnore applies the optional .gitignore overlay to a path.
func (selector *Selector) matchesGitIgnore(fullPath string, rootPath string) bool {
	if selector.GitIgnore == nil {
		return false
	}
	return selector.GitIgnore.MatchesPath(relativePathOrSelf(fullPath, rootPath))
}

// ShouldIgnoreFile reports whether a file name matches an ignore pattern.
// A pattern beginning with '*' matches any name ending with its remainder;
// every other pattern requires an exact name match.
func ShouldIgnoreFile(fileName string, ignorePatterns map[string]struct{}) bool {
	for pattern := range ignorePatterns {
		if strings.HasPrefix(pattern, "*") {
			if strings.HasSuffix(fileName, strings.TrimPrefix(pattern, "*")) {
				return true
			}
			continue
		}
		if fileName == pattern {
			return true
		}
	}
	return false
}

// IsImportantFile reports whether smart mode includes the named file, either
// through the important glob patterns or through the priority extension set.
func IsImportantFile(fileName string) bool {
	for _, pattern := range importantFilePatterns {
		isMatched, matchError := filepath.Match(pattern, fileName)
		if matchError == nil && isMatched {
			return true
		}
	}
	extension := strings.ToLower(filepath.Ext(fileName))
	_, isPriority := priorityExtensions[extension]
	return isPriority
}

// readFileCapped reads up to twice maxFileBytes from the file, truncates the
// content to maxFileBytes with a marker when it exceeds the cap (backing off
// to the previous rune boundary when the cut lands inside one), and replaces
// undecodable bytes. Empty or all-whitespace content is reported unreadable
// so the caller excludes the file. Read failures are warnings, not faults.
func readFileCapped(filePath string, maxFileBytes int) (string, bool) {
	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		fmt.Fprintf(os.Stderr, warningReadFileFormat, filePath, openError)
		return "", false
	}
	defer fileHandle.Close()

	rawContent, readError := io.ReadAll(io.LimitReader(fileHandle, int64(maxFileBytes)*2))
	if readError != nil {
		fmt.Fprintf(os.Stderr, warningReadFileFormat, filePath, readError)
		return "", false
	}

	truncated := false
	if len(rawContent) > maxFileBytes {
		rawContent = trimPartialRune(rawContent[:maxFileBytes])
		truncated = true
	}
	content := rawContent
	if !utf8.Valid(content) {
		content = []byte(strings.ToValidUTF8(string(content), undecodableReplacement))
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", false
	}
	if truncated {
		return string(content) + truncationSuffix, true
	}
	return string(content), true
}

// trimPartialRune drops a trailing multi-byte sequence the byte cut left
// incomplete, so truncation never fabricates a replacement character.
// Genuinely invalid bytes are kept for the lossy conversion.
func trimPartialRune(content []byte) []byte {
	for backOffset := 1; backOffset <= utf8.UTFMax && backOffset <= len(content); backOffset++ {
		startIndex := len(content) - backOffset
		if !utf8.RuneStart(content[startIndex]) {
			continue
		}
		if utf8.FullRune(content[startIndex:]) {
			return content
		}
		return content[:startIndex]
	}
	return content
}

// relativePathOrSelf returns fullPath relative to root, or the cleaned
// fullPath if the relative form cannot be computed.
func relativePathOrSelf(fullPath string, root string) string {
	relativePath, relativeError := filepath.Rel(root, fullPath)
	if relativeError != nil {
		return filepath.Clean(fullPath)
	}
	return filepath.ToSlash(relativePath)
}

// contentAccumulator tracks the emitted blocks and enforces the aggregate
// budget: the first file whose content pushes the running total past the
// budget is dropped, the notice is appended, and the pass ends.
type contentAccumulator struct {
	builder       strings.Builder
	totalBytes    int
	maxTotalBytes int
	exceeded      bool
}

func newContentAccumulator(maxTotalBytes int) *contentAccumulator {
	return &contentAccumulator{maxTotalBytes: maxTotalBytes}
}

// add appends one formatted file block unless the budget is exceeded.
// It returns false exactly once, when the notice has been written.
func (accumulator *contentAccumulator) add(relativePath string, content string) bool {
	if accumulator.exceeded {
		return false
	}
	accumulator.totalBytes += len(content)
	if accumulator.totalBytes > accumulator.maxTotalBytes {
		accumulator.builder.WriteString(totalLimitNotice)
		accumulator.exceeded = true
		return false
	}
	accumulator.builder.WriteString(FormatFileBlock(relativePath, content))
	return true
}

// text returns the accumulated output of the pass.
func (accumulator *contentAccumulator) text() string {
	return accumulator.builder.String()
}

// FormatFileBlock renders one file as a separator line, a header naming the
// file relative to the project root, the separator again, the content, and a
// trailing blank line.
func FormatFileBlock(relativePath string, content string) string {
	separator := strings.Repeat("=", fileSeparatorWidth)
	return fmt.Sprintf("\n%s\n"+fileHeaderFormat+"\n%s\n%s\n", separator, relativePath, separator, content)
}
