// Package types defines the cross-package data structures used by the toolbelt CLI.
package types

// SelectionMode identifies a file-inclusion policy for context generation.
type SelectionMode string

const (
	// SelectionModeSmart includes only files matching the important-pattern and priority-extension sets.
	SelectionModeSmart SelectionMode = "smart"
	// SelectionModeAll includes every file not excluded by an ignore pattern.
	SelectionModeAll SelectionMode = "all"
	// SelectionModeCustom includes an explicit operator-supplied list of paths.
	SelectionModeCustom SelectionMode = "custom"
)

// Tool is the capability contract every plugin satisfies. A tool performs its
// entire interactive session inside Run and returns control to the dispatcher.
type Tool interface {
	Name() string
	Description() string
	Run() error
}

// FileRecord describes one file discovered during a directory walk. Records
// are built fresh per walk, read-only afterward, and discarded when the
// owning tool's run ends.
type FileRecord struct {
	RelativePath string
	AbsolutePath string
	SizeBytes    int64
}

// FilterConfiguration controls tree rendering and content selection for one
// context-generation pass. IgnoreDirectories and IgnoreFilePatterns have
// membership-only semantics; MaxFileBytes and MaxTotalBytes must be positive.
type FilterConfiguration struct {
	IgnoreDirectories  map[string]struct{}
	IgnoreFilePatterns map[string]struct{}
	SelectionMode      SelectionMode
	MaxFileBytes       int
	MaxTotalBytes      int
}
