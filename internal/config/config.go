// Package config provides the default filter settings for context generation
// and loads optional overrides from a toolbelt configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"

	"github.com/temirov/toolbelt/internal/types"
)

const (
	// DefaultMaxFileBytes caps the content included from a single file.
	DefaultMaxFileBytes = 10000
	// DefaultMaxTotalBytes caps the aggregate content of one generation pass.
	DefaultMaxTotalBytes = 50000
	// DefaultMaxTreeDepth bounds tree rendering recursion.
	DefaultMaxTreeDepth = 5

	// ConfigFileName is the base name of the optional configuration file.
	ConfigFileName = "toolbelt"
	// ConfigFileType is the format of the optional configuration file.
	ConfigFileType = "yaml"
	// configDirectoryName is the per-user configuration directory under $HOME/.config.
	configDirectoryName = "toolbelt"
)

// defaultIgnoreDirectoryNames lists directory names excluded from traversal.
// This is the single consolidated default set; callers extend it through
// MergeNames rather than maintaining their own copies.
var defaultIgnoreDirectoryNames = []string{
	".git", ".github", ".gitlab",
	".venv", "venv", "env", "virtualenv",
	"__pycache__", ".pytest_cache", ".mypy_cache",
	".idea", ".vscode", ".vs",
	"node_modules", "bower_components",
	"dist", "build", "out", "target",
	"vendor", "coverage", "logs", "migrations",
	"site-packages", ".eggs", "eggs",
}

// defaultIgnoreFilePatterns lists file names and trailing-wildcard patterns
// excluded from selection. A pattern beginning with '*' matches any file name
// ending with the remainder of the pattern.
var defaultIgnoreFilePatterns = []string{
	".DS_Store", "Thumbs.db", "desktop.ini",
	"package-lock.json", "yarn.lock", "pnpm-lock.yaml",
	"go.sum", "poetry.lock", "Pipfile.lock",
	"db.sqlite3", "database.db", "*.db",
	".env", ".env.local",
	".gitignore",
	"*.pyc", "*.pyo", "*.pyd",
	"*.so", "*.dll", "*.dylib", "*.exe",
	"*.log", "*.tmp", "*.temp",
	"*.cache", "*.swp", "*.swo",
}

// defaultCacheDirectoryNames lists directory names the cache cleaner removes.
var defaultCacheDirectoryNames = []string{
	"__pycache__", ".pytest_cache", ".mypy_cache",
}

// Settings mirrors the optional toolbelt configuration file. Every field
// extends or overrides a built-in default; absent fields keep the defaults.
type Settings struct {
	IgnoreDirectories []string `mapstructure:"ignore_directories"`
	IgnoreFiles       []string `mapstructure:"ignore_files"`
	CacheDirectories  []string `mapstructure:"cache_directories"`
	MaxFileBytes      int      `mapstructure:"max_file_bytes"`
	MaxTotalBytes     int      `mapstructure:"max_total_bytes"`
	TokenizerModel    string   `mapstructure:"tokenizer_model"`
}

// LoadOptions controls where the configuration file is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// LoadSettings reads the optional configuration file. A missing file yields
// zero-valued Settings and no error; a malformed file is an error.
func LoadSettings(options LoadOptions) (Settings, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType(ConfigFileType)

	if options.ExplicitFilePath != "" {
		viperInstance.SetConfigFile(options.ExplicitFilePath)
	} else {
		viperInstance.SetConfigName(ConfigFileName)
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			currentDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return Settings{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
			}
			workingDirectory = currentDirectory
		}
		viperInstance.AddConfigPath(workingDirectory)
		if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
			viperInstance.AddConfigPath(filepath.Join(homeDirectory, ".config", configDirectoryName))
		}
	}

	if readError := viperInstance.ReadInConfig(); readError != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if errors.As(readError, &notFoundError) || os.IsNotExist(readError) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("reading configuration: %w", readError)
	}

	var settings Settings
	if unmarshalError := viperInstance.Unmarshal(&settings); unmarshalError != nil {
		return Settings{}, fmt.Errorf("parsing configuration: %w", unmarshalError)
	}
	return settings, nil
}

// NewFilterConfiguration builds a FilterConfiguration from the built-in
// defaults, the loaded settings, and the requested selection mode.
func NewFilterConfiguration(settings Settings, mode types.SelectionMode) types.FilterConfiguration {
	configuration := types.FilterConfiguration{
		IgnoreDirectories:  MergeNames(NameSet(defaultIgnoreDirectoryNames), settings.IgnoreDirectories),
		IgnoreFilePatterns: MergeNames(NameSet(defaultIgnoreFilePatterns), settings.IgnoreFiles),
		SelectionMode:      mode,
		MaxFileBytes:       DefaultMaxFileBytes,
		MaxTotalBytes:      DefaultMaxTotalBytes,
	}
	if settings.MaxFileBytes > 0 {
		configuration.MaxFileBytes = settings.MaxFileBytes
	}
	if settings.MaxTotalBytes > 0 {
		configuration.MaxTotalBytes = settings.MaxTotalBytes
	}
	return configuration
}

// CacheDirectoryNames returns the cache-directory names the cleaner targets,
// extended with any configured additions.
func CacheDirectoryNames(settings Settings) []string {
	merged := MergeNames(NameSet(defaultCacheDirectoryNames), settings.CacheDirectories)
	return SortedNames(merged)
}

// NameSet converts a slice of names into a membership set.
func NameSet(names []string) map[string]struct{} {
	nameSet := make(map[string]struct{}, len(names))
	for _, name := range names {
		nameSet[name] = struct{}{}
	}
	return nameSet
}

// MergeNames returns a new set containing the base names plus the additions.
// The base set is not modified.
func MergeNames(base map[string]struct{}, additions []string) map[string]struct{} {
	merged := make(map[string]struct{}, len(base)+len(additions))
	for name := range base {
		merged[name] = struct{}{}
	}
	for _, name := range additions {
		if name == "" {
			continue
		}
		merged[name] = struct{}{}
	}
	return merged
}

// SortedNames returns the set members in lexicographic order.
func SortedNames(nameSet map[string]struct{}) []string {
	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
