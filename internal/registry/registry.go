// Package registry constructs the ordered set of available tools at startup.
//
// Tools are registered through an explicit, statically known list of
// factories. Registration order is the menu order, which makes discovery
// stable across runs and testable without filesystem or plugin scanning.
package registry

import (
	"errors"

	"go.uber.org/zap"

	"github.com/temirov/toolbelt/internal/types"
)

// ErrNoTools indicates that no registered factory produced a tool.
var ErrNoTools = errors.New("no tools could be constructed")

// Factory builds one tool instance.
type Factory func() (types.Tool, error)

// Entry pairs a stable identifier with a tool factory.
type Entry struct {
	Identifier string
	Build      Factory
}

// Discover builds one tool instance per registered entry, preserving
// registration order. A factory that fails is skipped with a warning; an
// empty result is a fatal startup fault surfaced as ErrNoTools.
func Discover(entries []Entry, logger *zap.Logger) ([]types.Tool, error) {
	var tools []types.Tool
	for _, entry := range entries {
		if entry.Build == nil {
			logger.Warn("skipping tool with no factory", zap.String("tool", entry.Identifier))
			continue
		}
		toolInstance, buildError := entry.Build()
		if buildError != nil {
			logger.Warn("skipping tool that failed to construct",
				zap.String("tool", entry.Identifier),
				zap.Error(buildError))
			continue
		}
		tools = append(tools, toolInstance)
	}
	if len(tools) == 0 {
		return nil, ErrNoTools
	}
	return tools, nil
}
