package registry_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/temirov/toolbelt/internal/registry"
	"github.com/temirov/toolbelt/internal/types"
)

// stubTool is a minimal tool used to observe discovery order.
type stubTool struct {
	name string
}

func (tool *stubTool) Name() string        { return tool.name }
func (tool *stubTool) Description() string { return "stub" }
func (tool *stubTool) Run() error          { return nil }

// stubFactory returns a factory producing a named stub tool.
func stubFactory(name string) registry.Factory {
	return func() (types.Tool, error) {
		return &stubTool{name: name}, nil
	}
}

// TestDiscoverPreservesRegistrationOrder verifies that tools come back in the
// order their entries were registered.
func TestDiscoverPreservesRegistrationOrder(testingHandle *testing.T) {
	entries := []registry.Entry{
		{Identifier: "third", Build: stubFactory("third")},
		{Identifier: "first", Build: stubFactory("first")},
		{Identifier: "second", Build: stubFactory("second")},
	}

	tools, discoverError := registry.Discover(entries, zap.NewNop())
	if discoverError != nil {
		testingHandle.Fatalf("Discover failed: %v", discoverError)
	}
	expectedOrder := []string{"third", "first", "second"}
	if len(tools) != len(expectedOrder) {
		testingHandle.Fatalf("expected %d tools, got %d", len(expectedOrder), len(tools))
	}
	for toolIndex, expectedName := range expectedOrder {
		if tools[toolIndex].Name() != expectedName {
			testingHandle.Fatalf("tool %d is %q, want %q", toolIndex, tools[toolIndex].Name(), expectedName)
		}
	}
}

// TestDiscoverSkipsFailingFactories verifies that a failing factory is
// skipped without aborting discovery.
func TestDiscoverSkipsFailingFactories(testingHandle *testing.T) {
	entries := []registry.Entry{
		{Identifier: "broken", Build: func() (types.Tool, error) {
			return nil, errors.New("construction failed")
		}},
		{Identifier: "working", Build: stubFactory("working")},
	}

	tools, discoverError := registry.Discover(entries, zap.NewNop())
	if discoverError != nil {
		testingHandle.Fatalf("Discover failed: %v", discoverError)
	}
	if len(tools) != 1 || tools[0].Name() != "working" {
		testingHandle.Fatalf("expected only the working tool, got %d tools", len(tools))
	}
}

// TestDiscoverEmptyRegistryIsFatal verifies that an empty result surfaces
// ErrNoTools.
func TestDiscoverEmptyRegistryIsFatal(testingHandle *testing.T) {
	failingEntries := []registry.Entry{
		{Identifier: "broken", Build: func() (types.Tool, error) {
			return nil, errors.New("construction failed")
		}},
	}

	if _, discoverError := registry.Discover(nil, zap.NewNop()); !errors.Is(discoverError, registry.ErrNoTools) {
		testingHandle.Fatalf("expected ErrNoTools for no entries, got %v", discoverError)
	}
	if _, discoverError := registry.Discover(failingEntries, zap.NewNop()); !errors.Is(discoverError, registry.ErrNoTools) {
		testingHandle.Fatalf("expected ErrNoTools when every factory fails, got %v", discoverError)
	}
}
