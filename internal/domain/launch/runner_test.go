package launch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/team-brain/toolregistry/internal/domain/catalog"
	"github.com/team-brain/toolregistry/internal/domain/launch"
)

// fakeCatalog is a minimal launch.Catalog for tests.
type fakeCatalog struct {
	tools  map[string]*catalog.Tool
	events []catalog.UsageEvent
}

func (f *fakeCatalog) Get(name string) (*catalog.Tool, bool) {
	tool, ok := f.tools[name]
	return tool, ok
}

func (f *fakeCatalog) TrackUsage(toolName, action, agent string, success bool, notes string) error {
	f.events = append(f.events, catalog.UsageEvent{
		ToolName: toolName, Action: action, Agent: agent, Success: success, Notes: notes,
	})
	return nil
}

func TestRunner_UnknownToolNotFound(t *testing.T) {
	runner := launch.NewRunner(&fakeCatalog{tools: map[string]*catalog.Tool{}}, "", "tester", nil)

	result := runner.Run("GhostTool", nil, true)
	assert.Equal(t, 1, result.Code)
	assert.Contains(t, strings.ToLower(result.Stderr), "not found")
}

func TestRunner_MissingScript(t *testing.T) {
	cat := &fakeCatalog{tools: map[string]*catalog.Tool{
		"Empty": {Name: "Empty", Path: t.TempDir()},
	}}
	runner := launch.NewRunner(cat, "", "tester", nil)

	result := runner.Run("Empty", nil, true)
	assert.Equal(t, 1, result.Code)
	assert.Contains(t, result.Stderr, "No script found")
	// No launch happened, so no usage event either.
	assert.Empty(t, cat.events)
}
