package registry_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-brain/toolregistry/internal/domain/registry"
)

const baseURL = "https://github.com/DonkRonk17"

// writeToolDir creates a tool fixture whose docstring drives category
// detection and whose optional extras drive the quality score.
func writeToolDir(t *testing.T, root, name, description string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	script := fmt.Sprintf("\"\"\"\n%s\n\"\"\"\n", description)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte(script), 0644))
}

func newTestRegistry(t *testing.T, scanRoot string) *registry.Registry {
	t.Helper()
	store, err := registry.NewStore(filepath.Join(t.TempDir(), "registry.db"), nil)
	require.NoError(t, err)
	reg, err := registry.New(store, registry.Options{
		ScanPaths:     []string{scanRoot},
		GitHubBaseURL: baseURL,
		TrackUsage:    true,
	}, nil)
	require.NoError(t, err)
	return reg
}

func TestRegistry_ScanIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeToolDir(t, root, "MockTool1", "A mock synapse messenger")
	writeToolDir(t, root, "MockTool2", "Watches system health")

	reg := newTestRegistry(t, root)

	count, err := reg.Scan(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, reg.List(), 2)

	// Second pass overwrites, never duplicates.
	count, err = reg.Scan(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, reg.List(), 2)
}

func TestRegistry_GetIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeToolDir(t, root, "MockTool1", "A mock tool")

	reg := newTestRegistry(t, root)
	_, err := reg.Scan(nil)
	require.NoError(t, err)

	exact, ok := reg.Get("MockTool1")
	require.True(t, ok)

	for _, name := range []string{"mocktool1", "MOCKTOOL1", "mockTool1"} {
		tool, ok := reg.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, exact.Name, tool.Name)
	}

	_, ok = reg.Get("NoSuchTool")
	assert.False(t, ok)
}

func TestRegistry_SearchEmptyQueryMatchesNothing(t *testing.T) {
	root := t.TempDir()
	writeToolDir(t, root, "MockTool1", "A mock tool")

	reg := newTestRegistry(t, root)
	_, err := reg.Scan(nil)
	require.NoError(t, err)

	assert.Empty(t, reg.Search("", "", 0))
}

func TestRegistry_SearchRanking(t *testing.T) {
	root := t.TempDir()
	writeToolDir(t, root, "SynapseLink", "Fast messaging for agents")
	writeToolDir(t, root, "LinkChecker", "Validates synapse endpoints")
	writeToolDir(t, root, "Unrelated", "Sorts photographs")

	reg := newTestRegistry(t, root)
	_, err := reg.Scan(nil)
	require.NoError(t, err)

	results := reg.Search("synapse", "", 0)
	require.Len(t, results, 2)
	// Name prefix match outranks a description/category match.
	assert.Equal(t, "SynapseLink", results[0].Name)
	assert.Equal(t, "LinkChecker", results[1].Name)
}

func TestRegistry_SearchFilters(t *testing.T) {
	root := t.TempDir()
	writeToolDir(t, root, "SynapseLink", "Fast messaging for agents")
	writeToolDir(t, root, "SynapseWatch", "Watches synapse health stats")

	reg := newTestRegistry(t, root)
	_, err := reg.Scan(nil)
	require.NoError(t, err)

	// Category filter keeps only tools carrying the category.
	results := reg.Search("synapse", "monitoring", 0)
	require.Len(t, results, 1)
	assert.Equal(t, "SynapseWatch", results[0].Name)

	// A quality floor above the fixtures' scores filters everything.
	assert.Empty(t, reg.Search("synapse", "", 90))
}

func TestRegistry_Categories(t *testing.T) {
	root := t.TempDir()
	writeToolDir(t, root, "SynapseLink", "Send a message")
	writeToolDir(t, root, "SynapseWatch", "Monitor synapse traffic")
	writeToolDir(t, root, "Widget", "Does generic things")

	reg := newTestRegistry(t, root)
	_, err := reg.Scan(nil)
	require.NoError(t, err)

	counts := reg.Categories()
	require.NotEmpty(t, counts)
	assert.Equal(t, "synapse", counts[0].Name)
	assert.Equal(t, 2, counts[0].Count)

	found := map[string]int{}
	for _, c := range counts {
		found[c.Name] = c.Count
	}
	assert.Equal(t, 1, found["utility"])
	assert.Equal(t, 1, found["monitoring"])
}

func TestRegistry_ByCategoryUnknownIsEmpty(t *testing.T) {
	reg := newTestRegistry(t, t.TempDir())
	assert.Empty(t, reg.ByCategory("nonexistent"))
}

func TestRegistry_Recommend(t *testing.T) {
	root := t.TempDir()
	for i := 1; i <= 7; i++ {
		writeToolDir(t, root, fmt.Sprintf("Messenger%d", i), "Delivers a message to the inbox")
	}

	reg := newTestRegistry(t, root)
	_, err := reg.Scan(nil)
	require.NoError(t, err)

	results := reg.Recommend("send a message to the team")
	assert.Len(t, results, 5)
}

func TestRegistry_RecommendEmptyCatalog(t *testing.T) {
	reg := newTestRegistry(t, t.TempDir())
	assert.Empty(t, reg.Recommend("send a message"))
}

func TestRegistry_CacheSurvivesRestart(t *testing.T) {
	root := t.TempDir()
	writeToolDir(t, root, "MockTool1", "A mock tool")

	dbDir := t.TempDir()
	store, err := registry.NewStore(filepath.Join(dbDir, "registry.db"), nil)
	require.NoError(t, err)
	opts := registry.Options{ScanPaths: []string{root}, GitHubBaseURL: baseURL, TrackUsage: true}

	reg, err := registry.New(store, opts, nil)
	require.NoError(t, err)
	_, err = reg.Scan(nil)
	require.NoError(t, err)

	// A fresh registry over the same store warms its cache from disk.
	store2, err := registry.NewStore(filepath.Join(dbDir, "registry.db"), nil)
	require.NoError(t, err)
	reg2, err := registry.New(store2, opts, nil)
	require.NoError(t, err)

	tool, ok := reg2.Get("MockTool1")
	require.True(t, ok)
	assert.Equal(t, "A mock tool", tool.Description)
}

func TestRegistry_UsageStats(t *testing.T) {
	reg := newTestRegistry(t, t.TempDir())

	require.NoError(t, reg.TrackUsage("MockTool1", "launch", "forge", true, ""))
	require.NoError(t, reg.TrackUsage("MockTool1", "launch", "forge", false, "boom"))
	require.NoError(t, reg.TrackUsage("OtherTool", "launch", "", true, ""))

	stats, err := reg.UsageStats("")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUses)
	assert.Equal(t, 2, stats.Successful)
	assert.InDelta(t, 66.7, stats.SuccessRate, 0.1)
	require.NotEmpty(t, stats.TopTools)
	assert.Equal(t, "MockTool1", stats.TopTools[0].Name)

	scoped, err := reg.UsageStats("MockTool1")
	require.NoError(t, err)
	assert.Equal(t, 2, scoped.TotalUses)
	assert.Equal(t, 1, scoped.Successful)
}

func TestRegistry_UsageForUnknownToolIsLegal(t *testing.T) {
	reg := newTestRegistry(t, t.TempDir())
	assert.NoError(t, reg.TrackUsage("VanishedTool", "launch", "", false, "gone"))
}

func TestRegistry_Health(t *testing.T) {
	root := t.TempDir()
	writeToolDir(t, root, "SynapseLink", "Send a message")
	writeToolDir(t, root, "Widget", "Generic helper")

	reg := newTestRegistry(t, root)
	_, err := reg.Scan(nil)
	require.NoError(t, err)

	health := reg.Health()
	assert.Equal(t, 2, health.TotalTools)
	assert.Equal(t, 2, health.NeedsWork) // bare fixtures score low
	assert.NotEmpty(t, health.Categories)
	assert.NotEmpty(t, health.TopQuality)
}

func TestRegistry_HealthEmptyCatalog(t *testing.T) {
	reg := newTestRegistry(t, t.TempDir())
	health := reg.Health()
	assert.Equal(t, 0, health.TotalTools)
}
