package registry_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/team-brain/toolregistry/internal/domain/catalog"
	"github.com/team-brain/toolregistry/internal/domain/registry"
)

func sampleTool(name string) *catalog.Tool {
	return &catalog.Tool{
		Name:         name,
		Path:         "/tools/" + name,
		Description:  "sample",
		Version:      "1.0.0",
		Author:       "Team Brain",
		Categories:   []string{"utility"},
		LastModified: time.Date(2026, 1, 19, 12, 0, 0, 0, time.UTC),
		QualityScore: 20,
	}
}

func TestStore_SaveAndLoadTools(t *testing.T) {
	store, err := registry.NewStore(filepath.Join(t.TempDir(), "nested", "registry.db"), nil)
	require.NoError(t, err)

	require.NoError(t, store.SaveTool(sampleTool("Alpha")))
	require.NoError(t, store.SaveTool(sampleTool("Beta")))

	tools, err := store.LoadTools()
	require.NoError(t, err)
	require.Len(t, tools, 2)
}

func TestStore_UpsertReplaces(t *testing.T) {
	store, err := registry.NewStore(filepath.Join(t.TempDir(), "registry.db"), nil)
	require.NoError(t, err)

	tool := sampleTool("Alpha")
	require.NoError(t, store.SaveTool(tool))

	tool.Version = "2.0.0"
	require.NoError(t, store.SaveTool(tool))

	tools, err := store.LoadTools()
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "2.0.0", tools[0].Version)
}

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	store, err := registry.NewStore(filepath.Join(t.TempDir(), "registry.db"), nil)
	require.NoError(t, err)

	tools, err := store.LoadTools()
	require.NoError(t, err)
	assert.Empty(t, tools)

	events, err := store.LoadUsage()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStore_CorruptRowIsSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.db")
	store, err := registry.NewStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.SaveTool(sampleTool("Good")))

	// Plant a row that is not valid JSON next to the good one.
	db, err := bolt.Open(path, 0600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("tools")).Put([]byte("Bad"), []byte("{not json"))
	}))
	require.NoError(t, db.Close())

	tools, err := store.LoadTools()
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "Good", tools[0].Name)
}

func TestStore_UsageIsAppendOnly(t *testing.T) {
	store, err := registry.NewStore(filepath.Join(t.TempDir(), "registry.db"), nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.AppendUsage(catalog.UsageEvent{
			ToolName:  "Alpha",
			Action:    "launch",
			Agent:     "forge",
			Timestamp: time.Now(),
			Success:   true,
		}))
	}

	events, err := store.LoadUsage()
	require.NoError(t, err)
	assert.Len(t, events, 3)
}
