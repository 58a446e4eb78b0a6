package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-brain/toolregistry/internal/domain/catalog"
	"github.com/team-brain/toolregistry/internal/domain/registry"
)

func scannedRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	root := t.TempDir()
	writeToolDir(t, root, "SynapseLink", "Send a message to any agent")
	writeToolDir(t, root, "HealthWatch", "Monitor ecosystem health")

	reg := newTestRegistry(t, root)
	_, err := reg.Scan(nil)
	require.NoError(t, err)
	return reg
}

func TestExport_JSONRoundTrips(t *testing.T) {
	reg := scannedRegistry(t)

	out, err := reg.Export(registry.FormatJSON)
	require.NoError(t, err)

	var tools []catalog.Tool
	require.NoError(t, json.Unmarshal([]byte(out), &tools))
	assert.Len(t, tools, len(reg.List()))
}

func TestExport_Markdown(t *testing.T) {
	reg := scannedRegistry(t)

	out, err := reg.Export(registry.FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, out, "# Team Brain Tool Registry")
	assert.Contains(t, out, "Total Tools:")
	assert.Contains(t, out, "### SynapseLink")
	assert.Contains(t, out, "- **Version:** 1.0.0")
	assert.Contains(t, out, "https://github.com/DonkRonk17/SynapseLink")
}

func TestExport_UnknownFormat(t *testing.T) {
	reg := scannedRegistry(t)

	_, err := reg.Export("xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrUnsupportedFormat)
}
