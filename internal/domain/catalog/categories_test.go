package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/team-brain/toolregistry/internal/domain/catalog"
)

func TestDetectCategories(t *testing.T) {
	tests := []struct {
		name        string
		toolName    string
		description string
		want        []string
	}{
		{
			name:     "synapse keyword in name",
			toolName: "SynapseLink",
			want:     []string{"synapse"},
		},
		{
			name:        "multiple categories accumulate in table order",
			toolName:    "SynapseMonitor",
			description: "monitor synapse traffic",
			want:        []string{"synapse", "monitoring"},
		},
		{
			name:        "no keyword falls back to utility",
			toolName:    "Widget",
			description: "does widget things",
			want:        []string{"utility"},
		},
		{
			name:        "description alone is enough",
			toolName:    "XYZ",
			description: "encrypt secrets in a vault",
			want:        []string{"security"},
		},
		{
			name:     "substring match is intentional",
			toolName: "PortScanner",
			want:     []string{"network"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.DetectCategories(tt.toolName, tt.description)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoriesForTask(t *testing.T) {
	got := catalog.CategoriesForTask("send a message to the team inbox")
	assert.Equal(t, []string{"synapse"}, got)

	got = catalog.CategoriesForTask("nothing relevant here whatsoever")
	assert.Empty(t, got)

	// "assign" sits in both the task and routing keyword sets.
	got = catalog.CategoriesForTask("assign this work")
	assert.Equal(t, []string{"task", "routing"}, got)
}
