// Package catalog defines the tool catalog entities and the quality scoring rules.
package catalog

import (
	"time"
)

// DefaultAuthor is used when a script carries no Author: line.
const DefaultAuthor = "Team Brain"

// UnknownVersion marks a tool whose version has not been discovered yet.
// Extraction replaces it with the script's VERSION value, or "1.0.0".
const UnknownVersion = "unknown"

// Tool represents one cataloged tool rooted at a directory with a main script.
type Tool struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Description  string    `json:"description"`
	Version      string    `json:"version"`
	Author       string    `json:"author"`
	Categories   []string  `json:"categories"`
	Capabilities []string  `json:"capabilities"`
	CLICommands  []string  `json:"cli_commands"`
	PythonAPI    string    `json:"python_api"`
	Dependencies []string  `json:"dependencies"`
	GitHubURL    string    `json:"github_url"`
	HasTests     bool      `json:"has_tests"`
	HasReadme    bool      `json:"has_readme"`
	HasExamples  bool      `json:"has_examples"`
	HasBranding  bool      `json:"has_branding"`
	ReadmeLines  int       `json:"readme_lines"`
	TestCount    int       `json:"test_count"`
	LastModified time.Time `json:"last_modified"`
	QualityScore int       `json:"quality_score"`
}

// NewTool returns a Tool in its pre-discovery state: identity fields set,
// everything else at its documented default.
func NewTool(name, path string) *Tool {
	return &Tool{
		Name:    name,
		Path:    path,
		Version: UnknownVersion,
		Author:  DefaultAuthor,
	}
}

// UsageEvent is an append-only record of one tool invocation attempt.
// Events reference tools by name but are never cascaded or deleted; an
// event for a tool that no longer exists in the catalog is valid.
type UsageEvent struct {
	ToolName  string    `json:"tool_name"`
	Action    string    `json:"action"`
	Agent     string    `json:"agent"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
	Notes     string    `json:"notes,omitempty"`
}
