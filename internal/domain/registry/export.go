package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnsupportedFormat is returned by Export for an unknown format string.
// This is the one input error in the engine that is surfaced hard instead of
// degrading.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Export formats supported by Export.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Export renders the whole catalog: "json" produces a machine-readable array
// of every tool's full field set; "markdown" produces the grouped-by-category
// registry report.
func (r *Registry) Export(format string) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(r.List(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode catalog: %w", err)
		}
		return string(data), nil
	case FormatMarkdown:
		return r.exportMarkdown(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (r *Registry) exportMarkdown() string {
	tools := r.List()

	var b strings.Builder
	b.WriteString("# Team Brain Tool Registry\n\n")
	fmt.Fprintf(&b, "**Total Tools:** %d\n", len(tools))
	fmt.Fprintf(&b, "**Generated:** %s\n\n---\n\n", r.now().Format("2006-01-02 15:04"))

	for _, category := range r.Categories() {
		fmt.Fprintf(&b, "## %s (%d tools)\n\n", titleCase(category.Name), category.Count)

		for _, tool := range r.ByCategory(category.Name) {
			fmt.Fprintf(&b, "### %s %s\n", tool.Name, qualityGlyph(tool.QualityScore))
			fmt.Fprintf(&b, "- **Description:** %s\n", tool.Description)
			fmt.Fprintf(&b, "- **Version:** %s\n", tool.Version)
			fmt.Fprintf(&b, "- **Quality:** %d/100\n", tool.QualityScore)
			fmt.Fprintf(&b, "- **GitHub:** [%s](%s)\n", tool.Name, tool.GitHubURL)
			if len(tool.CLICommands) > 0 {
				fmt.Fprintf(&b, "- **Commands:** %s\n", strings.Join(tool.CLICommands, ", "))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func qualityGlyph(score int) string {
	switch {
	case score >= highQualityFloor:
		return "[OK]"
	case score >= needsWorkCeiling:
		return "[!]"
	default:
		return "[X]"
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
