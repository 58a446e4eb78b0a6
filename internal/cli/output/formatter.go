package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/team-brain/toolregistry/internal/cli/errors"
	"github.com/team-brain/toolregistry/internal/domain/catalog"
	"github.com/team-brain/toolregistry/internal/domain/registry"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

type Formatter struct {
	format OutputFormat
	color  bool
}

func NewFormatter(format OutputFormat, useColor bool) *Formatter {
	return &Formatter{
		format: format,
		color:  useColor,
	}
}

// QualityGlyph returns a short marker for a quality score band.
func (f *Formatter) QualityGlyph(score int) string {
	switch {
	case score >= 80:
		if f.color {
			return color.GreenString("[OK]")
		}
		return "[OK]"
	case score >= 50:
		if f.color {
			return color.YellowString("[!]")
		}
		return "[!]"
	default:
		if f.color {
			return color.RedString("[X]")
		}
		return "[X]"
	}
}

func (f *Formatter) FormatError(err errors.ClassifiedError) string {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(err, "", "  ")
		return string(data)
	}

	var msg string
	if f.color {
		msg = color.RedString("Error [%s]: %s", err.Kind, err.Message)
		if err.Hint != "" {
			msg += "\n" + color.YellowString("Hint: %s", err.Hint)
		}
	} else {
		msg = fmt.Sprintf("Error [%s]: %s", err.Kind, err.Message)
		if err.Hint != "" {
			msg += "\nHint: " + err.Hint
		}
	}
	return msg
}

// FormatTools renders the tool list as a table, or JSON in JSON mode.
func (f *Formatter) FormatTools(tools []*catalog.Tool) {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(tools, "", "  ")
		fmt.Println(string(data))
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"", "Name", "Version", "Quality", "Categories", "Description"}),
	)

	for _, t := range tools {
		table.Append([]string{
			f.QualityGlyph(t.QualityScore),
			t.Name,
			t.Version,
			fmt.Sprintf("%d/100", t.QualityScore),
			strings.Join(t.Categories, ", "),
			truncate(t.Description, 60),
		})
	}

	table.Render()
}

// FormatToolDetail renders the full record of a single tool.
func (f *Formatter) FormatToolDetail(t *catalog.Tool) {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(t, "", "  ")
		fmt.Println(string(data))
		return
	}

	check := func(ok bool) string {
		if ok {
			return "[OK]"
		}
		return "[X]"
	}

	fmt.Printf("%s %s v%s\n", f.QualityGlyph(t.QualityScore), t.Name, t.Version)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Description: %s\n", t.Description)
	fmt.Printf("Author: %s\n", t.Author)
	fmt.Printf("Path: %s\n", t.Path)
	fmt.Printf("GitHub: %s\n", t.GitHubURL)
	fmt.Println()
	fmt.Printf("Categories: %s\n", strings.Join(t.Categories, ", "))
	fmt.Printf("Capabilities: %s\n", strings.Join(t.Capabilities, ", "))
	fmt.Println()
	if len(t.CLICommands) > 0 {
		fmt.Printf("CLI Commands: %s\n", strings.Join(t.CLICommands, ", "))
	} else {
		fmt.Println("CLI Commands: None detected")
	}
	fmt.Printf("Python API: %s\n", t.PythonAPI)
	fmt.Println()
	fmt.Println("Quality Metrics:")
	fmt.Printf("  Score: %d/100\n", t.QualityScore)
	fmt.Printf("  README: %s (%d lines)\n", check(t.HasReadme), t.ReadmeLines)
	fmt.Printf("  Tests: %s (%d tests)\n", check(t.HasTests), t.TestCount)
	fmt.Printf("  Examples: %s\n", check(t.HasExamples))
	fmt.Printf("  Branding: %s\n", check(t.HasBranding))
	fmt.Println()
	if len(t.Dependencies) > 0 {
		fmt.Printf("Dependencies: %s\n", strings.Join(t.Dependencies, ", "))
	} else {
		fmt.Println("Dependencies: None (stdlib only)")
	}
	fmt.Printf("Last Modified: %s\n", t.LastModified.Format("2006-01-02 15:04"))
}

// FormatHealth renders the ecosystem health report.
func (f *Formatter) FormatHealth(h registry.Health) {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(h, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Println("Team Brain Ecosystem Health Report")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total Tools: %d\n\n", h.TotalTools)
	fmt.Println("Coverage Metrics:")
	fmt.Printf("  Documentation: %.1f%%\n", h.ReadmeCoverage)
	fmt.Printf("  Tests: %.1f%%\n", h.TestCoverage)
	fmt.Printf("  Examples: %.1f%%\n", h.ExamplesCoverage)
	fmt.Printf("  Branding: %.1f%%\n", h.BrandingCoverage)
	fmt.Println()
	fmt.Println("Quality Metrics:")
	fmt.Printf("  Average Score: %.1f/100\n", h.AverageQuality)
	fmt.Printf("  High Quality (80+): %d tools\n", h.HighQuality)
	fmt.Printf("  Needs Work (<50): %d tools\n", h.NeedsWork)
	fmt.Println()
	fmt.Println("Categories:")
	for _, c := range h.Categories {
		fmt.Printf("  %s: %d tools\n", c.Name, c.Count)
	}
	if len(h.TopQuality) > 0 {
		fmt.Println()
		fmt.Println("Top Quality Tools:")
		for _, t := range h.TopQuality {
			fmt.Printf("  %s %s (%d/100)\n", f.QualityGlyph(t.QualityScore), t.Name, t.QualityScore)
		}
	}
	if len(h.NeedsWorkList) > 0 {
		fmt.Println()
		fmt.Println("Needs Improvement:")
		for _, t := range h.NeedsWorkList {
			fmt.Printf("  %s %s (%d/100)\n", f.QualityGlyph(t.QualityScore), t.Name, t.QualityScore)
		}
	}
}

// FormatStats renders usage statistics.
func (f *Formatter) FormatStats(s registry.UsageStats) {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(s, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Println("Usage Statistics")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Total Uses: %d\n", s.TotalUses)
	fmt.Printf("Successful: %d\n", s.Successful)
	fmt.Printf("Success Rate: %.1f%%\n", s.SuccessRate)
	if len(s.TopTools) > 0 {
		fmt.Println()
		fmt.Println("Most Used Tools:")
		for _, t := range s.TopTools {
			fmt.Printf("  %s: %d uses\n", t.Name, t.Count)
		}
	}
}

// FormatCategories renders the category counts.
func (f *Formatter) FormatCategories(counts []registry.CategoryCount) {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(counts, "", "  ")
		fmt.Println(string(data))
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Category", "Tools"}),
	)
	for _, c := range counts {
		table.Append([]string{c.Name, fmt.Sprintf("%d", c.Count)})
	}
	table.Render()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
