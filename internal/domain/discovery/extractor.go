package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/team-brain/toolregistry/internal/domain/catalog"
)

var (
	docstringPattern = regexp.MustCompile(`(?s)"""(.*?)"""`)
	versionPattern   = regexp.MustCompile(`VERSION\s*=\s*["']([^"']+)["']`)
	authorPattern    = regexp.MustCompile(`Author:\s*(.+)`)
	subparserPattern = regexp.MustCompile(`add_parser\(['"](\w+)['"]`)
	choicesPattern   = regexp.MustCompile(`choices\s*=\s*\[([^\]]+)\]`)
	quotedPattern    = regexp.MustCompile(`['"](\w+)['"]`)
)

// Degraded source names recorded in a Report when a metadata source could not
// be read and its fields fell back to defaults.
const (
	SourceScript       = "script"
	SourceReadme       = "readme"
	SourceTests        = "tests"
	SourceDependencies = "dependencies"
	SourceLastModified = "last_modified"
)

// Report records which extraction sources degraded to defaults. Extraction
// never fails on a single bad source; the report makes the degradation
// observable instead of silent.
type Report struct {
	Degraded []string
}

func (r *Report) degrade(source string) {
	for _, s := range r.Degraded {
		if s == source {
			return
		}
	}
	r.Degraded = append(r.Degraded, source)
}

// DegradedSource reports whether the named source fell back to defaults.
func (r *Report) DegradedSource(source string) bool {
	for _, s := range r.Degraded {
		if s == source {
			return true
		}
	}
	return false
}

// Extractor builds a catalog.Tool from a tool directory and its main script.
type Extractor struct {
	githubBaseURL string
	githubPattern *regexp.Regexp
	logger        *zap.Logger
	now           func() time.Time
}

// NewExtractor creates an Extractor. githubBaseURL is the base used both to
// recognize repository links in READMEs and to synthesize one when absent.
func NewExtractor(githubBaseURL string, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	base := strings.TrimRight(githubBaseURL, "/")
	return &Extractor{
		githubBaseURL: base,
		githubPattern: regexp.MustCompile(regexp.QuoteMeta(base) + `/\S+`),
		logger:        logger.Named("extractor"),
		now:           time.Now,
	}
}

// Extract populates a Tool from the directory and script. Every metadata
// source is independently best-effort; the returned Report lists the sources
// that degraded. A nil Tool is returned only on unrecoverable input (an
// empty directory path).
func (e *Extractor) Extract(dir, script string) (*catalog.Tool, *Report) {
	if dir == "" {
		return nil, &Report{}
	}

	name := filepath.Base(dir)
	report := &Report{}

	tool := catalog.NewTool(name, dir)
	tool.Version = "1.0.0"
	tool.PythonAPI = fmt.Sprintf("from %s import %s", strings.ToLower(name), name)

	content, err := os.ReadFile(script)
	if err != nil {
		report.degrade(SourceScript)
		e.logger.Debug("script unreadable", zap.String("script", script), zap.Error(err))
	} else {
		e.extractScriptFields(tool, string(content))
	}

	e.extractReadme(tool, dir, report)
	e.extractTests(tool, dir, report)
	e.extractDependencies(tool, dir, report)

	if _, err := os.Stat(filepath.Join(dir, "EXAMPLES.md")); err == nil {
		tool.HasExamples = true
	}
	tool.HasBranding = hasBrandingAssets(dir)

	tool.Categories = catalog.DetectCategories(tool.Name, tool.Description)

	if tool.GitHubURL == "" {
		tool.GitHubURL = e.githubBaseURL + "/" + name
	}

	if info, err := os.Stat(script); err == nil {
		tool.LastModified = info.ModTime()
	} else {
		tool.LastModified = e.now()
		report.degrade(SourceLastModified)
	}

	tool.QualityScore = catalog.QualityScore(
		tool.HasReadme, tool.ReadmeLines,
		tool.HasTests, tool.TestCount,
		tool.HasExamples, tool.HasBranding,
		tool.Description != "",
	)

	return tool, report
}

// extractScriptFields pulls description, version, author, capabilities and
// CLI sub-commands out of the main script text.
func (e *Extractor) extractScriptFields(tool *catalog.Tool, content string) {
	if m := docstringPattern.FindStringSubmatch(content); m != nil {
		for _, line := range strings.Split(strings.TrimSpace(m[1]), "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "Author") && !strings.HasPrefix(line, "Created") {
				tool.Description = line
				break
			}
		}
	}

	if m := versionPattern.FindStringSubmatch(content); m != nil {
		tool.Version = m[1]
	}
	if m := authorPattern.FindStringSubmatch(content); m != nil {
		tool.Author = strings.TrimSpace(m[1])
	}

	tool.Capabilities = detectCapabilities(content)
	tool.CLICommands = detectCLICommands(content)
}

// extractReadme fills the readme presence flag, line count, the description
// fallback, and a repository link found in the README.
func (e *Extractor) extractReadme(tool *catalog.Tool, dir string, report *Report) {
	path := filepath.Join(dir, "README.md")
	if _, err := os.Stat(path); err != nil {
		return
	}
	tool.HasReadme = true

	content, err := os.ReadFile(path)
	if err != nil {
		report.degrade(SourceReadme)
		return
	}

	lines := strings.Split(string(content), "\n")
	tool.ReadmeLines = len(lines)

	if tool.Description == "" {
		limit := len(lines)
		if limit > 10 {
			limit = 10
		}
		for _, line := range lines[1:limit] {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "!") {
				tool.Description = strings.TrimSpace(strings.TrimRight(line, "*"))
				break
			}
		}
	}

	if m := e.githubPattern.FindString(string(content)); m != "" {
		tool.GitHubURL = strings.TrimRight(m, ")")
	}
}

// extractTests counts test functions across every test_*.py file.
func (e *Extractor) extractTests(tool *catalog.Tool, dir string, report *Report) {
	matches, err := filepath.Glob(filepath.Join(dir, "test_*.py"))
	if err != nil || len(matches) == 0 {
		return
	}
	sort.Strings(matches)
	tool.HasTests = true

	for _, path := range matches {
		content, err := os.ReadFile(path)
		if err != nil {
			report.degrade(SourceTests)
			continue
		}
		tool.TestCount += strings.Count(string(content), "def test_")
	}
}

// pyprojectFile models the subset of pyproject.toml the extractor cares about.
type pyprojectFile struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

// extractDependencies reads requirements.txt, falling back to the
// [project] dependencies table of pyproject.toml when no requirements
// file exists.
func (e *Extractor) extractDependencies(tool *catalog.Tool, dir string, report *Report) {
	reqPath := filepath.Join(dir, "requirements.txt")
	if content, err := os.ReadFile(reqPath); err == nil {
		for _, line := range strings.Split(string(content), "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "#") {
				tool.Dependencies = append(tool.Dependencies, line)
			}
		}
		return
	} else if _, statErr := os.Stat(reqPath); statErr == nil {
		// File exists but could not be read.
		report.degrade(SourceDependencies)
		return
	}

	content, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		return
	}
	var project pyprojectFile
	if err := toml.Unmarshal(content, &project); err != nil {
		report.degrade(SourceDependencies)
		e.logger.Debug("pyproject.toml unparseable", zap.String("dir", dir), zap.Error(err))
		return
	}
	tool.Dependencies = append(tool.Dependencies, project.Project.Dependencies...)
}

// capabilityChecks maps script-text indicators to capability labels. Each
// label appears at most once because each is tested exactly once, in order.
var capabilityChecks = []struct {
	label      string
	indicators []string
}{
	{"CLI interface", []string{"argparse", "cli"}},
	{"Python API", []string{"class "}},
	{"Persistent storage", []string{"sqlite", "database"}},
	{"JSON support", []string{"json"}},
	{"Async operations", []string{"async", "asyncio"}},
	{"Process execution", []string{"subprocess"}},
	{"File operations", []string{"pathlib", "os.path"}},
	{"Network operations", []string{"socket", "http"}},
}

func detectCapabilities(content string) []string {
	text := strings.ToLower(content)

	var capabilities []string
	for _, check := range capabilityChecks {
		for _, indicator := range check.indicators {
			if strings.Contains(text, indicator) {
				capabilities = append(capabilities, check.label)
				break
			}
		}
	}
	return capabilities
}

// detectCLICommands unions sub-parser registrations and quoted tokens inside
// choices=[...] lists, deduplicated in first-seen order.
func detectCLICommands(content string) []string {
	var commands []string
	seen := map[string]bool{}

	add := func(cmd string) {
		if !seen[cmd] {
			seen[cmd] = true
			commands = append(commands, cmd)
		}
	}

	for _, m := range subparserPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	for _, m := range choicesPattern.FindAllStringSubmatch(content, -1) {
		for _, q := range quotedPattern.FindAllStringSubmatch(m[1], -1) {
			add(q[1])
		}
	}
	return commands
}

func hasBrandingAssets(dir string) bool {
	entries, err := os.ReadDir(filepath.Join(dir, "branding"))
	return err == nil && len(entries) > 0
}
