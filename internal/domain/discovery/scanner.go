// Package discovery locates tool directories under the configured scan roots
// and extracts catalog metadata from them.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// excludedDirs are subdirectory names that never count as tool roots.
var excludedDirs = map[string]bool{
	"branding":    true,
	"backups":     true,
	"tests":       true,
	"examples":    true,
	"__pycache__": true,
}

// Scanner walks scan roots and reports directories that look like tools.
// Scanning is best-effort: roots that do not exist are skipped silently.
type Scanner struct {
	logger *zap.Logger
}

// NewScanner creates a Scanner. A nil logger is replaced with a no-op one.
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{logger: logger.Named("scanner")}
}

// Candidate is a directory that passed the tool checks, paired with its
// resolved main script.
type Candidate struct {
	Dir    string
	Script string
}

// Scan returns every tool candidate under the given roots. A directory is a
// candidate when it exists, its name has no "." or "_" prefix, its name is not
// a known non-tool subdirectory, and a main script resolves for it.
func (s *Scanner) Scan(roots []string) []Candidate {
	var candidates []Candidate

	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			s.logger.Debug("skipping unreadable scan root", zap.String("root", root), zap.Error(err))
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				continue
			}
			if excludedDirs[name] {
				continue
			}

			dir := filepath.Join(root, name)
			script, ok := FindScript(dir)
			if !ok {
				s.logger.Debug("no main script, not a tool", zap.String("dir", dir))
				continue
			}
			candidates = append(candidates, Candidate{Dir: dir, Script: script})
		}
	}

	return candidates
}

// FindScript resolves the main script for a tool directory. Priority order:
// a script named after the lower-cased directory name, one named after the
// exact directory name, main.py, __main__.py, and finally the first .py file
// in lexicographic order that is neither a test file nor __init__.py.
func FindScript(dir string) (string, bool) {
	base := filepath.Base(dir)
	candidates := []string{
		strings.ToLower(base) + ".py",
		base + ".py",
		"main.py",
		"__main__.py",
	}

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	var scripts []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".py") {
			continue
		}
		if strings.HasPrefix(name, "test_") || name == "__init__.py" {
			continue
		}
		scripts = append(scripts, name)
	}
	if len(scripts) == 0 {
		return "", false
	}

	sort.Strings(scripts)
	return filepath.Join(dir, scripts[0]), true
}
