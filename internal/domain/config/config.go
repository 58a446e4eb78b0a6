// Package config holds the registry configuration record and its file store.
package config

import (
	"os"
	"path/filepath"
)

// Version of the toolregistry application.
const Version = "1.0.0"

// DefaultGitHubBaseURL is the base used to synthesize repository links.
const DefaultGitHubBaseURL = "https://github.com/DonkRonk17"

// Config is the registry configuration. All fields have working defaults; a
// missing config file yields Default().
type Config struct {
	Version string `yaml:"version"`

	// ScanPaths are the roots searched for tools.
	ScanPaths []string `yaml:"scan_paths"`

	// AutoScanOnStartup is honored by front-ends, not by the engine itself.
	AutoScanOnStartup bool `yaml:"auto_scan_on_startup"`

	// TrackUsage gates whether launch operations record usage events.
	TrackUsage bool `yaml:"track_usage"`

	// GitHubBaseURL is the base for recognized and synthesized repo links.
	GitHubBaseURL string `yaml:"github_base_url"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Version:       Version,
		ScanPaths:     DefaultScanPaths(),
		TrackUsage:    true,
		GitHubBaseURL: DefaultGitHubBaseURL,
	}
}

// DefaultScanPaths derives the default tool roots from the user's home
// directory. The engine never consults this itself; the application passes
// scan paths in explicitly.
func DefaultScanPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return []string{filepath.Join(home, "OneDrive", "Documents", "AutoProjects")}
}

// DefaultDBPath is the default location of the registry database.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".toolregistry", "registry.db")
}

// DefaultConfigPath is the default location of the config file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".toolregistry", "config.yaml")
}
