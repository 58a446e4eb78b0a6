package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store handles persistence of the configuration to a YAML file.
type Store struct {
	path string
}

// NewStore creates a config store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the config from the file. A missing file yields Default();
// an unreadable or malformed file is an error.
func (s *Store) Load() (Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	// Ensure defaults if not set
	if cfg.Version == "" {
		cfg.Version = Version
	}
	if len(cfg.ScanPaths) == 0 {
		cfg.ScanPaths = DefaultScanPaths()
	}
	if cfg.GitHubBaseURL == "" {
		cfg.GitHubBaseURL = DefaultGitHubBaseURL
	}

	return cfg, nil
}

// Save writes the config to the file, creating parent directories as needed.
func (s *Store) Save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
