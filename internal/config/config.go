package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	currentVersion = 1
	appDirName     = "humanise"
)

// Config models the persisted CLI preferences.
type Config struct {
	Version     int         `yaml:"version"`
	Preferences Preferences `yaml:"preferences,omitempty"`
	path        string      `yaml:"-"`
}

// Preferences capture user-level defaults applied when the matching flag is
// not given on the command line.
type Preferences struct {
	// Verbose selects full unit words ("minute") over abbreviations ("min").
	// Unset means verbose.
	Verbose *bool `yaml:"verbose,omitempty"`
	// OutputFormat is "text", "json" or "yaml". Unset means text.
	OutputFormat string `yaml:"output_format,omitempty"`
}

// DefaultVerbose resolves the configured verbosity, defaulting to verbose
// when no preference is recorded.
func (c *Config) DefaultVerbose() bool {
	if c == nil || c.Preferences.Verbose == nil {
		return true
	}
	return *c.Preferences.Verbose
}

// Load retrieves preferences from disk, returning defaults when the file
// does not exist. Supports both config.yaml and config.yml filenames.
func Load() (*Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	baseDir := filepath.Join(dir, appDirName)

	cfg := &Config{Version: currentVersion}

	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(baseDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config: %w", err)
			}
			continue
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}

		cfg.path = path
		return cfg, nil
	}

	cfg.path = filepath.Join(baseDir, "config.yaml")
	return cfg, nil
}

// Save writes the preferences back to the path they were loaded from,
// creating the directory on first use.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no backing path")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
