// Package config loads the settings that drive an Encoder: the
// initial dynamic-table size, the header-list size limit, and which
// header names are always encoded as sensitive.
package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of hpackc's config file.
type Config struct {
	MaxHeaderTableSize uint32   `yaml:"max_header_table_size"`
	MaxHeaderListSize  uint32   `yaml:"max_header_list_size"`
	SensitiveHeaders   []string `yaml:"sensitive_headers"`
}

// Default returns the zero-config defaults: RFC 7540 §6.5.2's default
// table size, no header-list limit, and the authorization/cookie
// headers marked sensitive since they're the common case.
func Default() *Config {
	return &Config{
		MaxHeaderTableSize: 4096,
		MaxHeaderListSize:  0,
		SensitiveHeaders:   []string{"authorization", "cookie", "set-cookie"},
	}
}

// Load reads and parses a YAML config file at path. A missing file is
// not an error: Default() is returned instead, so hpackc runs without
// requiring a config file at all.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// IsSensitive reports whether name matches one of cfg's sensitive-header
// patterns. Patterns are path.Match globs (so "x-*-token" covers
// "x-csrf-token" and "x-session-token" alike) matched case-insensitively,
// since HTTP header names are, by lowercasing both sides before matching.
// A pattern with no glob metacharacters behaves as an exact match.
func (c *Config) IsSensitive(name string) bool {
	name = strings.ToLower(name)
	for _, s := range c.SensitiveHeaders {
		matched, err := path.Match(strings.ToLower(s), name)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/hpackc/config.yaml or ~/.config/hpackc/config.yaml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "hpackc", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "hpackc.yaml"
	}
	return filepath.Join(home, ".config", "hpackc", "config.yaml")
}
