package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/webtrail/config.yaml"

// Config holds all webtrail configuration.
type Config struct {
	Export   ExportConfig             `yaml:"export"`
	Browsers map[string]BrowserConfig `yaml:"browsers"`
	Summary  SummaryConfig            `yaml:"summary"`
}

type ExportConfig struct {
	Weeks     int    `yaml:"weeks"`
	OutputDir string `yaml:"output_dir"`
	// Timezone names the calendar-day bucketing convention: "UTC" (default),
	// "Local", or an IANA zone name like "America/Chicago".
	Timezone string `yaml:"timezone"`
	// ExcludeDomains are dropped from the export entirely. The digest is
	// meant to be pasted into an LLM prompt, so sensitive domains stay out.
	ExcludeDomains []string `yaml:"exclude_domains"`
}

type BrowserConfig struct {
	HistoryPath string `yaml:"history_path"`
}

type SummaryConfig struct {
	TopDomains int `yaml:"top_domains"`
	TopURLs    int `yaml:"top_urls"`
	TopQueries int `yaml:"top_queries"`
	DigestTopN int `yaml:"digest_top_n"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}

// Location resolves the configured timezone into a *time.Location.
func (c *Config) Location() (*time.Location, error) {
	switch c.Export.Timezone {
	case "", "UTC":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	default:
		loc, err := time.LoadLocation(c.Export.Timezone)
		if err != nil {
			return nil, fmt.Errorf("resolving timezone %q: %w", c.Export.Timezone, err)
		}
		return loc, nil
	}
}

// HistoryPath returns the configured or default History path for a browser.
func (c *Config) HistoryPath(browser string) (string, error) {
	if b, ok := c.Browsers[browser]; ok && b.HistoryPath != "" {
		return ExpandPath(b.HistoryPath)
	}
	if p := DefaultHistoryPath(browser); p != "" {
		return ExpandPath(p)
	}
	return "", fmt.Errorf("no history path known for browser %q", browser)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
