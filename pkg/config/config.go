// Package config handles loading and managing chakrascan configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for chakrascan.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Service ServiceConfig `yaml:"service"`
}

// ReportConfig controls report generation defaults.
type ReportConfig struct {
	ItemsFile string `yaml:"items_file"` // YAML inventory override; empty = built-in sets
	LogoFile  string `yaml:"logo_file"`  // PNG/JPEG embedded on the cover
	Output    string `yaml:"output"`     // default output path for the scan command
	Format    string `yaml:"format"`     // pdf, text or json
}

// ServiceConfig controls the chakrascand HTTP service.
type ServiceConfig struct {
	Port   string `yaml:"port"`
	APIKey string `yaml:"api_key"` // empty disables auth
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Output: "personality_chakra_report.pdf",
			Format: "pdf",
		},
		Service: ServiceConfig{
			Port: "8080",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .chakrascan/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".chakrascan", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
