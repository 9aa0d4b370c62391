// Package config provides deployment configuration loading for the API
// server. The config file carries what flags cannot express comfortably:
// the per-content-type store topology.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ContentTypeConfig binds one content-type tag to a content store. An empty
// store URL falls back to the deployment-wide content store.
type ContentTypeConfig struct {
	Name     string `yaml:"name"`
	StoreURL string `yaml:"store_url"`
}

// Config is the structure of the copydesk.yaml deployment file.
type Config struct {
	RolesFile    string              `yaml:"roles_file"`
	ContentTypes []ContentTypeConfig `yaml:"content_types"`
}

// Load reads and validates a deployment config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.ContentTypes))

	for i, ct := range c.ContentTypes {
		if ct.Name == "" {
			return fmt.Errorf("content type %d has no name", i)
		}

		if seen[ct.Name] {
			return fmt.Errorf("duplicate content type '%s'", ct.Name)
		}

		seen[ct.Name] = true
	}

	return nil
}

// ContentTypeNames returns the configured content-type tags in declaration
// order.
func (c *Config) ContentTypeNames() []string {
	names := make([]string, 0, len(c.ContentTypes))
	for _, ct := range c.ContentTypes {
		names = append(names, ct.Name)
	}

	return names
}
