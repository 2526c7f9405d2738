// Package config provides composition configuration loading and validation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/venlo/commercegraph/internal/compose"
)

// Config is the root configuration structure for the composition pipeline.
// Slice order is preserved end to end: it fixes extension application order,
// custom-field injection order, custom permission registration order and
// auth strategy order.
type Config struct {
	Admin             SurfaceConfig                `yaml:"admin"`
	Shop              SurfaceConfig                `yaml:"shop"`
	Extensions        []compose.Extension          `yaml:"extensions"`
	CustomFields      []compose.EntityCustomFields `yaml:"custom_fields"`
	CustomPermissions []string                     `yaml:"custom_permissions"`
	AuthStrategies    []compose.AuthStrategy       `yaml:"auth_strategies"`
}

// SurfaceConfig configures one API surface's fragment sources.
type SurfaceConfig struct {
	FragmentRoot string `yaml:"fragment_root"`
}

// Load reads, parses and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	for i := range cfg.AuthStrategies {
		if cfg.AuthStrategies[i].Surfaces == "" {
			cfg.AuthStrategies[i].Surfaces = compose.FilterBoth
		}
	}
}

func validate(cfg *Config) error {
	if cfg.Admin.FragmentRoot == "" {
		return fmt.Errorf("admin.fragment_root is required")
	}
	if cfg.Shop.FragmentRoot == "" {
		return fmt.Errorf("shop.fragment_root is required")
	}
	for _, e := range cfg.Extensions {
		if e.PluginID == "" {
			return fmt.Errorf("extension without a plugin id")
		}
		if e.SDL == "" {
			return fmt.Errorf("extension %q without sdl", e.PluginID)
		}
	}
	for _, e := range cfg.CustomFields {
		if e.Entity == "" {
			return fmt.Errorf("custom_fields entry without an entity name")
		}
		for _, f := range e.Fields {
			if f.Name == "" {
				return fmt.Errorf("custom field on %q without a name", e.Entity)
			}
			if f.Kind == "" {
				return fmt.Errorf("custom field %s.%s without a kind", e.Entity, f.Name)
			}
		}
	}
	for _, s := range cfg.AuthStrategies {
		if s.Name == "" {
			return fmt.Errorf("auth strategy without a name")
		}
	}
	return nil
}

// SurfaceOptions assembles compose options for one surface from the shared
// configuration. Fragments are supplied separately because retrieval is I/O.
func (c *Config) SurfaceOptions(surface compose.Surface) compose.Options {
	return compose.Options{
		Surface:           surface,
		Extensions:        c.Extensions,
		CustomFields:      c.CustomFields,
		CustomPermissions: c.CustomPermissions,
		AuthStrategies:    c.AuthStrategies,
	}
}
