package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the configuration for the application.
type Config struct {
	// DatabasePath is the SQLite file backing state persistence and order
	// history.
	DatabasePath string `koanf:"database_path"`
	// CatalogDir holds user-provided vendor catalog YAML files; they are
	// merged over the embedded defaults by vendor ID.
	CatalogDir string `koanf:"catalog_dir"`
	// DefaultVendor is the vendor used when a command does not name one.
	DefaultVendor string `koanf:"default_vendor"`
	// DemoMode seeds demo profile, plan and pantry data on startup.
	DemoMode bool `koanf:"demo_mode"`
}

// Load builds the configuration. Precedence (highest to lowest): NUTRITRACK_
// env vars > config file > defaults. cfgFile may be empty, in which case
// nutritrack.yaml in the working directory is used if present.
func Load(cfgFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"database_path":  filepath.Join("data", "nutritrack.db"),
		"catalog_dir":    filepath.Join("data", "catalogs"),
		"default_vendor": "freshmart",
		"demo_mode":      false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		for _, name := range []string{"nutritrack.yaml", "nutritrack.yml"} {
			if _, err := os.Stat(name); err == nil {
				cfgFile = name
				break
			}
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// NUTRITRACK_DATABASE_PATH -> database_path
	if err := k.Load(env.Provider("NUTRITRACK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "NUTRITRACK_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
