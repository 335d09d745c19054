package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var defaultCatalogsFS embed.FS

// catalogFile is the on-disk YAML shape of one vendor catalog. The products
// list preserves declaration order, which Catalog relies on for matching.
type catalogFile struct {
	Vendor   Vendor      `yaml:"vendor"`
	Products []Product `yaml:"products"`
}

// ParseCatalog decodes one catalog YAML document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if cf.Vendor.ID == "" {
		return nil, fmt.Errorf("catalog is missing vendor.id")
	}
	return New(cf.Vendor, cf.Products)
}

// DefaultCatalogs returns the catalogs shipped with the binary, keyed by
// vendor ID.
func DefaultCatalogs() (map[string]*Catalog, error) {
	entries, err := defaultCatalogsFS.ReadDir("catalogs")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalogs: %w", err)
	}
	out := make(map[string]*Catalog, len(entries))
	for _, e := range entries {
		data, err := defaultCatalogsFS.ReadFile("catalogs/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded catalog %s: %w", e.Name(), err)
		}
		c, err := ParseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("embedded catalog %s: %w", e.Name(), err)
		}
		out[c.Vendor.ID] = c
	}
	return out, nil
}

// LoadDir reads every *.yaml/*.yml catalog in dir, keyed by vendor ID.
// A missing directory is not an error; it just yields no catalogs.
func LoadDir(dir string) (map[string]*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to read catalog directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make(map[string]*Catalog, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
		}
		c, err := ParseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", path, err)
		}
		out[c.Vendor.ID] = c
	}
	return out, nil
}

// WriteCatalog saves a catalog as YAML, one file per vendor, creating the
// directory if needed. Used by the importer.
func WriteCatalog(dir string, c *Catalog) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create catalog directory %s: %w", dir, err)
	}
	data, err := yaml.Marshal(catalogFile{Vendor: c.Vendor, Products: c.products})
	if err != nil {
		return "", fmt.Errorf("failed to marshal catalog: %w", err)
	}
	path := filepath.Join(dir, c.Vendor.ID+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write catalog file: %w", err)
	}
	return path, nil
}
