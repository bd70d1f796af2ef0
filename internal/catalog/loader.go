package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

// Default returns the embedded catalog of built-in tools.
func Default() (*Catalog, error) {
	cat, err := parse(defaultCatalogJSON, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return cat, nil
}

// LoadFrom reads a catalog from a JSON or YAML file. The format is chosen by
// file extension; anything other than .yaml/.yml is parsed as JSON.
func LoadFrom(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{
				Path: path,
				Hint: "Set catalogPath in the config, or leave it empty to use the built-in catalog",
			}
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	cat, err := parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, &InvalidCatalogError{
			Path:    path,
			Message: err.Error(),
			Hint:    "Check the file against the catalog schema (categories, tools)",
		}
	}

	if err := Validate(cat); err != nil {
		return nil, &InvalidCatalogError{
			Path:    path,
			Message: err.Error(),
		}
	}

	return cat, nil
}

// Load returns the catalog at path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFrom(path)
}

func parse(data []byte, ext string) (*Catalog, error) {
	var cat Catalog

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("JSON parse error: %w", err)
		}
	}

	cat.reindex()
	return &cat, nil
}
