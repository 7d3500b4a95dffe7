package roadmap

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdgqassim/robo-roadmap/internal"
	"gopkg.in/yaml.v3"
)

//go:embed stages.yaml
var defaultStagesYAML []byte

type catalogFile struct {
	Stages []Stage `yaml:"stages"`
}

// Default returns the built-in roadmap
func Default() (*Catalog, error) {
	stages, err := parseYAML(defaultStagesYAML)
	if err != nil {
		return nil, &internal.CatalogError{Source: "embedded", Key: "stages.yaml", Err: err}
	}
	cat, err := NewCatalog("embedded", stages)
	if err != nil {
		return nil, &internal.CatalogError{Source: "embedded", Key: "stages.yaml", Err: err}
	}
	return cat, nil
}

// Load returns the catalog at path, or the built-in one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile loads a catalog from a YAML file or a SQLite database, chosen by extension
func LoadFile(path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAMLFile(path)
	case ".db", ".sqlite", ".sqlite3":
		return loadSQLiteFile(path)
	default:
		return nil, &internal.CatalogError{
			Source: "file",
			Key:    path,
			Err:    fmt.Errorf("unsupported catalog extension %q (supported: .yaml, .yml, .db, .sqlite)", filepath.Ext(path)),
		}
	}
}

func loadYAMLFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &internal.CatalogError{Source: "yaml", Key: path, Err: err}
	}
	stages, err := parseYAML(data)
	if err != nil {
		return nil, &internal.CatalogError{Source: "yaml", Key: path, Err: err}
	}
	cat, err := NewCatalog(path, stages)
	if err != nil {
		return nil, &internal.CatalogError{Source: "yaml", Key: path, Err: err}
	}
	return cat, nil
}

func parseYAML(data []byte) ([]Stage, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	return f.Stages, nil
}

// MarshalYAML renders stages in the catalog file format
func MarshalYAML(stages []Stage) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(catalogFile{Stages: stages}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
