package internal

import "fmt"

// CatalogError represents errors loading the roadmap catalog
type CatalogError struct {
	Source string // "embedded", "yaml", "sqlite"
	Key    string // file path or storage key
	Err    error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error %s: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
