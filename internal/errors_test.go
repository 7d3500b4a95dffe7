package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalogError(t *testing.T) {
	originalErr := errors.New("invalid JSON")
	err := &CatalogError{
		Source: "sqlite",
		Key:    "stage:3",
		Err:    originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "catalog error") {
		t.Errorf("CatalogError.Error() should contain 'catalog error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "stage:3") {
		t.Errorf("CatalogError.Error() should contain key, got: %q", errorMsg)
	}
	if !errors.Is(err, originalErr) {
		t.Error("CatalogError.Unwrap() should return original error")
	}
}

func TestConfigError(t *testing.T) {
	originalErr := errors.New("unknown backend")
	err := &ConfigError{Key: "backend", Err: originalErr}

	if !strings.Contains(err.Error(), "backend") {
		t.Errorf("ConfigError.Error() should contain key, got: %q", err.Error())
	}
	if !errors.Is(err, originalErr) {
		t.Error("ConfigError.Unwrap() should return original error")
	}
}

func TestExportError(t *testing.T) {
	originalErr := errors.New("disk full")
	err := &ExportError{
		Format: "md",
		Path:   "/tmp/chat.md",
		Err:    originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "export error") {
		t.Errorf("ExportError.Error() should contain 'export error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "md") {
		t.Errorf("ExportError.Error() should contain format, got: %q", errorMsg)
	}

	var exportErr *ExportError
	wrapped := errors.Join(errors.New("outer"), err)
	if !errors.As(wrapped, &exportErr) {
		t.Error("errors.As should find ExportError")
	}
}
