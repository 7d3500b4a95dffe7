package export

import (
	"encoding/json"
	"io"

	"github.com/gdgqassim/robo-roadmap/internal"
)

// JSONExporter writes the whole session as one indented JSON document
type JSONExporter struct{}

// Export implements Exporter
func (e *JSONExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(session)
}

// Extension implements Exporter
func (e *JSONExporter) Extension() string {
	return "json"
}
