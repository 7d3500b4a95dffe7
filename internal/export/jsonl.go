package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gdgqassim/robo-roadmap/internal"
)

// JSONLExporter writes one message per line, tagged with the session ID
type JSONLExporter struct{}

type jsonlLine struct {
	Session   string `json:"session"`
	Index     int    `json:"index"`
	Actor     string `json:"actor"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
	Fault     string `json:"fault,omitempty"`
}

// Export implements Exporter
func (e *JSONLExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for i, msg := range session.Messages {
		line := jsonlLine{
			Session:   session.ID,
			Index:     i,
			Actor:     msg.Actor,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
			Fault:     msg.Fault,
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("failed to encode message %d: %w", i, err)
		}
	}
	return nil
}

// Extension implements Exporter
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
