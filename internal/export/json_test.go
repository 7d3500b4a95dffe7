package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gdgqassim/robo-roadmap/internal"
)

func TestJSONExporter_Export(t *testing.T) {
	session := internal.CreateTestSession("json1")
	session.Messages = append(session.Messages, internal.Message{
		Actor:   internal.ActorAssistant,
		Content: "[server error]: quota <exceeded>",
		Fault:   "server_fault",
	})

	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(session, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var got internal.Session
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.ID != "json1" || got.Source != "chat" {
		t.Errorf("got id=%q source=%q", got.ID, got.Source)
	}
	if len(got.Messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(got.Messages))
	}
	if got.Messages[2].Fault != "server_fault" {
		t.Errorf("fault = %q, want server_fault", got.Messages[2].Fault)
	}
	if !bytes.Contains(buf.Bytes(), []byte("<exceeded>")) {
		t.Error("HTML characters should not be escaped")
	}
}

func TestJSONExporter_Extension(t *testing.T) {
	if got := (&JSONExporter{}).Extension(); got != "json" {
		t.Errorf("Extension() = %v, want json", got)
	}
}
