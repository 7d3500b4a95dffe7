package internal

import (
	"testing"
	"time"
)

func TestTranscript_AppendOnly(t *testing.T) {
	tr := NewTranscript()
	if tr.ID() == "" {
		t.Fatal("transcript should have an ID")
	}
	if _, ok := tr.Last(); ok {
		t.Error("Last() on empty transcript should report false")
	}

	tr.Append(Message{Actor: ActorAssistant, Content: "hi"})
	tr.Append(Message{Actor: ActorUser, Content: "hello"})

	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
	last, ok := tr.Last()
	if !ok || last.Content != "hello" {
		t.Errorf("Last() = %+v", last)
	}

	msgs := tr.Messages()
	msgs[0].Content = "edited"
	if tr.Messages()[0].Content != "hi" {
		t.Error("Messages() must return a copy")
	}
}

func TestTranscript_Timestamps(t *testing.T) {
	tr := NewTranscript()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	tr.Append(Message{Actor: ActorUser, Content: "a"})
	tr.Append(Message{Actor: ActorUser, Content: "b", Timestamp: "keep"})

	msgs := tr.Messages()
	if msgs[0].Timestamp != "2026-03-01T12:00:00Z" {
		t.Errorf("Timestamp = %q", msgs[0].Timestamp)
	}
	if msgs[1].Timestamp != "keep" {
		t.Errorf("existing timestamp overwritten: %q", msgs[1].Timestamp)
	}
}

func TestTranscript_Session(t *testing.T) {
	tr := NewTranscript()
	tr.Append(Message{Actor: ActorUser, Content: "a"})

	s := tr.Session("ask", Metadata{Model: "gemini-2.5-flash"})
	if s.ID != tr.ID() || s.Source != "ask" {
		t.Errorf("session = %+v", s)
	}
	if s.Metadata.MessageCount != 1 || s.Metadata.CreatedAt == "" || s.Metadata.Model != "gemini-2.5-flash" {
		t.Errorf("metadata = %+v", s.Metadata)
	}

	tr.Append(Message{Actor: ActorAssistant, Content: "b"})
	if len(s.Messages) != 1 {
		t.Error("snapshot must not change after further appends")
	}
}
