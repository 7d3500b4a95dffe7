package internal

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActorUser      = "user"
	ActorAssistant = "assistant"
)

// Session is an exportable snapshot of a chat transcript
type Session struct {
	ID       string    `json:"id" yaml:"id"`
	Source   string    `json:"source" yaml:"source"` // "chat", "ask"
	Messages []Message `json:"messages" yaml:"messages"`
	Metadata Metadata  `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Message is one chat turn
type Message struct {
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Actor     string `json:"actor" yaml:"actor"` // "user", "assistant"
	Content   string `json:"content" yaml:"content"`
	// Fault is set on assistant turns that carry a failure instead of an answer.
	Fault string `json:"fault,omitempty" yaml:"fault,omitempty"`
}

// Metadata contains additional session information
type Metadata struct {
	CreatedAt    string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	MessageCount int    `json:"message_count" yaml:"message_count"`
	Model        string `json:"model,omitempty" yaml:"model,omitempty"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Transcript is the append-only sequence of chat messages for one run.
// Messages are never removed, edited or reordered.
type Transcript struct {
	id        string
	createdAt time.Time
	messages  []Message
	now       func() time.Time
}

// NewTranscript creates an empty transcript with a fresh session ID
func NewTranscript() *Transcript {
	return &Transcript{
		id:        uuid.NewString(),
		createdAt: time.Now(),
		now:       time.Now,
	}
}

// ID returns the transcript's session ID
func (t *Transcript) ID() string {
	return t.id
}

// Append adds a message at the end, stamping it if it has no timestamp
func (t *Transcript) Append(msg Message) {
	if msg.Timestamp == "" {
		msg.Timestamp = t.now().Format(time.RFC3339)
	}
	t.messages = append(t.messages, msg)
}

// Len returns the number of messages
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recent message
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Messages returns a copy of the messages in insertion order
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Session snapshots the transcript for export
func (t *Transcript) Session(source string, meta Metadata) *Session {
	msgs := t.Messages()
	meta.MessageCount = len(msgs)
	if meta.CreatedAt == "" {
		meta.CreatedAt = t.createdAt.Format(time.RFC3339)
	}
	return &Session{
		ID:       t.id,
		Source:   source,
		Messages: msgs,
		Metadata: meta,
	}
}
