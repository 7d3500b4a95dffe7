package internal

import (
	"time"
)

// CreateTestSession creates a test session with sample data
func CreateTestSession(id string) *Session {
	return &Session{
		ID:     id,
		Source: "chat",
		Messages: []Message{
			{
				Actor:     ActorUser,
				Content:   "How do I start with Arduino?",
				Timestamp: time.Now().Format(time.RFC3339),
			},
			{
				Actor:     ActorAssistant,
				Content:   "Grab an Uno and blink an LED first!",
				Timestamp: time.Now().Format(time.RFC3339),
			},
		},
		Metadata: Metadata{
			Name:         "Robo chat",
			Model:        "gemini-2.5-flash",
			MessageCount: 2,
			CreatedAt:    time.Now().Format(time.RFC3339),
		},
	}
}

// CreateTestSessionWithMessages creates a test session with custom messages
func CreateTestSessionWithMessages(id string, messages []Message) *Session {
	return &Session{
		ID:       id,
		Source:   "chat",
		Messages: messages,
		Metadata: Metadata{
			MessageCount: len(messages),
		},
	}
}
