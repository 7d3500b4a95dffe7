package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// RecordedRequest is one request seen by FakeGemini
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// FakeGemini is an httptest server standing in for the generation service
type FakeGemini struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	respond  http.HandlerFunc
}

// NewFakeGemini starts a server that records every request and answers with respond
func NewFakeGemini(t *testing.T, respond http.HandlerFunc) *FakeGemini {
	t.Helper()
	f := &FakeGemini{respond: respond}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		f.mu.Unlock()
		f.respond(w, r)
	}))
	t.Cleanup(f.Server.Close)
	return f
}

// Requests returns a copy of the recorded requests
func (f *FakeGemini) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Count returns the number of requests received
func (f *FakeGemini) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// RespondJSON answers with a fixed status and raw JSON body
func RespondJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// RespondText answers 200 with a generateContent body whose first part is text
func RespondText(text string) http.HandlerFunc {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": []interface{}{map[string]interface{}{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	})
	return RespondJSON(http.StatusOK, string(body))
}

// RespondError answers with status and a Google-style error body
func RespondError(status int, message string) http.HandlerFunc {
	return RespondJSON(status, fmt.Sprintf(`{"error":{"code":%d,"message":%q,"status":"INVALID_ARGUMENT"}}`, status, message))
}

// RespondChatCompletion answers 200 with an OpenAI-style chat completion
func RespondChatCompletion(text string) http.HandlerFunc {
	body, _ := json.Marshal(map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gemini-2.5-flash",
		"choices": []interface{}{
			map[string]interface{}{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": text,
				},
			},
		},
	})
	return RespondJSON(http.StatusOK, string(body))
}
