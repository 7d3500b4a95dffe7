package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gdgqassim/robo-roadmap/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenAIClient(t *testing.T, fake *testutil.FakeGemini) *Client {
	t.Helper()
	b, err := NewGenAIBackend(context.Background(), Settings{
		APIKey:     "test-key",
		BaseURL:    fake.URL + "/v1beta",
		Model:      "gemini-2.5-flash",
		HTTPClient: fake.Client(),
	})
	require.NoError(t, err)
	return NewClientWithBackend(b, "gemini-2.5-flash", 0)
}

func TestGenAI_Answer(t *testing.T) {
	fake := testutil.NewFakeGemini(t, testutil.RespondText("X"))
	res := newGenAIClient(t, fake).Generate(context.Background(), Request{Prompt: "hi", SystemInstruction: "be Robo"})

	assert.Equal(t, KindAnswer, res.Kind)
	assert.Equal(t, "X", res.Text)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.True(t, strings.HasSuffix(reqs[0].Path, "/v1beta/models/gemini-2.5-flash:generateContent"), reqs[0].Path)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(reqs[0].Body, &body))
	assert.Contains(t, body, "systemInstruction")
}

func TestGenAI_ServerFault(t *testing.T) {
	fake := testutil.NewFakeGemini(t, testutil.RespondError(http.StatusBadRequest, "API key not valid"))
	res := newGenAIClient(t, fake).Generate(context.Background(), Request{Prompt: "hi"})

	assert.Equal(t, KindServerFault, res.Kind)
	assert.Equal(t, "[server error]: API key not valid", res.Display())
}

func TestGenAI_Fallback(t *testing.T) {
	fake := testutil.NewFakeGemini(t, testutil.RespondJSON(http.StatusOK, `{"candidates":[]}`))
	res := newGenAIClient(t, fake).Generate(context.Background(), Request{Prompt: "hi"})
	assert.Equal(t, KindFallback, res.Kind)
}

func TestSplitAPIVersion(t *testing.T) {
	tests := []struct {
		in      string
		base    string
		version string
	}{
		{"https://generativelanguage.googleapis.com/v1beta", "https://generativelanguage.googleapis.com/", "v1beta"},
		{"http://127.0.0.1:8080/v1/", "http://127.0.0.1:8080/", "v1"},
		{"https://proxy.local/gemini", "https://proxy.local/gemini/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			base, version := splitAPIVersion(tt.in)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.version, version)
		})
	}
}
