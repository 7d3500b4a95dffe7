package gemini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gdgqassim/robo-roadmap/internal/config"
	"github.com/gdgqassim/robo-roadmap/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_NoKeyIsUnavailable(t *testing.T) {
	fake := testutil.NewFakeGemini(t, testutil.RespondText("never"))
	cfg := config.Config{
		BaseURL:  fake.URL,
		Model:    config.DefaultModel,
		Backend:  config.BackendREST,
		Language: config.DefaultLanguage,
	}

	c, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, c.Available())
	assert.Equal(t, "none", c.BackendName())

	res := c.Generate(context.Background(), Request{Prompt: "p"})
	assert.Equal(t, KindUnavailable, res.Kind)
	assert.Equal(t, "[service unavailable]: no API key configured", res.Display())
	assert.Equal(t, 0, fake.Count(), "no request without a key")
}

func TestNewBackend(t *testing.T) {
	base := config.Config{APIKey: "k", BaseURL: config.DefaultBaseURL, Model: config.DefaultModel}

	tests := []struct {
		backend string
		want    string
	}{
		{config.BackendREST, "rest"},
		{config.BackendGenAI, "genai"},
		{config.BackendOpenAI, "openai"},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := base
			cfg.Backend = tt.backend
			b, err := NewBackend(context.Background(), cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Name())
		})
	}

	cfg := base
	cfg.Backend = "smoke-signals"
	_, err := NewBackend(context.Background(), cfg)
	require.Error(t, err)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		ok      bool
		err     error
		kind    Kind
		display string
	}{
		{"answer", "hi", true, nil, KindAnswer, "hi"},
		{"absent text", "", false, nil, KindFallback, FallbackText},
		{"empty text", "", true, nil, KindFallback, FallbackText},
		{"server fault", "", false, &ServerError{Status: 429, Message: "quota"}, KindServerFault, "[server error]: quota"},
		{"wrapped server fault", "", false, fmt.Errorf("call: %w", &ServerError{Status: 500}), KindServerFault, "[server error]: unknown server error"},
		{"transport fault", "", false, errors.New("connection reset"), KindTransportFault, "[network error]: connection reset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(tt.text, tt.ok, tt.err)
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.display, res.Display())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "answer", KindAnswer.String())
	assert.Equal(t, "server_fault", KindServerFault.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
	assert.Empty(t, KindAnswer.Label())
}

func TestZeroResultIsNotAnAnswer(t *testing.T) {
	var res Result
	assert.Equal(t, KindUnset, res.Kind)
	assert.Equal(t, "unset", res.Kind.String())
	assert.True(t, res.Failed())
	assert.Equal(t, "[no result]", res.Display())
}

func TestServerErrorMessage(t *testing.T) {
	assert.Equal(t, "server returned 400: bad", (&ServerError{Status: 400, Message: "bad"}).Error())
	assert.Equal(t, "server returned 503 Service Unavailable", (&ServerError{Status: 503}).Error())
}
