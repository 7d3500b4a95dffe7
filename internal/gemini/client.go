// Package gemini dispatches single-turn generation requests and turns every
// outcome into a tagged Result.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/internal/config"
)

// Dispatcher sends one prompt and returns the outcome. It never returns an error.
type Dispatcher interface {
	Generate(ctx context.Context, req Request) Result
}

// Backend performs the actual call. ok is false when a successful reply had no text.
type Backend interface {
	Name() string
	Generate(ctx context.Context, req Request) (text string, ok bool, err error)
}

// Client is the Dispatcher used by the application
type Client struct {
	backend Backend
	model   string
	timeout time.Duration
}

// NewClient builds a Client from configuration. Without an API key the client
// has no backend and answers every call with KindUnavailable.
func NewClient(ctx context.Context, cfg config.Config) (*Client, error) {
	c := &Client{model: cfg.Model, timeout: cfg.Timeout}
	if !cfg.HasAPIKey() {
		internal.LogDebug("No API key configured, generation is unavailable")
		return c, nil
	}
	b, err := NewBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.backend = b
	return c, nil
}

// NewBackend creates the backend named by cfg.Backend
func NewBackend(ctx context.Context, cfg config.Config) (Backend, error) {
	s := Settings{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL, Model: cfg.Model}
	switch cfg.Backend {
	case config.BackendREST, "":
		return NewRESTBackend(s), nil
	case config.BackendGenAI:
		return NewGenAIBackend(ctx, s)
	case config.BackendOpenAI:
		return NewOpenAIBackend(s), nil
	default:
		return nil, &internal.ConfigError{Key: "backend", Err: fmt.Errorf("unsupported backend %q", cfg.Backend)}
	}
}

// NewClientWithBackend wraps an existing backend. A nil backend means unavailable.
func NewClientWithBackend(b Backend, model string, timeout time.Duration) *Client {
	return &Client{backend: b, model: model, timeout: timeout}
}

// Available reports whether requests will be issued
func (c *Client) Available() bool {
	return c.backend != nil
}

// BackendName returns the active backend name, or "none"
func (c *Client) BackendName() string {
	if c.backend == nil {
		return "none"
	}
	return c.backend.Name()
}

// Generate implements Dispatcher
func (c *Client) Generate(ctx context.Context, req Request) Result {
	if c.backend == nil {
		return Result{Kind: KindUnavailable, Text: "no API key configured"}
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	log := internal.LogWith("backend", c.backend.Name(), "model", c.model)
	start := time.Now()
	text, ok, err := c.backend.Generate(ctx, req)
	res := Classify(text, ok, err)
	if res.Failed() {
		log.Warnw("generation failed", "kind", res.Kind, "error", res.Text, "elapsed", time.Since(start))
	} else {
		log.Debugw("generation finished", "kind", res.Kind, "chars", len(res.Text), "elapsed", time.Since(start))
	}
	return res
}

// Classify maps a backend outcome onto a Result
func Classify(text string, ok bool, err error) Result {
	if err != nil {
		var se *ServerError
		if errors.As(err, &se) {
			msg := se.Message
			if msg == "" {
				msg = unknownServerError
			}
			return Result{Kind: KindServerFault, Text: msg, Err: err}
		}
		return Result{Kind: KindTransportFault, Text: err.Error(), Err: err}
	}
	if !ok || text == "" {
		return Result{Kind: KindFallback, Text: FallbackText}
	}
	return Result{Kind: KindAnswer, Text: text}
}
