package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/genai"
)

// GenAIBackend dispatches through the Google Gen AI SDK
type GenAIBackend struct {
	client *genai.Client
	model  string
}

// NewGenAIBackend creates an SDK client against the Gemini API
func NewGenAIBackend(ctx context.Context, s Settings) (*GenAIBackend, error) {
	cc := &genai.ClientConfig{
		APIKey:     s.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: s.HTTPClient,
	}
	if s.BaseURL != "" {
		base, version := splitAPIVersion(s.BaseURL)
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: base, APIVersion: version}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GenAIBackend{client: client, model: s.Model}, nil
}

// Name implements Backend
func (b *GenAIBackend) Name() string { return "genai" }

// Generate implements Backend
func (b *GenAIBackend) Generate(ctx context.Context, req Request) (string, bool, error) {
	var cfg *genai.GenerateContentConfig
	if req.SystemInstruction != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		}
	}

	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", false, &ServerError{Status: apiErr.Code, Message: apiErr.Message}
		}
		var apiErrPtr *genai.APIError
		if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
			return "", false, &ServerError{Status: apiErrPtr.Code, Message: apiErrPtr.Message}
		}
		return "", false, err
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", false, nil
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil || len(c.Content.Parts) == 0 || c.Content.Parts[0] == nil {
		return "", false, nil
	}
	return c.Content.Parts[0].Text, true, nil
}

// splitAPIVersion turns ".../v1beta" into the SDK's base URL and API version
func splitAPIVersion(raw string) (string, string) {
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return raw, ""
	}
	path := u.Path
	i := strings.LastIndex(path, "/")
	last := path[i+1:]
	if !strings.HasPrefix(last, "v1") {
		return strings.TrimRight(raw, "/") + "/", ""
	}
	u.Path = path[:i+1]
	return u.String(), last
}
