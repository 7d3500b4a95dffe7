package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIBackend dispatches through Gemini's OpenAI-compatible endpoint
type OpenAIBackend struct {
	client openai.Client
	model  string
}

// NewOpenAIBackend creates a chat-completions client rooted at {base}/openai/
func NewOpenAIBackend(s Settings) *OpenAIBackend {
	opts := []option.RequestOption{
		option.WithAPIKey(s.APIKey),
		option.WithBaseURL(strings.TrimRight(s.BaseURL, "/") + "/openai/"),
		option.WithMaxRetries(0),
	}
	if s.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(s.HTTPClient))
	}
	return &OpenAIBackend{client: openai.NewClient(opts...), model: s.Model}
}

// Name implements Backend
func (b *OpenAIBackend) Name() string { return "openai" }

// Generate implements Backend
func (b *OpenAIBackend) Generate(ctx context.Context, req Request) (string, bool, error) {
	var msgs []openai.ChatCompletionMessageParamUnion
	if req.SystemInstruction != "" {
		msgs = append(msgs, openai.SystemMessage(req.SystemInstruction))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt))

	resp, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(b.model),
		Messages: msgs,
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", false, &ServerError{Status: apiErr.StatusCode, Message: apiErr.Message}
		}
		return "", false, err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", false, nil
	}
	return resp.Choices[0].Message.Content, true, nil
}
