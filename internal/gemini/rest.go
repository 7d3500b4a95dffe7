package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxResponseBytes caps how much of a reply body is read
const maxResponseBytes = 4 << 20

// RESTBackend posts generateContent requests over plain HTTP
type RESTBackend struct {
	settings   Settings
	httpClient *http.Client
}

// NewRESTBackend creates a backend for the generateContent REST endpoint
func NewRESTBackend(s Settings) *RESTBackend {
	hc := s.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &RESTBackend{settings: s, httpClient: hc}
}

// Name implements Backend
func (b *RESTBackend) Name() string { return "rest" }

// Endpoint returns the request URL including the key query parameter
func (b *RESTBackend) Endpoint() string {
	base := strings.TrimRight(b.settings.BaseURL, "/")
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		base, url.PathEscape(b.settings.Model), url.QueryEscape(b.settings.APIKey))
}

// Generate issues exactly one POST and maps the reply
func (b *RESTBackend) Generate(ctx context.Context, req Request) (string, bool, error) {
	payload, err := json.Marshal(newGenerateContentRequest(req))
	if err != nil {
		return "", false, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", redactURLError(err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return "", false, fmt.Errorf("request failed: %w", redactURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", false, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false, &ServerError{Status: resp.StatusCode, Message: errorMessage(body)}
	}

	var out generateContentResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", false, fmt.Errorf("failed to parse response: %w", err)
	}
	text, ok := out.firstText()
	return text, ok, nil
}

// errorMessage extracts error.message from a non-2xx body, empty when absent
func errorMessage(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil || e.Error == nil {
		return ""
	}
	return e.Error.Message
}

// redactURLError hides the key query parameter in *url.Error messages
func redactURLError(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	u, perr := url.Parse(ue.URL)
	if perr != nil {
		return err
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return &url.Error{Op: ue.Op, URL: u.String(), Err: ue.Err}
}
