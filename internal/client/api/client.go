// Package api implements the HTTP data-access layer for the MediApp
// gateway: a request executor that handles auth header injection, header
// merging and error decoding, plus one operation group per gateway
// resource (auth, users, doctors, bookings, notifications).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mediapp/client-go/internal/logging"
)

// newRequestID is a test seam for X-Request-Id generation.
var newRequestID = uuid.NewString

// TokenSource yields the current access token, or "" when the session is
// anonymous. The session token store satisfies this.
type TokenSource interface {
	AccessToken(ctx context.Context) string
}

// Options configures a Client.
type Options struct {
	// BaseURL is prepended to every endpoint path, e.g.
	// "http://localhost:8550/api/v1".
	BaseURL string

	// Tokens supplies the bearer token for the Authorization default
	// header. Optional; without it all requests go out anonymous.
	Tokens TokenSource

	// AdminToken is sent as X-Admin-Token on admin-only endpoints.
	AdminToken string

	// HTTPClient overrides the underlying transport. Optional.
	HTTPClient *http.Client

	// Logger receives debug-level request/response events. Optional.
	Logger logging.Logger
}

// Client executes requests against the gateway. It is the single place
// that classifies failures: transport errors wrap ErrUnavailable, non-2xx
// responses become *HTTPError, and malformed success bodies degrade to raw
// text instead of failing.
type Client struct {
	baseURL    string
	adminToken string
	tokens     TokenSource
	httpClient *http.Client
	log        logging.Logger
}

// New constructs a Client. BaseURL is used as given; trailing slashes are
// trimmed so endpoint paths can always start with "/".
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		adminToken: opts.AdminToken,
		tokens:     opts.Tokens,
		httpClient: httpClient,
		log:        log,
	}
}

// Do issues one request and returns the decoded body.
//
// Default headers are the bearer token (when a token source is configured
// and yields one) and a generated X-Request-Id. Caller-supplied headers win
// on collision; a caller-supplied header with a single empty value removes
// the header entirely, which lets callers strip the Authorization default.
// Content-Type defaults to application/json when a body is present and
// neither side set one.
//
// The returned bytes are the raw response body: valid JSON for JSON
// responses, the literal text for non-JSON bodies that do not parse as
// JSON, and nil for 204 or empty responses.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, header http.Header) (json.RawMessage, error) {
	var reqBody io.Reader
	hasBody := body != nil
	if hasBody {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	if c.tokens != nil {
		if token := c.tokens.AccessToken(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-Id", newRequestID())

	for key, values := range header {
		if len(values) == 1 && values[0] == "" {
			req.Header.Del(key)
			continue
		}
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if hasBody && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Info(ctx, "gateway request", "method", method, "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := newHTTPError(resp.StatusCode, extractMessage(respBody))
		c.log.Warn(ctx, "gateway error", "method", method, "endpoint", endpoint,
			"status", resp.StatusCode, "message", httpErr.Message)
		return nil, httpErr
	}

	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return nil, nil
	}

	// Non-JSON content types still frequently carry JSON, so the body is
	// handed back as-is; consumers decode what parses and treat the rest
	// as literal text. Decode problems never surface as errors here.
	return respBody, nil
}

// doJSON runs Do and unmarshals a non-empty response into out. A nil out
// discards the body.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body any, header http.Header, out any) error {
	raw, err := c.Do(ctx, method, endpoint, body, header)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, endpoint, err)
	}
	return nil
}

// extractMessage pulls a human-readable message out of an error body.
// The gateway uses "message", a few backing services use "error".
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
