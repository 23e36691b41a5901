package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"threeclick/internal/domain"
)

// DefaultBaseURL is the fallback API endpoint for local development.
const DefaultBaseURL = "http://localhost:5001"

// Error is the normalized failure value for any non-2xx response. Message is
// the server-provided error text when the body carried one, else the HTTP
// status text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Is maps well-known statuses onto the domain sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *Error) Is(target error) bool {
	switch target {
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// errorBody is the shape the backend uses for structured errors.
type errorBody struct {
	Error string `json:"error"`
}

// Client talks to the website-builder REST API.
type Client struct {
	base   string
	http   *http.Client
	tokens domain.TokenStore
	logger *slog.Logger

	// onUnauthorized fires after a 401 has cleared the token. It is the
	// login-redirect side effect; the CLI shell installs it at wiring time.
	onUnauthorized func()
}

// New returns a Client for the given base URL. A nil httpClient falls back to
// a client with a 30s timeout.
func New(base string, tokens domain.TokenStore, httpClient *http.Client, logger *slog.Logger) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		base:   base,
		http:   httpClient,
		tokens: tokens,
		logger: logger.With("component", "api_client"),
	}
}

// SetUnauthorizedHandler registers the hook that fires on any 401.
func (c *Client) SetUnauthorizedHandler(fn func()) { c.onUnauthorized = fn }

// do issues one request. in (when non-nil) is JSON-encoded; out (when
// non-nil) receives the decoded 2xx body.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.attachToken(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode/100 != 2 {
		return c.asError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	_, _ = io.Copy(io.Discard, resp.Body) // drain so the connection can be reused by the pool
	return nil
}

// doRaw issues one request and returns the raw 2xx body bytes. Used for the
// PDF download, which is not JSON.
func (c *Client) doRaw(ctx context.Context, method, path string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.attachToken(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode/100 != 2 {
		return nil, c.asError(resp)
	}
	return io.ReadAll(resp.Body)
}

// attachToken adds the Authorization header when a token is persisted.
// Read failures are treated as no token.
func (c *Client) attachToken(req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, ok, err := c.tokens.LoadToken()
	if err != nil {
		c.logger.Warn("read token", "error", err)
		return
	}
	if ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// asError normalizes a non-2xx response, firing the global 401 side effect
// first when it applies.
func (c *Client) asError(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
	}

	msg := resp.Status
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Error != "" {
		msg = eb.Error
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}

// handleUnauthorized clears the persisted token and fires the registered
// hook. Runs for every 401, independent of which call produced it.
func (c *Client) handleUnauthorized() {
	if c.tokens != nil {
		if err := c.tokens.ClearToken(); err != nil {
			c.logger.Warn("clear token after 401", "error", err)
		}
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}
