package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ChetanGaurkhede/client-store-rating/internal/logging"
	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// Client is the single chokepoint for talking to the store-rating backend.
// It attaches the ambient bearer credential to every outgoing request,
// unwraps successful responses into domain payloads and normalizes every
// failure into a one-message error.
//
// The credential has exactly two states: unset (anonymous) and set
// (authenticated). SetAuthToken is the only mutation point.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string

	onUnauthorized func()
}

// NewClient builds a Client for the given base URL. A non-positive timeout
// falls back to the default of 10s.
func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetAuthToken sets the ambient credential attached to subsequent requests.
// An empty token clears it, returning the client to the anonymous state.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// SetUnauthorizedHandler registers the callback fired whenever the server
// rejects the credential with 401. The handler must be safe to invoke more
// than once: several in-flight requests can each observe 401 independently.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs one request against the backend. On success the payload body
// is decoded into out (when out is non-nil); on failure the returned error
// carries a single human-readable message per normalizeError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return normalizeError("", err.Error())
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return normalizeError("", err.Error())
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api transport failure", "method", method, "path", path, "error", err)
		return normalizeError("", err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return normalizeError("", err.Error())
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)

		if resp.StatusCode == http.StatusUnauthorized {
			c.log.Warn(ctx, "credential rejected, tearing down session", "method", method, "path", path)
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
		}

		return normalizeError(eb.Error, "")
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return normalizeError("", err.Error())
		}
	}

	return nil
}
