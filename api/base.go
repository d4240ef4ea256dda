package api

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	apiPrefix      = "/api/v1/"
	defaultTimeout = 30 * time.Second
)

// Options are optional parameters of a Client.
type Options struct {
	// Timeout of a single request, 30 seconds by default.
	Timeout time.Duration
	// HTTPClient replaces the default client, Timeout is ignored then.
	HTTPClient *http.Client
	// Logger receives debug request logs, nop by default.
	Logger *zap.Logger
}

// Client handles calls to the DEX HTTP API. It's safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *zap.Logger
}

// Error is a non-200 response of the API.
type Error struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("api error: HTTP %d, code %d: %s", e.StatusCode, e.Code, e.Message)
}

// NewClient creates a new API client for the given base URL, e.g.
// https://dex.binance.org.
func NewClient(baseURL string, opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", baseURL)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		if opts.Timeout <= 0 {
			opts.Timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(u.String(), "/"),
		log:        log,
	}, nil
}

// BaseURL returns the normalized base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + apiPrefix + path
	if len(query) != 0 {
		u += "?" + query.Encode()
	}
	return u
}

// getJSON sends a GET request and decodes the response into v
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, v)
}

// postText sends a POST request with a plain text body
func (c *Client) postText(ctx context.Context, path string, query url.Values, body string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, query), strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v interface{}) error {
	c.log.Debug("api request", zap.String("method", req.Method), zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("api error", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return newError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func newError(status int, body []byte) *Error {
	e := &Error{StatusCode: status}
	if err := json.Unmarshal(body, e); err != nil || e.Message == "" {
		e.Message = string(bytes.TrimSpace(body))
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

func hexBody(b []byte) string {
	return hex.EncodeToString(b)
}
