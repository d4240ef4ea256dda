// Package rpc implements a client of the node JSON-RPC interface served
// over HTTP.
package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	jsonRPCVersion        = "2.0"
	defaultRequestTimeout = 10 * time.Second
)

// Options defines options for the RPC client. All values are optional.
type Options struct {
	// RequestTimeout of a single call, 10 seconds by default.
	RequestTimeout time.Duration
	// HTTPClient replaces the default client, RequestTimeout is ignored then.
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client executes JSON-RPC calls against a node. Client is thread-safe and
// can be used from multiple goroutines.
type Client struct {
	cli      *http.Client
	endpoint *url.URL
	log      *zap.Logger

	latestReqID *atomic.Uint64
}

// Error is an error returned by the node in the JSON-RPC error member.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Data == "" {
		return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("RPC error %d: %s (%s)", e.Code, e.Message, e.Data)
}

type request struct {
	JSONRPC string                 `json:"jsonrpc"`
	ID      uint64                 `json:"id"`
	Method  string                 `json:"method"`
	Params  map[string]interface{} `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
}

// New returns a new Client for the node at endpoint, e.g.
// https://dataseed1.binance.org:443. No request is made.
func New(endpoint string, opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, fmt.Errorf("invalid node URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid node URL %q: scheme and host are required", endpoint)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	cli := opts.HTTPClient
	if cli == nil {
		if opts.RequestTimeout <= 0 {
			opts.RequestTimeout = defaultRequestTimeout
		}
		cli = &http.Client{Timeout: opts.RequestTimeout}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		cli:         cli,
		endpoint:    u,
		log:         log,
		latestReqID: atomic.NewUint64(0),
	}, nil
}

// NewChecked returns a new Client after making sure the node is healthy.
func NewChecked(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	c, err := New(endpoint, opts)
	if err != nil {
		return nil, err
	}
	if err := c.Health(ctx); err != nil {
		return nil, fmt.Errorf("node %s is not healthy: %w", endpoint, err)
	}
	return c, nil
}

// Endpoint returns the node URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

func (c *Client) url(path string) string {
	u := *c.endpoint
	u.Path += path
	return u.String()
}

// Health checks that the node answers its health endpoint with 200.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.get(ctx, "/health")
	return err
}

// ListEndpoints returns the node's HTML list of available endpoints.
func (c *Client) ListEndpoints(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d/%s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return body, nil
}

func (c *Client) performRequest(ctx context.Context, method string, params map[string]interface{}, v interface{}) error {
	if params == nil {
		params = map[string]interface{}{}
	}
	r := request{
		JSONRPC: jsonRPCVersion,
		ID:      c.latestReqID.Inc(),
		Method:  method,
		Params:  params,
	}
	c.log.Debug("rpc request", zap.String("method", method), zap.Uint64("id", r.ID))

	raw, err := c.makeHTTPRequest(ctx, &r)
	if raw != nil && raw.Error != nil {
		return raw.Error
	} else if err != nil {
		return err
	} else if raw == nil || len(raw.Result) == 0 {
		return errors.New("no result returned")
	}
	return json.Unmarshal(raw.Result, v)
}

func (c *Client) makeHTTPRequest(ctx context.Context, r *request) (*response, error) {
	var (
		buf = new(bytes.Buffer)
		raw = new(response)
	)
	if err := json.NewEncoder(buf).Encode(r); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// A node may answer a failed call with a JSON error and a non-200
	// status, the JSON is more relevant than the status then.
	err = json.NewDecoder(resp.Body).Decode(raw)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			err = fmt.Errorf("HTTP %d/%s", resp.StatusCode, http.StatusText(resp.StatusCode))
		} else {
			err = fmt.Errorf("JSON decoding: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}
