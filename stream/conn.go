// Package stream reads the DEX WebSocket push streams.
package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	defaultDialTimeout = 10 * time.Second
	closeWait          = time.Second
)

// ErrClosed is returned by a Conn after Close.
var ErrClosed = errors.New("stream closed")

// Options are optional parameters of a Conn.
type Options struct {
	// DialTimeout of the handshake, 10 seconds by default.
	DialTimeout time.Duration
	Header      http.Header
	Logger      *zap.Logger
}

// Message is one frame of a stream. Stream and Data are set when the frame
// is a {"stream":..,"data":..} envelope.
type Message struct {
	Stream string
	Data   json.RawMessage
	Raw    []byte
}

// Decode unmarshals the message payload into v, the envelope data if there
// is one.
func (m Message) Decode(v interface{}) error {
	if len(m.Data) != 0 {
		return json.Unmarshal(m.Data, v)
	}
	return json.Unmarshal(m.Raw, v)
}

// BlockHeight is the payload of the block height stream.
type BlockHeight struct {
	Height int64 `json:"h"`
}

func decodeMessage(raw []byte) Message {
	var env struct {
		Stream string          `json:"stream"`
		Data   json.RawMessage `json:"data"`
	}
	msg := Message{Raw: raw}
	if err := json.Unmarshal(raw, &env); err == nil && env.Stream != "" {
		msg.Stream = env.Stream
		msg.Data = env.Data
	}
	return msg
}

// Conn is bound to one stream URL. It offers a blocking single receive and
// a run-until-closed loop. There is no reconnection.
type Conn struct {
	url    string
	dialer *websocket.Dialer
	header http.Header
	log    *zap.Logger

	closed *atomic.Bool
	done   chan struct{}
}

// NewConn returns a Conn for url, nothing is dialed until Receive or Run.
func NewConn(url string, opts Options) *Conn {
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Conn{
		url: url,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: opts.DialTimeout,
		},
		header: opts.Header,
		log:    log,
		closed: atomic.NewBool(false),
		done:   make(chan struct{}),
	}
}

// URL returns the stream URL.
func (c *Conn) URL() string {
	return c.url
}

func (c *Conn) dial(ctx context.Context) (*websocket.Conn, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	ws, resp, err := c.dialer.DialContext(ctx, c.url, c.header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.url, err)
	}
	c.log.Debug("stream connected", zap.String("url", c.url))
	return ws, nil
}

// Receive connects, reads a single message and disconnects.
func (c *Conn) Receive(ctx context.Context) (Message, error) {
	ws, err := c.dial(ctx)
	if err != nil {
		return Message{}, err
	}
	defer ws.Close()

	stop := c.watch(ctx, ws)
	defer close(stop)

	_, raw, err := ws.ReadMessage()
	if err != nil {
		if c.closed.Load() {
			return Message{}, ErrClosed
		}
		if ctx.Err() != nil {
			return Message{}, ctx.Err()
		}
		return Message{}, fmt.Errorf("failed to read message: %w", err)
	}
	closeGracefully(ws)
	return decodeMessage(raw), nil
}

// Run connects and calls handler for every message until the server closes
// the connection, ctx is done or Close is called, in which cases it returns
// nil. A handler error stops the loop and is returned.
func (c *Conn) Run(ctx context.Context, handler func(Message) error) error {
	ws, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer ws.Close()

	stop := c.watch(ctx, ws)
	defer close(stop)

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if c.closed.Load() || ctx.Err() != nil ||
				websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Debug("stream finished", zap.String("url", c.url))
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}
		if err := handler(decodeMessage(raw)); err != nil {
			closeGracefully(ws)
			return err
		}
	}
}

// watch closes ws when ctx is done or the Conn is closed, until stop is
// closed.
func (c *Conn) watch(ctx context.Context, ws *websocket.Conn) chan struct{} {
	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-c.done:
		case <-stop:
			return
		}
		closeGracefully(ws)
		_ = ws.Close()
	}()
	return stop
}

// Close ends a running Run or Receive, later calls of both return
// ErrClosed.
func (c *Conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(c.done)
	return nil
}

func closeGracefully(ws *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWait))
}
