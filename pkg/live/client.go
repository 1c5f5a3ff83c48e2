package live

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/harunnryd/speechline-go/pkg/errorsx"
	"github.com/harunnryd/speechline-go/pkg/logging"
)

// Config carries the connect-time identity of a live session. URL is the full
// websocket endpoint (ws:// or wss://) without recognition query parameters;
// those come from Options.
type Config struct {
	URL     string
	APIKey  string
	Headers http.Header
	Logger  *slog.Logger
	Dialer  *websocket.Dialer
}

// Client is a streaming transcription session: one socket, one writer, one
// reader, with the caller interacting only through Send, the listener
// registry, and the lifecycle methods.
type Client struct {
	cfg    Config
	opts   Options
	url    string
	logger *slog.Logger
	dialer *websocket.Dialer

	registry *Registry
	queue    *sendQueue
	seq      atomic.Uint64

	// writeMu serializes socket writes between the writer goroutine and the
	// best-effort frames of a forced close.
	writeMu sync.Mutex

	mu        sync.Mutex
	state     State
	sess      *session
	attempts  int
	drained   chan struct{}
	closed    chan struct{}
	closeSent bool
}

// New builds a live client. The connection is not dialed until Connect.
func New(cfg Config, opts Options) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errorsx.New(errorsx.ReasonConfigMissingKey, "api key is required")
	}
	if cfg.URL == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "endpoint url is required")
	}
	opts = opts.withDefaults()

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("parse endpoint url: %w", err), errorsx.ReasonConfigInvalid)
	}
	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "endpoint url scheme must be ws(s) or http(s)")
	}
	q := u.Query()
	for key, vals := range opts.queryValues() {
		q[key] = vals
	}
	u.RawQuery = q.Encode()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logging.NewComponentLogger(logger, "live")

	dialer := cfg.Dialer
	if dialer == nil {
		dialer = &websocket.Dialer{HandshakeTimeout: redialTimeout}
	}

	return &Client{
		cfg:      cfg,
		opts:     opts,
		url:      u.String(),
		logger:   logger,
		dialer:   dialer,
		registry: NewRegistry(logger),
		queue:    newSendQueue(opts.SendBuffer, opts.SendMaxWait),
		state:    StateIdle,
		closed:   make(chan struct{}),
	}, nil
}

func (c *Client) connectHeaders() http.Header {
	h := http.Header{}
	for k, vals := range c.cfg.Headers {
		h[k] = vals
	}
	h.Set("Authorization", "Token "+c.cfg.APIKey)
	return h
}

// Connect dials the endpoint and starts the session. A rejected handshake is
// fatal (credential and endpoint errors are not transient) and leaves the
// client closed.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle {
		st := c.state
		c.mu.Unlock()
		return errorsx.New(errorsx.ReasonLiveState, "connect requires an idle client (state "+st.String()+")")
	}
	c.state = StateConnecting
	c.mu.Unlock()

	c.logger.Info("live_connecting", slog.String("url", c.url))
	ws, resp, err := c.dialer.DialContext(ctx, c.url, c.connectHeaders())
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		c.mu.Lock()
		// Never connected; no close notification to dispatch.
		_ = c.teardownLocked(websocket.CloseAbnormalClosure, "connect failed")
		c.mu.Unlock()
		c.logger.Error("live_connect_failed",
			slog.Int("status", status),
			slog.String("error", err.Error()))
		return errorsx.Wrap(fmt.Errorf("connect %s: %w", c.url, err), errorsx.ReasonLiveConnect)
	}

	c.mu.Lock()
	if c.state != StateConnecting {
		// Closed concurrently during the handshake.
		c.mu.Unlock()
		_ = ws.Close()
		return errorsx.New(errorsx.ReasonLiveState, "client closed during connect")
	}
	c.installSessionLocked(ws)
	c.mu.Unlock()

	c.logger.Info("live_connected")
	c.registry.Dispatch(OpenEvent{})
	return nil
}

// Send enqueues one opaque audio chunk. It is accepted while Connected, and
// while Reconnecting so a transient drop does not lose buffered audio. The
// chunk is copied; callers may reuse their buffer.
func (c *Client) Send(data []byte) error {
	c.mu.Lock()
	st := c.state
	c.mu.Unlock()

	if st != StateConnected && st != StateReconnecting {
		return errorsx.New(errorsx.ReasonLiveState, "send requires a connected session (state "+st.String()+")")
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	f := outboundFrame{audio: buf, seq: c.seq.Add(1)}
	return c.queue.push(f, c.closed)
}

// On registers a listener for an event category; see Registry.On.
func (c *Client) On(t EventType, fn Handler) string {
	return c.registry.On(t, fn)
}

// Off removes a listener registered with On.
func (c *Client) Off(t EventType, id string) bool {
	return c.registry.Off(t, id)
}

// Finish half-closes the session: queued audio is flushed, a Finalize control
// frame follows it, and the reader stays up until the peer closes or the
// drain timeout fires, after which Finish falls back to a forced close.
func (c *Client) Finish(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateConnected {
		st := c.state
		c.mu.Unlock()
		return errorsx.New(errorsx.ReasonLiveState, "finish requires a connected session (state "+st.String()+")")
	}
	c.state = StateClosing
	drained := make(chan struct{})
	c.drained = drained
	c.mu.Unlock()

	c.logger.Info("live_finishing", slog.Int("pending_frames", c.queue.len()))
	if err := c.queue.push(outboundFrame{control: controlFinalize}, c.closed); err != nil {
		_ = c.Close()
		return err
	}

	timer := time.NewTimer(c.opts.DrainTimeout)
	defer timer.Stop()
	select {
	case <-drained:
		return nil
	case <-timer.C:
		c.logger.Warn("live_drain_timeout")
		return c.Close()
	case <-ctx.Done():
		_ = c.Close()
		return ctx.Err()
	}
}

// Close forces teardown from any state. A CloseStream frame and a close
// handshake are attempted best-effort, pending queued frames are discarded,
// and a second Close is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return nil
	}
	prev := c.state
	s := c.sess
	c.mu.Unlock()

	if s != nil {
		s.signal()
		c.writeMu.Lock()
		_ = s.ws.SetWriteDeadline(time.Now().Add(closeGraceWait))
		_ = s.ws.WriteMessage(websocket.TextMessage, encodeControl(controlCloseStream))
		_ = s.ws.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.writeMu.Unlock()
	}

	c.mu.Lock()
	c.queue.discard()
	ev := c.teardownLocked(websocket.CloseNormalClosure, "client closed")
	if prev == StateIdle || prev == StateConnecting {
		// No OpenEvent was ever delivered; a CloseEvent would be unpaired.
		ev = nil
	}
	c.mu.Unlock()

	c.logger.Info("live_closed")
	if ev != nil {
		c.registry.Dispatch(*ev)
	}
	return nil
}

// Stats is a point-in-time snapshot of the send path counters.
type Stats struct {
	Enqueued int64
	Dropped  int64
	Pending  int
}

// Stats reports how many frames were accepted and rejected by the send
// queue, and how many are still waiting for the writer.
func (c *Client) Stats() Stats {
	return Stats{
		Enqueued: c.queue.pushed.Load(),
		Dropped:  c.queue.dropped.Load(),
		Pending:  c.queue.len(),
	}
}

// IsConnected reports whether the session is currently connected.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateConnected
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
