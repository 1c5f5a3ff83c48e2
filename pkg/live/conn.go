package live

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/harunnryd/speechline-go/pkg/errorsx"
)

const (
	writeWait      = 10 * time.Second
	closeGraceWait = 2 * time.Second
	redialTimeout  = 10 * time.Second
)

// State is the connection lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
	StateClosing
	StateReconnecting
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateClosing:
		return "closing"
	case StateReconnecting:
		return "reconnecting"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// session owns one socket. The reader and writer goroutines are the only code
// paths that touch the socket; a reconnect retires both before dialing again.
type session struct {
	ws       *websocket.Conn
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func newSession(ws *websocket.Conn) *session {
	return &session{ws: ws, done: make(chan struct{})}
}

// signal asks both loops to stop without closing the socket yet.
func (s *session) signal() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *session) stop() {
	s.signal()
	_ = s.ws.Close()
}

func (c *Client) readLoop(s *session) {
	defer s.wg.Done()
	for {
		mt, data, err := s.ws.ReadMessage()
		if err != nil {
			c.handleTransportError(s, err)
			return
		}
		switch mt {
		case websocket.TextMessage:
			c.registry.Dispatch(decodeEvent(data))
		case websocket.BinaryMessage:
			c.logger.Warn("live_unexpected_binary_frame", slog.Int("size", len(data)))
		}
	}
}

func (c *Client) writeLoop(s *session) {
	defer s.wg.Done()
	idle := time.NewTimer(c.opts.KeepAlive)
	defer idle.Stop()
	for {
		select {
		case <-s.done:
			return
		case f := <-c.queue.ch:
			if err := c.writeFrame(s, f); err != nil {
				c.handleTransportError(s, err)
				return
			}
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(c.opts.KeepAlive)
		case <-idle.C:
			// Keepalives belong to the Connected state only. During the
			// Closing drain window the peer is already finalizing; injecting
			// frames there can hold the drain open.
			if c.State() != StateConnected {
				idle.Reset(c.opts.KeepAlive)
				continue
			}
			if err := c.writeControl(s, controlKeepAlive); err != nil {
				c.handleTransportError(s, err)
				return
			}
			c.logger.Debug("live_keepalive_sent")
			idle.Reset(c.opts.KeepAlive)
		}
	}
}

func (c *Client) writeFrame(s *session, f outboundFrame) error {
	if f.isControl() {
		return c.writeControl(s, f.control)
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = s.ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.ws.WriteMessage(websocket.BinaryMessage, f.audio); err != nil {
		return err
	}
	c.logger.Debug("live_audio_written",
		slog.Uint64("seq", f.seq),
		slog.Int("bytes", len(f.audio)))
	return nil
}

func (c *Client) writeControl(s *session, kind controlKind) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = s.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return s.ws.WriteMessage(websocket.TextMessage, encodeControl(kind))
}

// handleTransportError funnels every socket-level failure through the state
// machine. It is called from the reader or writer goroutine of the failing
// session only; stale sessions (already replaced by a reconnect) are ignored.
func (c *Client) handleTransportError(s *session, err error) {
	c.mu.Lock()
	if c.sess != s {
		c.mu.Unlock()
		return
	}

	switch c.state {
	case StateClosing:
		// Drain resolution: the peer echoed our close (or died trying).
		ev := c.teardownLocked(closeCode(err), closeReason(err))
		c.mu.Unlock()
		if ev != nil {
			c.registry.Dispatch(*ev)
		}
		return
	case StateClosed:
		c.mu.Unlock()
		return
	}

	if c.opts.AutoReconnect && c.attempts < c.opts.MaxReconnects {
		c.state = StateReconnecting
		c.sess = nil
		s.stop()
		c.mu.Unlock()
		c.logger.Warn("live_transport_error",
			slog.String("error", err.Error()),
			slog.String("action", "reconnect"))
		go c.reconnectLoop(s)
		return
	}

	ev := c.teardownLocked(closeCode(err), "transport failure: "+err.Error())
	c.mu.Unlock()
	c.logger.Warn("live_disconnected",
		slog.String("error", err.Error()),
		slog.String("reason_code", string(errorsx.ReasonLiveDisconnected)))
	if ev != nil {
		c.registry.Dispatch(*ev)
	}
}

// reconnectLoop runs after the failed session's loops have been signaled.
// Backoff doubles per consecutive failed attempt, bounded by the configured
// ceiling; a successful connect resets the attempt counter.
func (c *Client) reconnectLoop(old *session) {
	old.wg.Wait()

	delay := c.opts.ReconnectBackoff
	for {
		c.mu.Lock()
		if c.state != StateReconnecting {
			c.mu.Unlock()
			return
		}
		attempt := c.attempts + 1
		c.mu.Unlock()

		select {
		case <-c.closed:
			return
		case <-time.After(delay):
		}

		c.mu.Lock()
		if c.state != StateReconnecting {
			c.mu.Unlock()
			return
		}
		c.state = StateConnecting
		c.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), redialTimeout)
		ws, _, err := c.dialer.DialContext(ctx, c.url, c.connectHeaders())
		cancel()
		if err != nil {
			c.mu.Lock()
			if c.state != StateConnecting {
				c.mu.Unlock()
				return
			}
			c.attempts++
			exhausted := c.attempts >= c.opts.MaxReconnects
			c.logger.Warn("live_reconnect_attempt_failed",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", c.opts.MaxReconnects),
				slog.String("error", err.Error()))
			if exhausted {
				ev := c.teardownLocked(websocket.CloseAbnormalClosure, "reconnect attempts exhausted")
				c.mu.Unlock()
				c.logger.Error("live_reconnect_exhausted",
					slog.String("reason_code", string(errorsx.ReasonLiveReconnectExhausted)))
				if ev != nil {
					c.registry.Dispatch(*ev)
				}
				return
			}
			c.state = StateReconnecting
			c.mu.Unlock()
			delay = minDuration(delay*2, c.opts.ReconnectMaxDelay)
			continue
		}

		c.mu.Lock()
		if c.state != StateConnecting {
			c.mu.Unlock()
			_ = ws.Close()
			return
		}
		c.installSessionLocked(ws)
		c.mu.Unlock()
		c.logger.Info("live_reconnected", slog.Int("attempts", attempt))
		c.registry.Dispatch(OpenEvent{})
		return
	}
}

// installSessionLocked wires a freshly dialed socket into the client and
// starts its reader/writer pair. Caller holds c.mu.
func (c *Client) installSessionLocked(ws *websocket.Conn) {
	s := newSession(ws)
	c.sess = s
	c.state = StateConnected
	c.attempts = 0
	s.wg.Add(2)
	go c.readLoop(s)
	go c.writeLoop(s)
}

// teardownLocked moves the connection to its terminal state. Returns the
// close notification to dispatch, or nil when one was already emitted.
// Caller holds c.mu and dispatches after unlocking.
func (c *Client) teardownLocked(code int, reason string) *CloseEvent {
	if c.sess != nil {
		c.sess.stop()
		c.sess = nil
	}
	if c.state == StateClosed {
		return nil
	}
	c.state = StateClosed
	if c.drained != nil {
		close(c.drained)
		c.drained = nil
	}
	close(c.closed)
	if c.closeSent {
		return nil
	}
	c.closeSent = true
	return &CloseEvent{Code: code, Reason: reason}
}

func closeCode(err error) int {
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return websocket.CloseAbnormalClosure
}

func closeReason(err error) string {
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return "stream finished"
		}
		return ce.Text
	}
	return err.Error()
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
