package ws

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wmkit/glazewm-go/internal/config"
)

const (
	// writeWait is the time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// frameBufferSize is the buffer for inbound frames. Buffered so a
	// slow consumer does not immediately stall the read pump.
	frameBufferSize = 100
)

// Transport is a websocket implementation of config.Transport.
type Transport struct {
	log *slog.Logger
	url string

	mu    sync.Mutex
	conn  *websocket.Conn
	ready bool

	// writeMu serializes writes; gorilla connections support one
	// concurrent writer.
	writeMu sync.Mutex

	frames chan []byte
	errs   chan error

	readOnce  sync.Once
	closeOnce sync.Once
}

// Compile-time check that *Transport implements config.Transport.
var _ config.Transport = (*Transport)(nil)

// New creates a websocket transport targeting ws://localhost:<port>.
func New(log *slog.Logger, port int) *Transport {
	return &Transport{
		log:    log.With("component", "ws"),
		url:    fmt.Sprintf("ws://localhost:%d", port),
		frames: make(chan []byte, frameBufferSize),
		errs:   make(chan error, 1),
	}
}

// NewWithURL creates a websocket transport for an explicit URL.
// Used by tests to point at a local test server.
func NewWithURL(log *slog.Logger, url string) *Transport {
	return &Transport{
		log:    log.With("component", "ws"),
		url:    url,
		frames: make(chan []byte, frameBufferSize),
		errs:   make(chan error, 1),
	}
}

// Start dials the window manager's IPC server. The handshake is bounded
// by the context; pass a context with the configured connect timeout.
func (t *Transport) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ready {
		return nil
	}

	t.log.Debug("Dialing IPC server", "url", t.url)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, t.url, nil)
	if err != nil {
		t.log.Debug("Dial failed", "url", t.url, "error", err)

		return fmt.Errorf("dial %s: %w", t.url, err)
	}

	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	t.conn = conn
	t.ready = true

	t.log.Info("Connected to IPC server", "url", t.url)

	return nil
}

// ReadMessages starts the read pump on first call and returns the frame
// and error channels. Both channels are closed when the pump stops.
func (t *Transport) ReadMessages(ctx context.Context) (<-chan []byte, <-chan error) {
	t.readOnce.Do(func() {
		go t.readPump(ctx)
	})

	return t.frames, t.errs
}

// readPump reads frames from the connection until it fails or closes.
func (t *Transport) readPump(ctx context.Context) {
	defer close(t.frames)
	defer close(t.errs)
	defer t.log.Debug("Read pump stopped")

	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()

	if conn == nil {
		t.errs <- fmt.Errorf("transport not started")

		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				t.log.Debug("Connection closed by peer")

				return
			}

			t.mu.Lock()
			wasReady := t.ready
			t.mu.Unlock()

			// Reads fail with a "use of closed" error after Close();
			// that is an expected shutdown, not a transport fault.
			if !wasReady {
				return
			}

			t.log.Debug("Read error", "error", err)
			t.errs <- err

			return
		}

		select {
		case t.frames <- data:
		case <-ctx.Done():
			return
		}
	}
}

// SendText writes a plain-text command string as a single text frame.
func (t *Transport) SendText(ctx context.Context, text string) error {
	t.mu.Lock()
	conn := t.conn
	ready := t.ready
	t.mu.Unlock()

	if !ready || conn == nil {
		return fmt.Errorf("transport not connected")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	return nil
}

// IsReady returns true if the transport is connected.
func (t *Transport) IsReady() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ready
}

// Close terminates the connection. Safe to call multiple times.
func (t *Transport) Close() error {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		conn := t.conn
		t.ready = false
		t.mu.Unlock()

		if conn == nil {
			return
		}

		// Best-effort close handshake before tearing down the socket.
		t.writeMu.Lock()
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait),
		)
		t.writeMu.Unlock()

		if err := conn.Close(); err != nil {
			t.log.Debug("Error closing connection", "error", err)
		}

		t.log.Info("Disconnected from IPC server")
	})

	return nil
}
