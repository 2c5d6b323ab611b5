package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wmkit/glazewm-go/internal/config"
	"github.com/wmkit/glazewm-go/internal/dispatch"
	"github.com/wmkit/glazewm-go/internal/errors"
	"github.com/wmkit/glazewm-go/internal/proc"
	"github.com/wmkit/glazewm-go/internal/protocol"
	"github.com/wmkit/glazewm-go/internal/ws"
)

// Client owns one connection to the window manager and the machinery
// built on top of it: the protocol controller, the event dispatcher, and
// the connect/disconnect/error observer lists.
//
// Subscriptions and observers belong to the Client, not to a single
// connection; they survive a disconnect and keep working after a later
// Connect.
type Client struct {
	log        *slog.Logger
	options    *config.Options
	dispatcher *dispatch.Registry

	// connectMu ensures only one connection attempt is in flight.
	connectMu sync.Mutex

	// reqMu serializes command turns; the wire protocol correlates
	// responses by order, so one request is outstanding at a time.
	reqMu sync.Mutex

	// mu guards the per-connection state below.
	mu         sync.Mutex
	transport  config.Transport
	controller *protocol.Controller
	connected  bool
	eg         *errgroup.Group

	obsMu        sync.Mutex
	onConnect    []func()
	onDisconnect []func()
	onError      []func(error)
}

// New creates a client from options. The client is not connected;
// call Connect, or rely on an operation's implicit connect.
func New(options *config.Options) *Client {
	if options == nil {
		options = &config.Options{}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	log = log.With("component", "client")

	return &Client{
		log:        log,
		options:    options,
		dispatcher: dispatch.NewRegistry(log),
	}
}

// IsConnected reports current liveness.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.connected
}

// Connect opens the transport to the window manager. It is a no-op when
// already live. The attempt is bounded by the configured timeout; no
// retries are made. On success all connect-observers run; on failure all
// error-observers run and a ConnectionError carrying the cause is
// returned.
func (c *Client) Connect(ctx context.Context) error {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	if c.IsConnected() {
		return nil
	}

	transport := c.options.Transport
	if transport == nil {
		transport = ws.New(c.log, c.options.PortOrDefault())
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.options.TimeoutOrDefault())
	defer cancel()

	if err := transport.Start(dialCtx); err != nil {
		connErr := &errors.ConnectionError{Err: err}

		c.log.Warn("Connection attempt failed", "error", err)
		c.notifyError(connErr)

		return connErr
	}

	controller := protocol.NewController(c.log, transport)

	// The read loop outlives this call; it runs until the connection dies.
	if err := controller.Start(context.Background()); err != nil {
		_ = transport.Close()

		connErr := &errors.ConnectionError{Err: err}
		c.notifyError(connErr)

		return connErr
	}

	eg := &errgroup.Group{}

	c.mu.Lock()
	c.transport = transport
	c.controller = controller
	c.connected = true
	c.eg = eg
	c.mu.Unlock()

	eg.Go(func() error {
		c.eventLoop(controller)

		return nil
	})

	eg.Go(func() error {
		c.watchConnection(controller)

		return nil
	})

	c.log.Info("Connected")
	c.notifyConnect()

	return nil
}

// Disconnect closes the transport and fails all pending requests with
// ErrConnectionClosed. Idempotent; bulk cancellation runs even when the
// connection is already dead, so no pending work can leak.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	transport := c.transport
	controller := c.controller
	eg := c.eg
	wasConnected := c.connected
	c.transport = nil
	c.controller = nil
	c.eg = nil
	c.connected = false
	c.mu.Unlock()

	if controller != nil {
		// Stop cancels every remaining pending request.
		controller.Stop()
	}

	if transport != nil {
		_ = transport.Close()
	}

	if eg != nil {
		_ = eg.Wait()
	}

	if wasConnected {
		c.log.Info("Disconnected")
		c.notifyDisconnect()
	}

	return nil
}

// eventLoop forwards demultiplexed event notifications to the dispatcher
// until the connection's event channel closes.
func (c *Client) eventLoop(controller *protocol.Controller) {
	for ev := range controller.Events() {
		c.dispatcher.Dispatch(ev.Kind, ev.Data)
	}
}

// watchConnection handles an unsolicited close: the transport failing or
// the server going away, as opposed to a caller-initiated Disconnect.
func (c *Client) watchConnection(controller *protocol.Controller) {
	<-controller.Done()

	c.mu.Lock()

	current := c.controller == controller && c.connected
	if current {
		c.transport = nil
		c.controller = nil
		c.eg = nil
		c.connected = false
	}

	c.mu.Unlock()

	if !current {
		// Caller-initiated disconnect; Disconnect owns the cleanup.
		return
	}

	if err := controller.FatalError(); err != nil {
		c.log.Warn("Connection lost", "error", err)
		c.notifyError(err)
	} else {
		c.log.Info("Connection closed by server")
	}

	c.notifyDisconnect()
	controller.CancelAll(errors.ErrConnectionClosed)
}

// Send transmits a command string and waits for its correlated response.
//
// When the connection is dead it makes one implicit connect attempt,
// unless auto-connect is disabled, in which case ErrNotConnected is
// returned.
func (c *Client) Send(ctx context.Context, command string) (json.RawMessage, error) {
	controller, err := c.ensureConnected(ctx)
	if err != nil {
		return nil, err
	}

	c.reqMu.Lock()
	defer c.reqMu.Unlock()

	return controller.SendCommand(ctx, command, c.options.TimeoutOrDefault())
}

// ensureConnected returns the live controller, connecting first if the
// configuration allows it.
func (c *Client) ensureConnected(ctx context.Context) (*protocol.Controller, error) {
	c.mu.Lock()
	controller := c.controller
	connected := c.connected
	c.mu.Unlock()

	if connected && controller != nil {
		return controller, nil
	}

	if c.options.DisableAutoConnect {
		return nil, errors.ErrNotConnected
	}

	if err := c.Connect(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	controller = c.controller
	c.mu.Unlock()

	if controller == nil {
		return nil, errors.ErrNotConnected
	}

	return controller, nil
}

// PendingCount returns the number of requests awaiting a response on the
// current connection.
func (c *Client) PendingCount() int {
	c.mu.Lock()
	controller := c.controller
	c.mu.Unlock()

	if controller == nil {
		return 0
	}

	return controller.PendingCount()
}

// Subscribe registers handler for events of the given kind.
func (c *Client) Subscribe(kind string, handler dispatch.Handler) *dispatch.Subscription {
	return c.dispatcher.Subscribe(kind, handler)
}

// SubscribeMany registers the same handler under each kind.
func (c *Client) SubscribeMany(kinds []string, handler dispatch.Handler) []*dispatch.Subscription {
	return c.dispatcher.SubscribeMany(kinds, handler)
}

// Unsubscribe removes a subscription. No-op for unknown handles.
func (c *Client) Unsubscribe(sub *dispatch.Subscription) {
	c.dispatcher.Unsubscribe(sub)
}

// UnsubscribeAll clears every subscription.
func (c *Client) UnsubscribeAll() {
	c.dispatcher.UnsubscribeAll()
}

// OnConnect registers an observer invoked after each successful connect.
func (c *Client) OnConnect(fn func()) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()

	c.onConnect = append(c.onConnect, fn)
}

// OnDisconnect registers an observer invoked when the connection closes,
// whether by Disconnect or by the server going away.
func (c *Client) OnDisconnect(fn func()) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()

	c.onDisconnect = append(c.onDisconnect, fn)
}

// OnError registers an observer invoked with connection-level failures.
func (c *Client) OnError(fn func(error)) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()

	c.onError = append(c.onError, fn)
}

// IsWmRunning reports whether the window manager process exists, using
// the configured process checker.
func (c *Client) IsWmRunning(ctx context.Context) (bool, error) {
	checker := config.ProcessChecker(proc.Default())
	if c.options.ProcessChecker != nil {
		checker = c.options.ProcessChecker
	}

	return checker(ctx)
}

// notifyConnect runs connect-observers; each is guarded so one failing
// observer does not abort the others or the connect call.
func (c *Client) notifyConnect() {
	for _, fn := range c.snapshotConnect() {
		c.invokeObserver("connect", func() { fn() })
	}
}

func (c *Client) notifyDisconnect() {
	for _, fn := range c.snapshotDisconnect() {
		c.invokeObserver("disconnect", func() { fn() })
	}
}

func (c *Client) notifyError(err error) {
	for _, fn := range c.snapshotError() {
		c.invokeObserver("error", func() { fn(err) })
	}
}

func (c *Client) snapshotConnect() []func() {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()

	out := make([]func(), len(c.onConnect))
	copy(out, c.onConnect)

	return out
}

func (c *Client) snapshotDisconnect() []func() {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()

	out := make([]func(), len(c.onDisconnect))
	copy(out, c.onDisconnect)

	return out
}

func (c *Client) snapshotError() []func(error) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()

	out := make([]func(error), len(c.onError))
	copy(out, c.onError)

	return out
}

// invokeObserver runs a single observer with panic isolation.
func (c *Client) invokeObserver(kind string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			c.log.Warn("Observer panicked", "observer", kind, "panic", rec)
		}
	}()

	fn()
}
