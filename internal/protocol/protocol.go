package protocol

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wmkit/glazewm-go/internal/config"
	"github.com/wmkit/glazewm-go/internal/errors"
)

// Controller manages request/response correlation and event demultiplexing
// over a single window-manager connection.
//
// The Controller handles:
//   - Sending plain-text command strings and tracking each in the
//     pending-request table under a monotonically increasing id
//   - Classifying inbound frames as events or command responses
//   - Routing responses to the awaiting request, with timeout enforcement
//   - Bulk cancellation of all pending requests on disconnect
//   - Forwarding event notifications to consumers via the Events channel
//
// The Controller must be started with Start() before use and manages its
// own goroutine for reading and routing frames.
type Controller struct {
	log       *slog.Logger
	transport config.Transport

	// Pending-request table
	pendingMu sync.Mutex
	pending   map[uint64]*pendingRequest
	nextID    atomic.Uint64

	// Event notifications forwarded to consumers
	events chan Event

	// Fatal error handling - stores error and broadcasts via done channel
	errMu    sync.RWMutex
	fatalErr error

	// Lifecycle management
	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// pendingRequest tracks an outgoing command awaiting its response.
type pendingRequest struct {
	id      uint64
	command string
	result  chan requestResult
	sentAt  time.Time
}

// requestResult carries exactly one of a response payload or a failure.
type requestResult struct {
	data json.RawMessage
	err  error
}

// NewController creates a new protocol controller.
//
// The logger will receive debug, info, and warn messages during protocol
// operations. The transport must be connected before calling Start().
func NewController(log *slog.Logger, transport config.Transport) *Controller {
	return &Controller{
		log:       log.With("component", "protocol"),
		transport: transport,
		pending:   make(map[uint64]*pendingRequest, 4),
		events:    make(chan Event, 100), // Buffered so a slow subscriber doesn't stall the read loop
		done:      make(chan struct{}),
	}
}

// closeDone safely closes the done channel exactly once.
func (c *Controller) closeDone() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// SetFatalError stores a fatal error and broadcasts to all waiters by closing done.
func (c *Controller) SetFatalError(err error) {
	c.errMu.Lock()

	if c.fatalErr == nil {
		c.fatalErr = err
	}

	c.errMu.Unlock()

	c.closeDone()
}

// FatalError returns the fatal error if one occurred.
func (c *Controller) FatalError() error {
	c.errMu.RLock()
	defer c.errMu.RUnlock()

	return c.fatalErr
}

// Done returns a channel that is closed when the controller stops.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Start begins reading frames from the transport and routing them.
//
// This method spawns a goroutine that reads from the transport,
// resolves pending requests from command responses, and forwards event
// notifications. The goroutine stops when the context is cancelled or
// the transport is closed.
func (c *Controller) Start(ctx context.Context) error {
	c.log.Debug("Starting protocol controller")

	frames, errs := c.transport.ReadMessages(ctx)

	c.wg.Add(1)

	go c.readLoop(ctx, frames, errs)

	return nil
}

// Stop gracefully shuts down the controller.
//
// This method signals the read loop to stop, fails any remaining pending
// requests, and waits for completion. It's safe to call Stop multiple times.
func (c *Controller) Stop() {
	c.log.Debug("Stopping protocol controller")

	c.closeDone()
	c.CancelAll(errors.ErrConnectionClosed)
	c.wg.Wait()
}

// Events returns a channel for receiving event notifications.
//
// The controller acts as a demultiplexer: it reads all frames from the
// transport, resolves command responses internally, and forwards event
// notifications through this channel. The channel is closed when the
// controller stops or the transport closes.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// PendingCount returns the number of requests awaiting a response.
func (c *Controller) PendingCount() int {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()

	return len(c.pending)
}

// SendCommand sends a command string and waits for its response.
//
// The command is registered in the pending-request table under a fresh
// monotonic id before it is written to the transport, then the call
// blocks until the demultiplexer routes a response to it, the timeout
// expires, or the connection closes. Callers are expected to serialize
// commands; the wire protocol correlates responses by turn order, not by
// an embedded id.
func (c *Controller) SendCommand(
	ctx context.Context,
	command string,
	timeout time.Duration,
) (json.RawMessage, error) {
	select {
	case <-c.done:
		if err := c.FatalError(); err != nil {
			return nil, err
		}

		return nil, errors.ErrControllerStopped
	default:
	}

	id := c.nextID.Add(1)

	pending := &pendingRequest{
		id:      id,
		command: command,
		result:  make(chan requestResult, 1),
		sentAt:  time.Now(),
	}

	c.pendingMu.Lock()
	c.pending[id] = pending
	c.pendingMu.Unlock()

	c.log.Debug("Sending command", "request_id", id, "command", command)

	if err := c.transport.SendText(ctx, command); err != nil {
		c.remove(id)
		c.log.Warn("Failed to send command", "request_id", id, "error", err)

		return nil, err
	}

	select {
	case res := <-pending.result:
		return res.data, res.err

	case <-time.After(timeout):
		// Removal before returning guarantees a late response for this
		// id is a silent no-op rather than a double resolution.
		if !c.remove(id) {
			// Lost the race: a resolution landed first and owns the entry.
			res := <-pending.result

			return res.data, res.err
		}

		c.log.Warn("Command timed out", "request_id", id, "command", command, "timeout", timeout)

		return nil, &errors.RequestTimeoutError{Command: command, Timeout: timeout}

	case <-c.done:
		if !c.remove(id) {
			res := <-pending.result

			return res.data, res.err
		}

		if err := c.FatalError(); err != nil {
			return nil, err
		}

		return nil, errors.ErrConnectionClosed

	case <-ctx.Done():
		if !c.remove(id) {
			res := <-pending.result

			return res.data, res.err
		}

		return nil, ctx.Err()
	}
}

// remove deletes the entry for id and reports whether it was present.
// Every resolution path claims its entry through remove first, which is
// what makes resolution exactly-once.
func (c *Controller) remove(id uint64) bool {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()

	if _, ok := c.pending[id]; !ok {
		return false
	}

	delete(c.pending, id)

	return true
}

// CancelAll fails every pending request with reason and clears the table.
// Used on disconnect. Safe to call when the table is empty.
func (c *Controller) CancelAll(reason error) {
	c.pendingMu.Lock()

	cancelled := make([]*pendingRequest, 0, len(c.pending))
	for id, p := range c.pending {
		cancelled = append(cancelled, p)

		delete(c.pending, id)
	}

	c.pendingMu.Unlock()

	if len(cancelled) == 0 {
		return
	}

	c.log.Debug("Cancelling pending requests", "count", len(cancelled))

	for _, p := range cancelled {
		p.result <- requestResult{err: reason}
	}
}

// readLoop reads frames from the transport and routes them.
func (c *Controller) readLoop(
	ctx context.Context,
	frames <-chan []byte,
	errs <-chan error,
) {
	defer c.wg.Done()
	defer close(c.events)
	defer c.closeDone()
	defer c.log.Debug("Protocol read loop stopped")

	for {
		select {
		case raw, ok := <-frames:
			if !ok {
				c.log.Debug("Frame channel closed")

				return
			}

			c.handleFrame(ctx, raw)

		case err, ok := <-errs:
			if !ok {
				c.log.Debug("Error channel closed")

				return
			}

			if err != nil {
				c.log.Debug("Transport error in protocol", "error", err)
				c.SetFatalError(err)

				return
			}

		case <-c.done:
			c.log.Debug("Protocol controller stop signal received")

			return

		case <-ctx.Done():
			c.log.Debug("Context cancelled in protocol read loop")

			return
		}
	}
}

// handleFrame classifies a raw frame and routes it.
func (c *Controller) handleFrame(ctx context.Context, raw []byte) {
	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		c.resolveUndecodable(raw, err)

		return
	}

	if f.isEvent() {
		c.forwardEvent(ctx, Event{Kind: *f.Type, Data: f.Data})

		return
	}

	c.resolveResponse(&f)
}

// resolveUndecodable handles a frame that failed structured decoding.
//
// The wire protocol carries no correlation id, so an undecodable frame
// can only be attributed when exactly one request is outstanding; that
// request resolves with the raw text as a fallback value. Otherwise the
// frame is dropped.
func (c *Controller) resolveUndecodable(raw []byte, decodeErr error) {
	c.pendingMu.Lock()

	var claimed *pendingRequest

	if len(c.pending) == 1 {
		for id, p := range c.pending {
			claimed = p

			delete(c.pending, id)
		}
	}

	c.pendingMu.Unlock()

	if claimed == nil {
		c.log.Warn("Dropping undecodable frame",
			"error", decodeErr,
			"pending", c.PendingCount(),
		)

		return
	}

	c.log.Debug("Resolving request with raw frame fallback",
		"request_id", claimed.id,
		"error", decodeErr,
	)

	claimed.result <- requestResult{data: json.RawMessage(raw)}
}

// resolveResponse routes a command response to the awaiting request.
//
// Responses carry no id; they are attributed to the most recently
// registered pending request, matching the protocol's strict
// request/response turn-taking.
func (c *Controller) resolveResponse(f *frame) {
	c.pendingMu.Lock()

	var claimed *pendingRequest

	for _, p := range c.pending {
		if claimed == nil || p.id > claimed.id {
			claimed = p
		}
	}

	if claimed != nil {
		delete(c.pending, claimed.id)
	}

	c.pendingMu.Unlock()

	if claimed == nil {
		c.log.Warn("Command response with no pending request")

		return
	}

	if f.Success != nil && !*f.Success {
		msg := f.errorMessage()
		if msg == "" {
			msg = errors.GenericCommandFailure
		}

		c.log.Debug("Command rejected by server", "request_id", claimed.id, "error", msg)

		claimed.result <- requestResult{
			err: &errors.CommandError{Command: claimed.command, Message: msg},
		}

		return
	}

	c.log.Debug("Command resolved",
		"request_id", claimed.id,
		"elapsed", time.Since(claimed.sentAt),
	)

	claimed.result <- requestResult{data: f.Data}
}

// forwardEvent hands an event notification to consumers.
func (c *Controller) forwardEvent(ctx context.Context, ev Event) {
	select {
	case c.events <- ev:
	case <-c.done:
	case <-ctx.Done():
	}
}
