package glazewm

import "github.com/wmkit/glazewm-go/internal/errors"

// Re-export error types from internal package

// ConnectionError indicates a connection attempt to the window manager
// failed, either at the transport level or by exceeding the connect timeout.
type ConnectionError = errors.ConnectionError

// RequestTimeoutError indicates no response to a command arrived within
// the configured budget.
type RequestTimeoutError = errors.RequestTimeoutError

// CommandError indicates the window manager rejected a command
// (success=false), with the server's message or a generic fallback.
type CommandError = errors.CommandError

// WmClientError is the base interface for all client errors.
type WmClientError = errors.WmClientError

// Re-export sentinel errors from internal package.
var (
	// ErrNotConnected indicates an operation was attempted while the
	// connection to the window manager is dead.
	ErrNotConnected = errors.ErrNotConnected

	// ErrConnectionClosed indicates a pending request was invalidated by
	// the connection closing before its response arrived.
	ErrConnectionClosed = errors.ErrConnectionClosed
)
