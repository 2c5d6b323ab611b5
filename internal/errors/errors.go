package errors

import (
	"errors"
	"fmt"
	"time"
)

// WmClientError is the base interface for all client errors.
type WmClientError interface {
	error
	IsWmClientError() bool
}

// Compile-time verification that all error types implement WmClientError.
var (
	_ WmClientError = (*ConnectionError)(nil)
	_ WmClientError = (*RequestTimeoutError)(nil)
	_ WmClientError = (*CommandError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNotConnected indicates an operation was attempted while the
	// connection to the window manager is dead.
	ErrNotConnected = errors.New("not connected to window manager")

	// ErrConnectionClosed indicates a pending request was invalidated by
	// the connection closing before its response arrived.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrControllerStopped indicates the protocol controller has stopped.
	ErrControllerStopped = errors.New("protocol controller stopped")
)

// ConnectionError indicates a connection attempt to the window manager
// failed, either at the transport level or by exceeding the connect timeout.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to window manager: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsWmClientError implements WmClientError.
func (e *ConnectionError) IsWmClientError() bool { return true }

// RequestTimeoutError indicates no response to a command arrived within
// the configured budget. It preserves the original command text so logs
// and messages identify which request stalled.
type RequestTimeoutError struct {
	Command string
	Timeout time.Duration
}

func (e *RequestTimeoutError) Error() string {
	return fmt.Sprintf("request %q timed out after %s", e.Command, e.Timeout)
}

// IsWmClientError implements WmClientError.
func (e *RequestTimeoutError) IsWmClientError() bool { return true }

// CommandError indicates the window manager returned success=false for a
// command. Message carries the server-provided error text, or a generic
// fallback when the response had none.
type CommandError struct {
	Command string
	Message string
}

// GenericCommandFailure is used when a failed response carries no error text.
const GenericCommandFailure = "command failed"

func (e *CommandError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("command %q failed: %s", e.Command, e.Message)
	}

	return fmt.Sprintf("command failed: %s", e.Message)
}

// IsWmClientError implements WmClientError.
func (e *CommandError) IsWmClientError() bool { return true }
