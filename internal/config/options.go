package config

import (
	"context"
	"log/slog"
	"time"
)

const (
	// DefaultPort is the well-known port of the GlazeWM IPC server.
	DefaultPort = 6123

	// DefaultTimeout applies independently to the connect attempt and to
	// each individual request.
	DefaultTimeout = 10 * time.Second
)

// ProcessChecker reports whether the window manager process is running.
// It is an injectable capability so the OS-specific lookup never leaks
// into the core.
type ProcessChecker func(ctx context.Context) (bool, error)

// Options holds the client configuration.
type Options struct {
	// Port of the IPC server. Defaults to DefaultPort.
	Port int

	// Timeout for the connect attempt and each individual request.
	// These are separate timers, not a shared budget.
	// Defaults to DefaultTimeout.
	Timeout time.Duration

	// DisableAutoConnect skips the connection attempt made when the
	// client is constructed.
	DisableAutoConnect bool

	// Logger for debug output. If nil, logging is disabled.
	Logger *slog.Logger

	// Transport overrides the default websocket transport.
	Transport Transport

	// ProcessChecker overrides the default OS-specific process check.
	ProcessChecker ProcessChecker
}

// PortOrDefault returns the configured port or DefaultPort.
func (o *Options) PortOrDefault() int {
	if o.Port > 0 {
		return o.Port
	}

	return DefaultPort
}

// TimeoutOrDefault returns the configured timeout or DefaultTimeout.
func (o *Options) TimeoutOrDefault() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}

	return DefaultTimeout
}
