package glazewm

import (
	"log/slog"
	"time"

	"github.com/wmkit/glazewm-go/internal/config"
)

// Option configures the client using the functional options pattern.
type Option func(*config.Options)

// applyOptions applies functional options to a config.Options struct.
func applyOptions(opts []Option) *config.Options {
	options := &config.Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// WithPort sets the IPC server port. Defaults to 6123.
func WithPort(port int) Option {
	return func(o *config.Options) {
		o.Port = port
	}
}

// WithTimeout sets the budget applied independently to the connect
// attempt and to each individual request. Defaults to 10 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(o *config.Options) {
		o.Timeout = timeout
	}
}

// WithoutAutoConnect disables the connection attempt made when the
// client is constructed. Operations still connect implicitly on first
// use; call Connect explicitly to control when that happens.
//
// The GLAZEWM_NO_AUTO_CONNECT environment variable has the same effect.
func WithoutAutoConnect() Option {
	return func(o *config.Options) {
		o.DisableAutoConnect = true
	}
}

// WithTransport injects a custom transport, replacing the default
// websocket transport. Used for testing and mocking.
func WithTransport(transport Transport) Option {
	return func(o *config.Options) {
		o.Transport = transport
	}
}

// WithProcessChecker overrides the OS-specific check used by IsWmRunning.
func WithProcessChecker(checker ProcessChecker) Option {
	return func(o *config.Options) {
		o.ProcessChecker = checker
	}
}
