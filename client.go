package glazewm

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"github.com/wmkit/glazewm-go/internal/config"
)

// envNoAutoConnect disables auto-connect-on-construction when set to a
// truthy value.
const envNoAutoConnect = "GLAZEWM_NO_AUTO_CONNECT"

// Client is a typed interface to a running GlazeWM instance.
//
// One Client owns one connection to the window manager's IPC server.
// Queries and commands are request/response operations correlated over
// that connection; event subscriptions receive unsolicited notifications
// pushed by the server. Subscriptions and observers belong to the client
// and survive a disconnect.
//
// Example usage:
//
//	client := glazewm.NewClient()
//	defer client.Disconnect()
//
//	focused, err := client.QueryFocused(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(focused.ID)
//
//	client.Subscribe(glazewm.EventWorkspaceActivated, func(ev glazewm.Event) {
//	    // handle event
//	})
type Client interface {
	// Connect opens the connection to the window manager. No-op when
	// already live. Makes exactly one attempt, bounded by the configured
	// timeout, and returns a ConnectionError on failure.
	Connect(ctx context.Context) error

	// Disconnect closes the connection and fails all pending requests
	// with ErrConnectionClosed. Idempotent.
	Disconnect() error

	// IsConnected reports current liveness.
	IsConnected() bool

	// QueryMonitors returns all monitors known to the window manager.
	QueryMonitors(ctx context.Context) ([]Monitor, error)

	// QueryWorkspaces returns all active workspaces.
	QueryWorkspaces(ctx context.Context) ([]Workspace, error)

	// QueryWindows returns all managed windows.
	QueryWindows(ctx context.Context) ([]Window, error)

	// QueryFocused returns the currently focused container.
	QueryFocused(ctx context.Context) (*Container, error)

	// RunCommand executes a window-manager command, e.g. "focus --workspace 1".
	// Returns a CommandError if the server rejects it.
	RunCommand(ctx context.Context, command string) error

	// RunCommandForID executes a command against a specific container.
	RunCommandForID(ctx context.Context, subjectID, command string) error

	// Query sends a raw command string and returns the undecoded
	// response data. Escape hatch for protocol additions the typed
	// layer doesn't cover.
	Query(ctx context.Context, raw string) (json.RawMessage, error)

	// Subscribe registers handler for events of the given kind and
	// returns the handle used to remove it again. Handlers for one kind
	// run in registration order.
	Subscribe(kind EventKind, handler EventHandler) *Subscription

	// SubscribeMany registers the same handler under each kind.
	SubscribeMany(kinds []EventKind, handler EventHandler) []*Subscription

	// Unsubscribe removes a subscription. No-op for unknown handles.
	Unsubscribe(sub *Subscription)

	// UnsubscribeAll clears every subscription.
	UnsubscribeAll()

	// OnConnect registers an observer invoked after each successful
	// connect. Observer failures are logged and never abort the connect.
	OnConnect(fn func())

	// OnDisconnect registers an observer invoked when the connection
	// closes, whether by Disconnect or by the server going away.
	OnDisconnect(fn func())

	// OnError registers an observer invoked with connection-level failures.
	OnError(fn func(error))

	// IsWmRunning reports whether the window manager process exists.
	IsWmRunning(ctx context.Context) (bool, error)
}

// ProcessChecker reports whether the window manager process is running.
type ProcessChecker = config.ProcessChecker

// NewClient creates a client.
//
// Unless disabled via WithoutAutoConnect or GLAZEWM_NO_AUTO_CONNECT, a
// connection attempt starts in the background; its failure is logged as
// a warning rather than returned, since construction cannot block on the
// network. Operations also connect implicitly on first use.
func NewClient(opts ...Option) Client {
	options := applyOptions(opts)

	if noAutoConnectFromEnv() {
		options.DisableAutoConnect = true
	}

	wrapper := newClientImpl(options)

	if !options.DisableAutoConnect {
		log := options.Logger
		if log == nil {
			log = NopLogger()
		}

		timeout := options.TimeoutOrDefault()

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			if err := wrapper.Connect(ctx); err != nil {
				log.Warn("Auto-connect failed", "error", err)
			}
		}()
	}

	return wrapper
}

// noAutoConnectFromEnv reads the environment toggle.
func noAutoConnectFromEnv() bool {
	v := os.Getenv(envNoAutoConnect)
	if v == "" {
		return false
	}

	enabled, err := strconv.ParseBool(v)
	if err != nil {
		// Any non-empty unparseable value counts as set.
		return true
	}

	return enabled
}
