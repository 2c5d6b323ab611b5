package glazewm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wmkit/glazewm-go/internal/client"
	"github.com/wmkit/glazewm-go/internal/config"
)

// Outbound command strings of the wire protocol. The core treats these
// as opaque text; only this thin layer knows their shape.
const (
	queryMonitorsCommand   = "query monitors"
	queryWorkspacesCommand = "query workspaces"
	queryWindowsCommand    = "query windows"
	queryFocusedCommand    = "query focused"
)

// clientWrapper wraps the internal client to adapt it to the public interface.
type clientWrapper struct {
	impl *client.Client
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

// newClientImpl creates the internal client implementation.
func newClientImpl(options *config.Options) *clientWrapper {
	return &clientWrapper{impl: client.New(options)}
}

// Connect opens the connection to the window manager.
func (c *clientWrapper) Connect(ctx context.Context) error {
	return c.impl.Connect(ctx)
}

// Disconnect closes the connection and fails all pending requests.
func (c *clientWrapper) Disconnect() error {
	return c.impl.Disconnect()
}

// IsConnected reports current liveness.
func (c *clientWrapper) IsConnected() bool {
	return c.impl.IsConnected()
}

// QueryMonitors returns all monitors known to the window manager.
func (c *clientWrapper) QueryMonitors(ctx context.Context) ([]Monitor, error) {
	var data monitorsData
	if err := c.query(ctx, queryMonitorsCommand, &data); err != nil {
		return nil, err
	}

	return data.Monitors, nil
}

// QueryWorkspaces returns all active workspaces.
func (c *clientWrapper) QueryWorkspaces(ctx context.Context) ([]Workspace, error) {
	var data workspacesData
	if err := c.query(ctx, queryWorkspacesCommand, &data); err != nil {
		return nil, err
	}

	return data.Workspaces, nil
}

// QueryWindows returns all managed windows.
func (c *clientWrapper) QueryWindows(ctx context.Context) ([]Window, error) {
	var data windowsData
	if err := c.query(ctx, queryWindowsCommand, &data); err != nil {
		return nil, err
	}

	return data.Windows, nil
}

// QueryFocused returns the currently focused container.
func (c *clientWrapper) QueryFocused(ctx context.Context) (*Container, error) {
	var data focusedData
	if err := c.query(ctx, queryFocusedCommand, &data); err != nil {
		return nil, err
	}

	return data.Focused, nil
}

// RunCommand executes a window-manager command.
func (c *clientWrapper) RunCommand(ctx context.Context, command string) error {
	_, err := c.impl.Send(ctx, "command "+command)

	return err
}

// RunCommandForID executes a command against a specific container.
func (c *clientWrapper) RunCommandForID(ctx context.Context, subjectID, command string) error {
	_, err := c.impl.Send(ctx, fmt.Sprintf("command --id %s %s", subjectID, command))

	return err
}

// Query sends a raw command string and returns the undecoded response data.
func (c *clientWrapper) Query(ctx context.Context, raw string) (json.RawMessage, error) {
	return c.impl.Send(ctx, raw)
}

// query runs a command and decodes its response data into out.
func (c *clientWrapper) query(ctx context.Context, command string, out any) error {
	data, err := c.impl.Send(ctx, command)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %q response: %w", command, err)
	}

	return nil
}

// Subscribe registers handler for events of the given kind.
func (c *clientWrapper) Subscribe(kind EventKind, handler EventHandler) *Subscription {
	return c.impl.Subscribe(string(kind), handler)
}

// SubscribeMany registers the same handler under each kind.
func (c *clientWrapper) SubscribeMany(kinds []EventKind, handler EventHandler) []*Subscription {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}

	return c.impl.SubscribeMany(names, handler)
}

// Unsubscribe removes a subscription.
func (c *clientWrapper) Unsubscribe(sub *Subscription) {
	c.impl.Unsubscribe(sub)
}

// UnsubscribeAll clears every subscription.
func (c *clientWrapper) UnsubscribeAll() {
	c.impl.UnsubscribeAll()
}

// OnConnect registers an observer invoked after each successful connect.
func (c *clientWrapper) OnConnect(fn func()) {
	c.impl.OnConnect(fn)
}

// OnDisconnect registers an observer invoked when the connection closes.
func (c *clientWrapper) OnDisconnect(fn func()) {
	c.impl.OnDisconnect(fn)
}

// OnError registers an observer invoked with connection-level failures.
func (c *clientWrapper) OnError(fn func(error)) {
	c.impl.OnError(fn)
}

// IsWmRunning reports whether the window manager process exists.
func (c *clientWrapper) IsWmRunning(ctx context.Context) (bool, error) {
	return c.impl.IsWmRunning(ctx)
}
