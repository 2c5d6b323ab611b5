// Package config provides configuration types for the GlazeWM client.
package config

import "context"

// Transport defines the interface for communication with the window
// manager's IPC server. Implement this to provide custom transports for
// testing, mocking, or alternative communication methods.
//
// The default implementation is the websocket transport in internal/ws.
// Custom transports can be injected via Options.Transport.
type Transport interface {
	// Start opens the connection to the window manager.
	// This is called before any messages are sent or received.
	Start(ctx context.Context) error

	// ReadMessages returns channels for receiving frames and errors.
	// The frame channel yields raw UTF-8 text frames from the server.
	// The error channel yields any errors that occur during reading.
	// Both channels are closed when reading completes or an error occurs.
	ReadMessages(ctx context.Context) (<-chan []byte, <-chan error)

	// SendText sends a plain-text command string to the server.
	// This method must be safe for concurrent use.
	SendText(ctx context.Context, text string) error

	// Close terminates the transport and releases resources.
	// It's safe to call Close multiple times.
	Close() error

	// IsReady returns true if the transport is ready for communication.
	IsReady() bool
}
