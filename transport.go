package glazewm

import "github.com/wmkit/glazewm-go/internal/config"

// Transport defines the interface for communication with the window
// manager's IPC server. Implement this to provide custom transports for
// testing, mocking, or alternative communication methods.
//
// The default implementation is the websocket transport targeting
// ws://localhost:<port>. Custom transports can be injected via
// WithTransport.
type Transport = config.Transport
