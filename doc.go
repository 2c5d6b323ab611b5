// Package glazewm provides a Go client for the GlazeWM IPC server.
//
// The client talks to the window manager over a persistent websocket
// connection, translating the plain-text command protocol and the JSON
// event/response protocol into typed queries, commands, and event
// subscriptions.
//
// # Basic Usage
//
// Construct a client and run typed queries:
//
//	client := glazewm.NewClient()
//	defer client.Disconnect()
//
//	ctx := context.Background()
//
//	monitors, err := client.QueryMonitors(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range monitors {
//	    fmt.Printf("%s %dx%d\n", m.Name, m.Width, m.Height)
//	}
//
// By default the client starts a connection attempt on construction and
// connects lazily on the first operation if that attempt failed. Use
// WithoutAutoConnect (or the GLAZEWM_NO_AUTO_CONNECT environment
// variable) to connect explicitly instead:
//
//	client := glazewm.NewClient(glazewm.WithoutAutoConnect())
//	if err := client.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Events
//
// Unsolicited window-manager events fan out to subscribers in
// registration order:
//
//	sub := client.Subscribe(glazewm.EventFocusChanged, func(ev glazewm.Event) {
//	    var payload glazewm.FocusChangedEvent
//	    if err := ev.DecodeData(&payload); err == nil {
//	        fmt.Println("focus:", payload.FocusedContainer.ID)
//	    }
//	})
//	defer client.Unsubscribe(sub)
//
// # Logging
//
// Logging is disabled by default. Use WithLogger to enable it:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	client := glazewm.NewClient(glazewm.WithLogger(logger))
//
// # Error Handling
//
// Failures surface as typed errors: ConnectionError for a failed connect
// attempt, RequestTimeoutError when no response arrives within the
// budget, CommandError when the server rejects a command, and the
// sentinels ErrNotConnected and ErrConnectionClosed. Transport failures
// are never retried automatically; each operation makes at most one
// connection attempt and surfaces the failure to the caller.
package glazewm
