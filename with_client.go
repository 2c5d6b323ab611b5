package glazewm

import (
	"context"
	"fmt"
)

// WithClient manages client lifecycle with automatic cleanup.
//
// This helper creates a client, connects it with the provided options,
// executes the callback function, and ensures proper cleanup via
// Disconnect when done.
//
// The callback receives a connected Client that is ready for use.
// If the callback returns an error, it is returned to the caller.
// If Disconnect fails, a warning is logged but does not override the
// callback's error.
//
// Example usage:
//
//	err := glazewm.WithClient(ctx, func(c glazewm.Client) error {
//	    monitors, err := c.QueryMonitors(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    for _, m := range monitors {
//	        fmt.Println(m.Name)
//	    }
//	    return nil
//	},
//	    glazewm.WithLogger(log),
//	)
func WithClient(ctx context.Context, fn func(Client) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	// Connect explicitly; the background auto-connect would race fn.
	options.DisableAutoConnect = true

	client := newClientImpl(options)
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect client: %w", err)
	}

	defer func() {
		if closeErr := client.Disconnect(); closeErr != nil {
			log.Warn("failed to disconnect client", "error", closeErr)
		}
	}()

	return fn(client)
}
