// Package protocol implements the connection-and-correlation core of the
// GlazeWM client.
//
// The package provides a Controller that owns the pending-request table
// and the response demultiplexer. It reads raw text frames from the
// transport, classifies each frame as an unsolicited event notification
// or a command response, routes responses to the awaiting request, and
// forwards events to consumers via a channel.
//
// The wire protocol carries no correlation id in command responses;
// responses correlate implicitly by request/response turn order. Callers
// therefore serialize commands (one outstanding at a time), while the
// table still tracks every registered request so bulk cancellation on
// disconnect can fail them all.
//
// Example usage:
//
//	transport := ws.New(log, port)
//	transport.Start(ctx)
//
//	controller := protocol.NewController(log, transport)
//	controller.Start(ctx)
//
//	data, err := controller.SendCommand(ctx, "query monitors", 10*time.Second)
package protocol
