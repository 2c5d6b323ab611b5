// Package client implements the connection lifecycle of the GlazeWM
// client: connect/disconnect state, single-attempt connection policy,
// observer notification, and bulk cancellation of pending work when the
// connection dies.
package client
