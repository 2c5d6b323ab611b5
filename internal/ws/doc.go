// Package ws implements the websocket transport for the GlazeWM client.
//
// The transport dials ws://localhost:<port>, runs a single read pump for
// the lifetime of the connection, and exposes inbound text frames and
// read errors as channels. Outbound command strings are written as text
// frames with a write deadline.
package ws
