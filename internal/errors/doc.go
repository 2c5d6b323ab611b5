// Package errors defines error types for the GlazeWM client.
//
// This package provides structured error types that wrap the different
// failure scenarios when talking to the window manager's IPC server. All
// error types support error unwrapping and can be checked using errors.Is
// and errors.As.
package errors
