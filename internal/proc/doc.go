// Package proc provides the process-existence check for the window
// manager. The check is an injectable capability; the default
// implementation shells out to the platform's process listing tool.
package proc
