package proc

import "context"

// processName is the executable name of the window manager, without the
// platform suffix.
const processName = "glazewm"

// Checker reports whether the window manager process is running.
type Checker func(ctx context.Context) (bool, error)

// Default returns the OS-specific process check for the current platform.
func Default() Checker {
	return defaultChecker
}
