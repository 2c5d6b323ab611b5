package glazewm

import (
	"context"

	"github.com/wmkit/glazewm-go/internal/proc"
)

// IsWmRunning reports whether a GlazeWM process exists, using the
// default OS-specific check. For an injectable check, configure a client
// with WithProcessChecker and use Client.IsWmRunning instead.
func IsWmRunning(ctx context.Context) (bool, error) {
	return proc.Default()(ctx)
}
