//go:build windows

package proc

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// defaultChecker looks for the window manager in the tasklist output.
// tasklist exits zero even when the filter matches nothing, so the
// output has to be inspected rather than the exit code.
func defaultChecker(ctx context.Context) (bool, error) {
	filter := fmt.Sprintf("IMAGENAME eq %s.exe", processName)

	out, err := exec.CommandContext(ctx, "tasklist", "/FI", filter, "/NH").Output()
	if err != nil {
		return false, fmt.Errorf("run tasklist: %w", err)
	}

	return strings.Contains(strings.ToLower(string(out)), processName), nil
}
