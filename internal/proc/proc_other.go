//go:build !windows

package proc

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// defaultChecker uses pgrep, which exits 1 on no match and 0 on a match.
func defaultChecker(ctx context.Context) (bool, error) {
	err := exec.CommandContext(ctx, "pgrep", "-x", processName).Run()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}

	return false, fmt.Errorf("run pgrep: %w", err)
}
