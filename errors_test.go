package glazewm

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConnectionError_WrapsCause tests ConnectionError creation and unwrapping.
func TestConnectionError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &ConnectionError{Err: cause}

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to connect to window manager")
	require.Contains(t, err.Error(), "connection refused")
	require.ErrorIs(t, err, cause)
}

// TestRequestTimeoutError_NamesCommand tests that the timeout error
// identifies the original command text and the elapsed budget.
func TestRequestTimeoutError_NamesCommand(t *testing.T) {
	err := &RequestTimeoutError{
		Command: "query monitors",
		Timeout: 50 * time.Millisecond,
	}

	require.Contains(t, err.Error(), "query monitors")
	require.Contains(t, err.Error(), "50ms")
}

// TestCommandError_Formatting tests server-message and fallback formatting.
func TestCommandError_Formatting(t *testing.T) {
	withMessage := &CommandError{Command: "command focus", Message: "X"}
	require.Contains(t, withMessage.Error(), "command focus")
	require.Contains(t, withMessage.Error(), "X")

	generic := &CommandError{Message: "command failed"}
	require.Contains(t, generic.Error(), "command failed")
}

// TestErrorTypes_ImplementWmClientError verifies the marker interface.
func TestErrorTypes_ImplementWmClientError(t *testing.T) {
	errs := []error{
		&ConnectionError{Err: errors.New("boom")},
		&RequestTimeoutError{Command: "query monitors", Timeout: time.Second},
		&CommandError{Message: "bad"},
	}

	for _, err := range errs {
		var clientErr WmClientError

		require.ErrorAs(t, err, &clientErr)
		require.True(t, clientErr.IsWmClientError())
	}
}

// TestSentinelErrors verifies sentinel comparisons with errors.Is.
func TestSentinelErrors(t *testing.T) {
	require.ErrorIs(t, fmt.Errorf("wrapped: %w", ErrNotConnected), ErrNotConnected)
	require.ErrorIs(t, fmt.Errorf("wrapped: %w", ErrConnectionClosed), ErrConnectionClosed)
	require.NotErrorIs(t, ErrNotConnected, ErrConnectionClosed)
}
