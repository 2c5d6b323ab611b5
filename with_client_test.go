package glazewm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithClient_ConnectsAndDisconnects(t *testing.T) {
	transport := newScriptedTransport(respondAlways(`{"success":true,"data":{"monitors":[]}}`))

	var sawConnected bool

	err := WithClient(context.Background(), func(c Client) error {
		sawConnected = c.IsConnected()

		monitors, err := c.QueryMonitors(context.Background())
		if err != nil {
			return err
		}

		require.Empty(t, monitors)

		return nil
	},
		WithTransport(transport),
		WithTimeout(time.Second),
	)

	require.NoError(t, err)
	require.True(t, sawConnected)
}

func TestWithClient_PropagatesCallbackError(t *testing.T) {
	transport := newScriptedTransport(neverRespond())
	callbackErr := errors.New("callback failed")

	err := WithClient(context.Background(), func(Client) error {
		return callbackErr
	},
		WithTransport(transport),
	)

	require.ErrorIs(t, err, callbackErr)
}

func TestWithClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithClient(ctx, func(Client) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
