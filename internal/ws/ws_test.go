package ws

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

// newEchoServer upgrades connections and answers every inbound command
// with a fixed response frame.
func newEchoServer(t *testing.T, response string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		defer conn.Close()

		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, []byte(response)); err != nil {
				return
			}
		}
	}))

	t.Cleanup(server.Close)

	return server
}

// wsURL rewrites an httptest server URL to the websocket scheme.
func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestTransport_RoundTrip(t *testing.T) {
	server := newEchoServer(t, `{"success":true,"data":{}}`)
	transport := NewWithURL(slog.Default(), wsURL(server))

	ctx := context.Background()

	require.NoError(t, transport.Start(ctx))
	require.True(t, transport.IsReady())

	defer transport.Close()

	frames, errs := transport.ReadMessages(ctx)

	require.NoError(t, transport.SendText(ctx, "query monitors"))

	select {
	case frame := <-frames:
		require.JSONEq(t, `{"success":true,"data":{}}`, string(frame))
	case err := <-errs:
		t.Fatalf("unexpected transport error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("no frame received")
	}
}

func TestTransport_Start_Idempotent(t *testing.T) {
	server := newEchoServer(t, `{}`)
	transport := NewWithURL(slog.Default(), wsURL(server))

	ctx := context.Background()

	require.NoError(t, transport.Start(ctx))

	defer transport.Close()

	require.NoError(t, transport.Start(ctx))
}

func TestTransport_Start_Failure(t *testing.T) {
	// Nothing is listening on this port.
	transport := NewWithURL(slog.Default(), "ws://localhost:1")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := transport.Start(ctx)
	require.Error(t, err)
	require.False(t, transport.IsReady())
}

func TestTransport_SendText_NotConnected(t *testing.T) {
	transport := NewWithURL(slog.Default(), "ws://localhost:1")

	err := transport.SendText(context.Background(), "query monitors")
	require.Error(t, err)
}

func TestTransport_ServerClose_EndsReadPump(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		// Close immediately with a normal closure.
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		_ = conn.Close()
	}))

	t.Cleanup(server.Close)

	transport := NewWithURL(slog.Default(), wsURL(server))

	ctx := context.Background()

	require.NoError(t, transport.Start(ctx))

	defer transport.Close()

	frames, _ := transport.ReadMessages(ctx)

	select {
	case _, ok := <-frames:
		require.False(t, ok, "frame channel should close on server close")
	case <-time.After(time.Second):
		t.Fatal("read pump did not stop")
	}
}

func TestTransport_Close_Idempotent(t *testing.T) {
	server := newEchoServer(t, `{}`)
	transport := NewWithURL(slog.Default(), wsURL(server))

	require.NoError(t, transport.Start(context.Background()))
	require.NoError(t, transport.Close())
	require.NoError(t, transport.Close())
	require.False(t, transport.IsReady())
}
