package dispatch

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Dispatch_PreservesRegistrationOrder(t *testing.T) {
	registry := NewRegistry(slog.Default())

	var order []string

	registry.Subscribe("focus_changed", func(Event) { order = append(order, "first") })
	registry.Subscribe("focus_changed", func(Event) { order = append(order, "second") })
	registry.Subscribe("focus_changed", func(Event) { order = append(order, "third") })

	registry.Dispatch("focus_changed", json.RawMessage(`{}`))

	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestRegistry_Dispatch_TagsKindAndTimestamp(t *testing.T) {
	registry := NewRegistry(slog.Default())

	var got Event

	registry.Subscribe("focus_changed", func(ev Event) { got = ev })

	registry.Dispatch("focus_changed", json.RawMessage(`{"focusedContainer":{"id":"w1"}}`))

	require.Equal(t, "focus_changed", got.Kind)
	require.False(t, got.Timestamp.IsZero())

	var payload struct {
		FocusedContainer struct {
			ID string `json:"id"`
		} `json:"focusedContainer"`
	}

	require.NoError(t, got.DecodeData(&payload))
	require.Equal(t, "w1", payload.FocusedContainer.ID)
}

func TestRegistry_Unsubscribe_StopsDeliveries(t *testing.T) {
	registry := NewRegistry(slog.Default())

	calls := 0
	sub := registry.Subscribe("window_managed", func(Event) { calls++ })

	registry.Dispatch("window_managed", json.RawMessage(`{}`))
	require.Equal(t, 1, calls)

	registry.Unsubscribe(sub)
	registry.Dispatch("window_managed", json.RawMessage(`{}`))
	require.Equal(t, 1, calls)

	// Removing again is a no-op.
	registry.Unsubscribe(sub)
	registry.Unsubscribe(nil)
	require.Zero(t, registry.SubscriberCount("window_managed"))
}

func TestRegistry_UnsubscribeAll_ClearsEveryKind(t *testing.T) {
	registry := NewRegistry(slog.Default())

	calls := 0
	handler := func(Event) { calls++ }

	registry.Subscribe("focus_changed", handler)
	registry.Subscribe("window_managed", handler)
	registry.Subscribe("workspace_activated", handler)

	registry.UnsubscribeAll()

	registry.Dispatch("focus_changed", json.RawMessage(`{}`))
	registry.Dispatch("window_managed", json.RawMessage(`{}`))
	registry.Dispatch("workspace_activated", json.RawMessage(`{}`))

	require.Zero(t, calls)
}

func TestRegistry_SubscribeMany_FiresOncePerEvent(t *testing.T) {
	registry := NewRegistry(slog.Default())

	calls := 0
	subs := registry.SubscribeMany(
		[]string{"monitor_added", "monitor_removed"},
		func(Event) { calls++ },
	)

	require.Len(t, subs, 2)

	// An event of one kind triggers the handler once, not twice.
	registry.Dispatch("monitor_added", json.RawMessage(`{}`))
	require.Equal(t, 1, calls)

	registry.Dispatch("monitor_removed", json.RawMessage(`{}`))
	require.Equal(t, 2, calls)
}

func TestRegistry_PanickingHandler_DoesNotBlockOthers(t *testing.T) {
	registry := NewRegistry(slog.Default())

	var survived bool

	registry.Subscribe("pause_changed", func(Event) { panic("handler bug") })
	registry.Subscribe("pause_changed", func(Event) { survived = true })

	registry.Dispatch("pause_changed", json.RawMessage(`{}`))

	require.True(t, survived)
}

func TestRegistry_Dispatch_UnknownKindIsNoOp(t *testing.T) {
	registry := NewRegistry(slog.Default())

	// No subscribers at all; must not panic.
	registry.Dispatch("tiling_direction_changed", json.RawMessage(`{}`))
}

func TestRegistry_SubscriptionIDsAreUnique(t *testing.T) {
	registry := NewRegistry(slog.Default())

	handler := func(Event) {}

	a := registry.Subscribe("focus_changed", handler)
	b := registry.Subscribe("focus_changed", handler)

	require.NotEqual(t, a.ID, b.ID)

	// Removing one registration of the same handler leaves the other.
	registry.Unsubscribe(a)
	require.Equal(t, 1, registry.SubscriberCount("focus_changed"))
}
