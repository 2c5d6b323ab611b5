package glazewm

import "github.com/wmkit/glazewm-go/internal/dispatch"

// Event is a decoded window-manager notification delivered to
// subscribers. It carries the event-kind tag, the capture timestamp, and
// the undecoded kind-specific payload; use DecodeData with one of the
// typed payload structs below.
type Event = dispatch.Event

// EventHandler receives dispatched events.
type EventHandler = dispatch.Handler

// Subscription is the handle returned by Subscribe, used to remove the
// registration again.
type Subscription = dispatch.Subscription

// EventKind identifies a window-manager event type as it appears on the
// wire.
type EventKind string

// All event kinds emitted by the window manager.
const (
	EventBindingModesChanged    EventKind = "binding_modes_changed"
	EventFocusChanged           EventKind = "focus_changed"
	EventFocusedContainerMoved  EventKind = "focused_container_moved"
	EventMonitorAdded           EventKind = "monitor_added"
	EventMonitorRemoved         EventKind = "monitor_removed"
	EventMonitorUpdated         EventKind = "monitor_updated"
	EventTilingDirectionChanged EventKind = "tiling_direction_changed"
	EventUserConfigChanged      EventKind = "user_config_changed"
	EventWindowManaged          EventKind = "window_managed"
	EventWindowUnmanaged        EventKind = "window_unmanaged"
	EventWorkspaceActivated     EventKind = "workspace_activated"
	EventWorkspaceDeactivated   EventKind = "workspace_deactivated"
	EventWorkspaceUpdated       EventKind = "workspace_updated"
	EventPauseChanged           EventKind = "pause_changed"
	EventApplicationExiting     EventKind = "application_exiting"
)

// Typed event payloads, decoded from Event.Data.

// FocusChangedEvent is the payload of EventFocusChanged.
type FocusChangedEvent struct {
	FocusedContainer Container `json:"focusedContainer"`
}

// FocusedContainerMovedEvent is the payload of EventFocusedContainerMoved.
type FocusedContainerMovedEvent struct {
	FocusedContainer Container `json:"focusedContainer"`
}

// MonitorAddedEvent is the payload of EventMonitorAdded.
type MonitorAddedEvent struct {
	AddedMonitor Monitor `json:"addedMonitor"`
}

// MonitorRemovedEvent is the payload of EventMonitorRemoved.
type MonitorRemovedEvent struct {
	RemovedID         string `json:"removedId"`
	RemovedDeviceName string `json:"removedDeviceName,omitempty"`
}

// MonitorUpdatedEvent is the payload of EventMonitorUpdated.
type MonitorUpdatedEvent struct {
	UpdatedMonitor Monitor `json:"updatedMonitor"`
}

// TilingDirectionChangedEvent is the payload of EventTilingDirectionChanged.
type TilingDirectionChangedEvent struct {
	NewTilingDirection string `json:"newTilingDirection"`
}

// WindowManagedEvent is the payload of EventWindowManaged.
type WindowManagedEvent struct {
	ManagedWindow Window `json:"managedWindow"`
}

// WindowUnmanagedEvent is the payload of EventWindowUnmanaged.
type WindowUnmanagedEvent struct {
	UnmanagedID     string `json:"unmanagedId"`
	UnmanagedHandle int64  `json:"unmanagedHandle,omitempty"`
}

// WorkspaceActivatedEvent is the payload of EventWorkspaceActivated.
type WorkspaceActivatedEvent struct {
	ActivatedWorkspace Workspace `json:"activatedWorkspace"`
}

// WorkspaceDeactivatedEvent is the payload of EventWorkspaceDeactivated.
type WorkspaceDeactivatedEvent struct {
	DeactivatedID   string `json:"deactivatedId"`
	DeactivatedName string `json:"deactivatedName,omitempty"`
}

// WorkspaceUpdatedEvent is the payload of EventWorkspaceUpdated.
type WorkspaceUpdatedEvent struct {
	UpdatedWorkspace Workspace `json:"updatedWorkspace"`
}

// BindingModesChangedEvent is the payload of EventBindingModesChanged.
type BindingModesChangedEvent struct {
	NewBindingModes []BindingMode `json:"newBindingModes"`
}

// PauseChangedEvent is the payload of EventPauseChanged.
type PauseChangedEvent struct {
	IsPaused bool `json:"isPaused"`
}
