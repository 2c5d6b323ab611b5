package protocol

import "encoding/json"

// frame probes the shape of an inbound JSON object.
//
// Event notification wire format:
//
//	{
//	  "type": "focus_changed",
//	  "data": {...}
//	}
//
// Command response wire format:
//
//	{
//	  "success": true,
//	  "data": {...},
//	  "error": null
//	}
//
// A decoded object carrying both a type tag and a data payload is an
// event; anything else is treated as a command response.
type frame struct {
	Type    *string         `json:"type"`
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

// isEvent reports whether the frame is an unsolicited event notification.
func (f *frame) isEvent() bool {
	return f.Type != nil && f.Data != nil
}

// errorMessage returns the server-provided error text, or "" if absent.
func (f *frame) errorMessage() string {
	if f.Error != nil {
		return *f.Error
	}

	return ""
}

// Event is a decoded event notification as it comes off the wire: the
// event-kind tag plus its raw payload. Timestamping and fan-out happen
// in the dispatcher.
type Event struct {
	Kind string
	Data json.RawMessage
}
