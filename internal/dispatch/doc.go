// Package dispatch implements ordered fan-out of window-manager events.
//
// Subscriptions are kept in per-kind ordered lists; delivery order
// matches registration order. Each handler invocation is independently
// guarded so one misbehaving subscriber cannot prevent the rest from
// running.
package dispatch
