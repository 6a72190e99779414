// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

// EventType identifies a lifecycle event.
type EventType string

const (
	EventProjectCreated   EventType = "project_created"
	EventProjectActivated EventType = "project_activated"
	EventProjectCanceled  EventType = "project_canceled"
	EventProjectFinalized EventType = "project_finalized"
	EventContribution     EventType = "contribution"
	EventClaim            EventType = "claim"
	EventRefund           EventType = "refund"
)

// Event is emitted after a state transition has committed.
type Event struct {
	Type      EventType `json:"type"`
	ProjectID uint64    `json:"project_id"`
	User      Address   `json:"user,omitempty"`
	Amount    uint64    `json:"amount,omitempty"`
	Status    string    `json:"status,omitempty"`
	Height    uint64    `json:"height"`
}

// EventSink receives committed events. Publish must not block the caller
// for long; slow consumers are the sink's problem.
type EventSink interface {
	Publish(ev Event)
}
