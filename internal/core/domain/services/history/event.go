package history

import (
	"time"
)

// Event types, in the order the reconstructor emits them.
const (
	TypeCreated            = "created"
	TypeAssociated         = "associated"
	TypeReleased           = "released"
	TypeRejected           = "rejected"
	TypeReapprovalRequired = "reapproval_required"
	TypeRouteFinalized     = "route_finalized"
	TypeStarted            = "started"
	TypeDelivered          = "delivered"
	TypeNotDelivered       = "not_delivered"
	TypeProofRegistered    = "proof_registered"
	TypeStatusUpdated      = "status_updated"
)

// Detail keys used in Event.Details.
const (
	DetailStatus     = "status"
	DetailReason     = "reason"
	DetailReasonCode = "reasonCode"
	DetailURL        = "url"
	DetailFromStatus = "fromStatus"
	DetailToStatus   = "toStatus"
)

// Event is one entry of an order's reconstructed audit trail.
//
// Events are derived, not stored: the id is built from the event type and
// the id of the record the event was derived from, so reconstructing twice
// from unchanged rows yields byte-identical events.
type Event struct {
	ID          string
	Timestamp   time.Time
	Type        string
	Description string
	Actor       string
	Details     map[string]string
}

func newEvent(eventType, sourceID string, at time.Time, description, actor string, details map[string]string) Event {
	return Event{
		ID:          eventType + ":" + sourceID,
		Timestamp:   at,
		Type:        eventType,
		Description: description,
		Actor:       actor,
		Details:     details,
	}
}
