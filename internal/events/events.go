// Package events carries change notifications between ownerd replicas over
// a Redis stream, so a booking change noticed by one replica's poller
// invalidates every replica's cached views.
package events

import "time"

// Event types
const (
	BookingsChanged = "bookings.changed"
	WalletSubmitted = "wallet.submitted"
	SessionRevoked  = "session.revoked"
)

// OwnerEventsStream is the single stream all owner-centre events ride on.
const OwnerEventsStream = "owner.events"

type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// BookingsChangedEvent says the backend reported new booking activity for
// an owner; consumers should reload from the backend, not patch state.
type BookingsChangedEvent struct {
	OwnerID    string `json:"owner_id"`
	DetectedAt int64  `json:"detected_at"`
}

// WalletSubmittedEvent says a wallet transaction was filed and the cached
// balance may be stale.
type WalletSubmittedEvent struct {
	OwnerID   string  `json:"owner_id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference,omitempty"`
}

// SessionRevokedEvent says a session was cleared after the backend rejected
// its token.
type SessionRevokedEvent struct {
	OwnerID string `json:"owner_id"`
}
