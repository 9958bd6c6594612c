package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event routing constants for the entries exchange.
const (
	EventTypeEntryCreated  = "entry.created"
	ExchangeEntries        = "entries_exchange"
	QueueEntryCreated      = "entry_created_queue"
	RoutingKeyEntryCreated = "entry.created"
)

// EntryCreatedEvent is published once per successfully persisted entry and
// drives the daily-aggregate fold. Delivery is at-least-once; the fold is not
// idempotent under redelivery, so the consumer relies on ack-after-success
// with prefetch=1.
type EntryCreatedEvent struct {
	EntryID   string          `json:"entry_id"`
	UserID    string          `json:"user_id"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewEntryCreatedEvent derives the creation event from a persisted entry.
func NewEntryCreatedEvent(e *Entry) *EntryCreatedEvent {
	return &EntryCreatedEvent{
		EntryID:   e.ID,
		UserID:    e.UserID,
		Date:      e.Date,
		Amount:    e.Amount,
		Direction: e.Direction,
		CreatedAt: e.CreatedAt,
	}
}
