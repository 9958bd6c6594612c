package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction marks an entry as a credit or a debit.
type Direction string

const (
	DirectionCredit Direction = "C"
	DirectionDebit  Direction = "D"
)

// IsValid checks if the direction is one of the two known values.
func (d Direction) IsValid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// Entry represents a single financial entry owned by a user.
// Entries are immutable once created; the consolidation path never
// mutates or deletes them.
type Entry struct {
	ID          string
	UserID      string
	Date        time.Time
	Amount      decimal.Decimal
	Direction   Direction
	Description string
	CreatedAt   time.Time
}

// BusinessDay returns the entry's business date truncated to the UTC
// calendar day. Time-of-day on the stored date is discarded.
func (e *Entry) BusinessDay() time.Time {
	return TruncateToDay(e.Date)
}

// TruncateToDay normalizes a timestamp to midnight UTC of its calendar day.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
