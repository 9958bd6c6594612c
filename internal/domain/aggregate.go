package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyAggregate is the derived per-user-per-day consolidation of entries.
// At most one aggregate exists per (user, date); the pair is unique in the
// store. Balance is always recomputed from credits and debits, never stored
// independently as authoritative.
type DailyAggregate struct {
	ID           string
	UserID       string
	Date         time.Time
	TotalCredits decimal.Decimal
	TotalDebits  decimal.Decimal
	Balance      decimal.Decimal
	EntryCount   int64
	UpdatedAt    time.Time
}

// NewDailyAggregate creates an empty aggregate for a (user, date) pair.
// The date is truncated to its UTC calendar day.
func NewDailyAggregate(id, userID string, date time.Time) *DailyAggregate {
	return &DailyAggregate{
		ID:           id,
		UserID:       userID,
		Date:         TruncateToDay(date),
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
		Balance:      decimal.Zero,
		EntryCount:   0,
		UpdatedAt:    time.Now().UTC(),
	}
}

// ApplyCredit folds a credit amount into the running totals.
func (a *DailyAggregate) ApplyCredit(amount decimal.Decimal) {
	a.TotalCredits = a.TotalCredits.Add(amount)
	a.EntryCount++
	a.recalculate()
}

// ApplyDebit folds a debit amount into the running totals.
func (a *DailyAggregate) ApplyDebit(amount decimal.Decimal) {
	a.TotalDebits = a.TotalDebits.Add(amount)
	a.EntryCount++
	a.recalculate()
}

// Apply folds one entry's contribution according to its direction.
func (a *DailyAggregate) Apply(direction Direction, amount decimal.Decimal) error {
	switch direction {
	case DirectionCredit:
		a.ApplyCredit(amount)
	case DirectionDebit:
		a.ApplyDebit(amount)
	default:
		return ErrInvalidDirection
	}
	return nil
}

func (a *DailyAggregate) recalculate() {
	a.Balance = a.TotalCredits.Sub(a.TotalDebits)
	a.UpdatedAt = time.Now().UTC()
}
