package usecase

import "time"

const (
	// DefaultAggregateCacheTTL bounds staleness of cached daily aggregates.
	DefaultAggregateCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
