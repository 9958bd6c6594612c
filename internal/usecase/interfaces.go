package usecase

import (
	"context"
	"time"

	"github.com/iho/cashflow/internal/domain"
)

// EntryFilter narrows entry listings. Zero-value fields are ignored.
type EntryFilter struct {
	Date      *time.Time
	Direction *domain.Direction
	Limit     int
	Offset    int
}

// EntryRepository defines data access for entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Entry, error)
	ListByUser(ctx context.Context, userID string, filter EntryFilter) ([]*domain.Entry, error)
	Update(ctx context.Context, entry *domain.Entry) error
	Delete(ctx context.Context, id string) error
}

// AggregateRepository defines data access for daily aggregates.
// (user, date) is a unique key: GetByUserAndDate returns
// domain.ErrAggregateNotFound when no row exists.
type AggregateRepository interface {
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.DailyAggregate, error)
	Insert(ctx context.Context, aggregate *domain.DailyAggregate) error
	Update(ctx context.Context, aggregate *domain.DailyAggregate) error
}

// EventPublisher publishes entry creation events to the message channel.
// Publishing is best effort from the producer side: implementations absorb
// connectivity failures after logging them, so a failed publish never fails
// the surrounding operation.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.EntryCreatedEvent) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations. A miss is (nil, nil); infrastructure
// errors are returned but callers treat them as misses or no-ops.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Retrier retries an operation on transient store errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
