package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/cashflow/internal/domain"
)

// AggregateRepository implements usecase.AggregateRepository.
type AggregateRepository struct {
	pool *pgxpool.Pool
}

// NewAggregateRepository creates a new AggregateRepository.
func NewAggregateRepository(pool *pgxpool.Pool) *AggregateRepository {
	return &AggregateRepository{pool: pool}
}

// GetByUserAndDate retrieves the aggregate for one user and one calendar day.
func (r *AggregateRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.DailyAggregate, error) {
	query := `
		SELECT id, user_id, date, total_credits, total_debits, balance, entry_count, updated_at
		FROM daily_aggregates
		WHERE user_id = $1 AND date = $2
	`

	var agg domain.DailyAggregate
	err := r.pool.QueryRow(ctx, query, userID, domain.TruncateToDay(date)).Scan(
		&agg.ID,
		&agg.UserID,
		&agg.Date,
		&agg.TotalCredits,
		&agg.TotalDebits,
		&agg.Balance,
		&agg.EntryCount,
		&agg.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAggregateNotFound
	}
	if err != nil {
		return nil, err
	}

	return &agg, nil
}

// Insert creates a new daily aggregate row.
func (r *AggregateRepository) Insert(ctx context.Context, aggregate *domain.DailyAggregate) error {
	query := `
		INSERT INTO daily_aggregates (id, user_id, date, total_credits, total_debits, balance, entry_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		aggregate.ID,
		aggregate.UserID,
		aggregate.Date,
		aggregate.TotalCredits,
		aggregate.TotalDebits,
		aggregate.Balance,
		aggregate.EntryCount,
		aggregate.UpdatedAt,
	)

	return err
}

// Update rewrites an existing daily aggregate row.
func (r *AggregateRepository) Update(ctx context.Context, aggregate *domain.DailyAggregate) error {
	query := `
		UPDATE daily_aggregates
		SET total_credits = $3, total_debits = $4, balance = $5, entry_count = $6, updated_at = $7
		WHERE user_id = $1 AND date = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		aggregate.UserID,
		aggregate.Date,
		aggregate.TotalCredits,
		aggregate.TotalDebits,
		aggregate.Balance,
		aggregate.EntryCount,
		aggregate.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAggregateNotFound
	}

	return nil
}
