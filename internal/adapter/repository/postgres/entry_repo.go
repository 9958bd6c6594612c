package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

// Create inserts a new entry inside the given transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO entries (id, user_id, date, amount, direction, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := pgxTx.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.Amount,
		string(entry.Direction),
		entry.Description,
		entry.CreatedAt,
	)

	return err
}

// GetByIDAndUser retrieves an entry owned by the given user.
func (r *EntryRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Entry, error) {
	query := `
		SELECT id, user_id, date, amount, direction, description, created_at
		FROM entries
		WHERE id = $1 AND user_id = $2
	`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEntryNotFound
	}

	return entry, err
}

// ListByUser retrieves a user's entries, optionally filtered by day and direction.
func (r *EntryRepository) ListByUser(ctx context.Context, userID string, filter usecase.EntryFilter) ([]*domain.Entry, error) {
	query := `
		SELECT id, user_id, date, amount, direction, description, created_at
		FROM entries
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR date = $2)
		  AND ($3::text IS NULL OR direction = $3)
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5
	`

	var date any
	if filter.Date != nil {
		date = domain.TruncateToDay(*filter.Date)
	}
	var direction any
	if filter.Direction != nil {
		direction = string(*filter.Direction)
	}

	rows, err := r.pool.Query(ctx, query, userID, date, direction, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Update rewrites an entry's mutable fields.
func (r *EntryRepository) Update(ctx context.Context, entry *domain.Entry) error {
	query := `
		UPDATE entries
		SET date = $2, amount = $3, direction = $4, description = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.Date,
		entry.Amount,
		string(entry.Direction),
		entry.Description,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// Delete removes an entry.
func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var entry domain.Entry
	var direction string

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date,
		&entry.Amount,
		&direction,
		&entry.Description,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Direction = domain.Direction(direction)
	return &entry, nil
}
