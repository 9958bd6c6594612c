package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// EntryUseCase handles entry business logic.
type EntryUseCase struct {
	txManager TransactionManager
	entryRepo EntryRepository
	publisher EventPublisher
	idGen     IDGenerator
	logger    zerolog.Logger
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(txManager TransactionManager, entryRepo EntryRepository, publisher EventPublisher, idGen IDGenerator, logger zerolog.Logger) *EntryUseCase {
	return &EntryUseCase{
		txManager: txManager,
		entryRepo: entryRepo,
		publisher: publisher,
		idGen:     idGen,
		logger:    logger,
	}
}

// CreateEntryInput represents input for creating an entry.
type CreateEntryInput struct {
	UserID      string
	Date        time.Time
	Amount      decimal.Decimal
	Direction   domain.Direction
	Description string
}

// CreateEntry validates and persists a new entry, then publishes a creation
// event. The entry write is authoritative: once the transaction commits, the
// operation succeeds regardless of publish outcome. A failed publish leaves an
// entry with no corresponding event, which is the documented
// eventual-consistency gap of this version.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}
	if !input.Direction.IsValid() {
		return nil, domain.ErrInvalidDirection
	}

	entry := &domain.Entry{
		ID:          uc.idGen.Generate(),
		UserID:      input.UserID,
		Date:        domain.TruncateToDay(input.Date),
		Amount:      input.Amount,
		Direction:   input.Direction,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	// Best-effort publish after commit. Not retried in this version.
	if err := uc.publisher.Publish(ctx, domain.NewEntryCreatedEvent(entry)); err != nil {
		uc.logger.Warn().
			Err(err).
			Str("entry_id", entry.ID).
			Msg("entry created but event not published")
	}

	return entry, nil
}

// GetEntry retrieves an entry by id, scoped to its owner.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id, userID string) (*domain.Entry, error) {
	return uc.entryRepo.GetByIDAndUser(ctx, id, userID)
}

// ListEntries lists a user's entries with optional date/direction filters.
func (uc *EntryUseCase) ListEntries(ctx context.Context, userID string, filter EntryFilter) ([]*domain.Entry, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.entryRepo.ListByUser(ctx, userID, filter)
}
