package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// AggregateView is the cacheable read model of a daily aggregate.
type AggregateView struct {
	Date         time.Time       `json:"date"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	Balance      decimal.Decimal `json:"balance"`
	EntryCount   int64           `json:"entry_count"`
}

// AggregateUseCase handles daily-aggregate reads and event folds.
type AggregateUseCase struct {
	aggRepo  AggregateRepository
	cache    Cache
	idGen    IDGenerator
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewAggregateUseCase creates a new AggregateUseCase.
func NewAggregateUseCase(aggRepo AggregateRepository, cache Cache, idGen IDGenerator, cacheTTL time.Duration, logger zerolog.Logger) *AggregateUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultAggregateCacheTTL
	}

	return &AggregateUseCase{
		aggRepo:  aggRepo,
		cache:    cache,
		idGen:    idGen,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// CacheKey builds the deterministic cache key for a (user, date) aggregate.
func CacheKey(userID string, date time.Time) string {
	return fmt.Sprintf("aggregate:%s:%s", userID, domain.TruncateToDay(date).Format(time.DateOnly))
}

// GetDailyAggregate serves a read via cache-then-store fallback. Cache errors
// are absorbed: a failing cache degrades to store reads, never to request
// failures. Absence is not cached, so a fold landing right after a miss is
// visible on the next read.
func (uc *AggregateUseCase) GetDailyAggregate(ctx context.Context, userID string, date time.Time) (*AggregateView, error) {
	day := domain.TruncateToDay(date)
	key := CacheKey(userID, day)

	cached, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, falling back to store")
	} else if cached != nil {
		var view AggregateView
		if err := json.Unmarshal(cached, &view); err == nil {
			return &view, nil
		}
		uc.logger.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	}

	agg, err := uc.aggRepo.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	view := viewFromAggregate(agg)

	payload, err := json.Marshal(view)
	if err == nil {
		if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
			uc.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}

	return view, nil
}

// ApplyEntryCreated folds one creation event into the (user, date) aggregate
// and invalidates the cached view. The read-modify-write is not atomic across
// consumer instances; correctness relies on a single consumer with prefetch=1.
// Reapplying the same event double-counts: there is no dedup by entry id.
func (uc *AggregateUseCase) ApplyEntryCreated(ctx context.Context, event *domain.EntryCreatedEvent) error {
	day := domain.TruncateToDay(event.Date)

	agg, err := uc.aggRepo.GetByUserAndDate(ctx, event.UserID, day)
	isNew := false
	if errors.Is(err, domain.ErrAggregateNotFound) {
		agg = domain.NewDailyAggregate(uc.idGen.Generate(), event.UserID, day)
		isNew = true
	} else if err != nil {
		return err
	}

	if err := agg.Apply(event.Direction, event.Amount); err != nil {
		return err
	}

	if isNew {
		err = uc.aggRepo.Insert(ctx, agg)
	} else {
		err = uc.aggRepo.Update(ctx, agg)
	}
	if err != nil {
		return err
	}

	// Invalidate rather than update in place, so readers never see a
	// half-applied value and the cache stays ignorant of fold logic.
	key := CacheKey(event.UserID, day)
	if err := uc.cache.Delete(ctx, key); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}

	uc.logger.Info().
		Str("entry_id", event.EntryID).
		Str("user_id", event.UserID).
		Str("date", day.Format(time.DateOnly)).
		Msg("entry folded into daily aggregate")

	return nil
}

func viewFromAggregate(agg *domain.DailyAggregate) *AggregateView {
	return &AggregateView{
		Date:         agg.Date,
		TotalCredits: agg.TotalCredits,
		TotalDebits:  agg.TotalDebits,
		Balance:      agg.Balance,
		EntryCount:   agg.EntryCount,
	}
}
