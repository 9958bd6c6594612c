package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/iho/cashflow/internal/adapter/http"
	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/adapter/http/handler"
	pgrepo "github.com/iho/cashflow/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/cashflow/internal/adapter/repository/redis"
	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/infrastructure/auth"
	infraredis "github.com/iho/cashflow/internal/infrastructure/redis"
	"github.com/iho/cashflow/internal/usecase"
	"github.com/iho/cashflow/tests/testutil"
)

func TestConsolidationFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	pool := testDB.Pool
	aggRepo := pgrepo.NewAggregateRepository(pool)
	cache := redisrepo.NewCache(redisClient)
	idGen := pgrepo.NewULIDGenerator()
	aggregateUC := usecase.NewAggregateUseCase(aggRepo, cache, idGen, time.Minute, zerolog.Nop())

	jwtManager := auth.NewJWTManager("integration-secret", time.Hour)
	router := adaptershttp.NewConsolidationRouter(adaptershttp.ConsolidationRouterConfig{
		AggregateHandler: handler.NewAggregateHandler(aggregateUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		JWTManager:       jwtManager,
		Logger:           zerolog.Nop(),
	})

	user := testDB.CreateTestUser(ctx, "consolidation@example.com", "Consolidation User", "password123")
	token, err := jwtManager.Generate(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	fold := func(amount string, direction domain.Direction, at time.Time) {
		t.Helper()
		err := aggregateUC.ApplyEntryCreated(ctx, &domain.EntryCreatedEvent{
			EntryID:   idGen.Generate(),
			UserID:    user.ID,
			Date:      at,
			Amount:    decimal.RequireFromString(amount),
			Direction: direction,
			CreatedAt: at,
		})
		if err != nil {
			t.Fatalf("failed to fold event: %v", err)
		}
	}

	getDaily := func() dto.AggregateResponse {
		t.Helper()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/consolidation/2026-08-30", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.AggregateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		return resp
	}

	t.Run("events fold into the daily balance", func(t *testing.T) {
		fold("100.00", domain.DirectionCredit, day.Add(9*time.Hour))
		fold("30.00", domain.DirectionDebit, day.Add(15*time.Hour))

		resp := getDaily()
		if !resp.Balance.Equal(decimal.RequireFromString("70.00")) {
			t.Errorf("expected balance 70.00, got %s", resp.Balance)
		}
		if resp.EntryCount != 2 {
			t.Errorf("expected entry count 2, got %d", resp.EntryCount)
		}
	})

	t.Run("fold invalidates the cached view", func(t *testing.T) {
		// First read warmed the cache; a new fold must be visible immediately.
		fold("5.00", domain.DirectionCredit, day.Add(18*time.Hour))

		resp := getDaily()
		if !resp.Balance.Equal(decimal.RequireFromString("75.00")) {
			t.Errorf("expected balance 75.00 after invalidation, got %s", resp.Balance)
		}
	})

	t.Run("missing day returns not found", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/consolidation/1999-01-01", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d: %s", http.StatusNotFound, w.Code, w.Body.String())
		}
	})

	t.Run("redelivered event double-counts", func(t *testing.T) {
		// Folding is not idempotent: the same event applied twice is
		// counted twice. Pins the current at-least-once behavior.
		event := &domain.EntryCreatedEvent{
			EntryID:   idGen.Generate(),
			UserID:    user.ID,
			Date:      day.Add(20 * time.Hour),
			Amount:    decimal.RequireFromString("1.00"),
			Direction: domain.DirectionCredit,
			CreatedAt: day.Add(20 * time.Hour),
		}
		if err := aggregateUC.ApplyEntryCreated(ctx, event); err != nil {
			t.Fatalf("first apply failed: %v", err)
		}
		if err := aggregateUC.ApplyEntryCreated(ctx, event); err != nil {
			t.Fatalf("second apply failed: %v", err)
		}

		resp := getDaily()
		if !resp.Balance.Equal(decimal.RequireFromString("77.00")) {
			t.Errorf("expected balance 77.00 after double fold, got %s", resp.Balance)
		}
		if resp.EntryCount != 5 {
			t.Errorf("expected entry count 5, got %d", resp.EntryCount)
		}
	})
}
