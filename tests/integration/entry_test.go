package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
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

// recordingPublisher stands in for the broker so entry tests run without
// RabbitMQ. It can be told to fail to exercise the best-effort contract.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*domain.EntryCreatedEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event *domain.EntryCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func newEntriesServer(t *testing.T, testDB *testutil.TestDB, publisher usecase.EventPublisher, jwtManager *auth.JWTManager) http.Handler {
	t.Helper()

	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	pool := testDB.Pool
	txManager := pgrepo.NewTxManager(pool)
	entryRepo := pgrepo.NewEntryRepository(pool)
	idGen := pgrepo.NewULIDGenerator()
	entryUC := usecase.NewEntryUseCase(txManager, entryRepo, publisher, idGen, zerolog.Nop())

	return adaptershttp.NewEntriesRouter(adaptershttp.EntriesRouterConfig{
		EntryHandler:     handler.NewEntryHandler(entryUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		JWTManager:       jwtManager,
		IdempotencyStore: redisrepo.NewIdempotencyStore(redisClient),
		Logger:           zerolog.Nop(),
	})
}

func TestEntryLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	jwtManager := auth.NewJWTManager("integration-secret", time.Hour)
	publisher := &recordingPublisher{}
	router := newEntriesServer(t, testDB, publisher, jwtManager)

	user := testDB.CreateTestUser(ctx, "entries@example.com", "Entries User", "password123")
	token, err := jwtManager.Generate(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	var createdID string

	t.Run("create entry persists and publishes", func(t *testing.T) {
		req := dto.CreateEntryRequest{
			Date:        time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString("150.25"),
			Direction:   "C",
			Description: "invoice 42",
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.EntryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.ID == "" {
			t.Error("expected non-empty entry id")
		}
		if resp.UserID != user.ID {
			t.Errorf("expected user id %q, got %q", user.ID, resp.UserID)
		}
		if !resp.Amount.Equal(req.Amount) {
			t.Errorf("expected amount %s, got %s", req.Amount, resp.Amount)
		}
		createdID = resp.ID

		if got := testDB.CountEntries(ctx, user.ID); got != 1 {
			t.Errorf("expected 1 persisted entry, got %d", got)
		}
		if publisher.count() != 1 {
			t.Errorf("expected 1 published event, got %d", publisher.count())
		}
	})

	t.Run("get entry by id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/entries/"+createdID, nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}
	})

	t.Run("list entries filtered by direction", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/entries?direction=C", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp []dto.EntryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(resp) != 1 {
			t.Errorf("expected 1 entry, got %d", len(resp))
		}
	})

	t.Run("requests without token are rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})
}

func TestEntryCreationSurvivesPublishFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	jwtManager := auth.NewJWTManager("integration-secret", time.Hour)
	publisher := &recordingPublisher{err: errors.New("broker unreachable")}
	router := newEntriesServer(t, testDB, publisher, jwtManager)

	user := testDB.CreateTestUser(ctx, "offline@example.com", "Offline User", "password123")
	token, err := jwtManager.Generate(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := dto.CreateEntryRequest{
		Date:      time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		Amount:    decimal.RequireFromString("10.00"),
		Direction: "D",
	}
	body, _ := json.Marshal(req)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d despite publish failure, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	if got := testDB.CountEntries(ctx, user.ID); got != 1 {
		t.Errorf("expected entry to be persisted, got %d rows", got)
	}
}
