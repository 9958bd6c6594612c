package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/cashflow/internal/adapter/http/handler"
	"github.com/iho/cashflow/internal/infrastructure/auth"
)

func newTestJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("router-test-secret", time.Hour)
}

func TestEntriesRouterHealthEndpoint(t *testing.T) {
	router := NewEntriesRouter(EntriesRouterConfig{
		EntryHandler:  handler.NewEntryHandler(nil),
		HealthHandler: handler.NewHealthHandler(nil, nil),
		JWTManager:    newTestJWTManager(),
		Logger:        zerolog.Nop(),
	})

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestEntriesRouterRequiresAuth(t *testing.T) {
	router := NewEntriesRouter(EntriesRouterConfig{
		EntryHandler:  handler.NewEntryHandler(nil),
		HealthHandler: handler.NewHealthHandler(nil, nil),
		JWTManager:    newTestJWTManager(),
		Logger:        zerolog.Nop(),
	})

	for _, path := range []string{"/api/v1/entries", "/api/v1/entries/some-id"} {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestConsolidationRouterRequiresAuth(t *testing.T) {
	router := NewConsolidationRouter(ConsolidationRouterConfig{
		AggregateHandler: handler.NewAggregateHandler(nil),
		HealthHandler:    handler.NewHealthHandler(nil, nil),
		JWTManager:       newTestJWTManager(),
		Logger:           zerolog.Nop(),
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/consolidation/2026-08-30", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestSSORouterMeRequiresAuth(t *testing.T) {
	router := NewSSORouter(SSORouterConfig{
		AuthHandler:   handler.NewAuthHandler(nil, newTestJWTManager()),
		HealthHandler: handler.NewHealthHandler(nil, nil),
		JWTManager:    newTestJWTManager(),
		Logger:        zerolog.Nop(),
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := NewSSORouter(SSORouterConfig{
		AuthHandler:   handler.NewAuthHandler(nil, newTestJWTManager()),
		HealthHandler: handler.NewHealthHandler(nil, nil),
		JWTManager:    newTestJWTManager(),
		Logger:        zerolog.Nop(),
	})

	r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
