package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/adapter/http/handler"
	"github.com/iho/cashflow/internal/adapter/http/middleware"
	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
	"github.com/iho/cashflow/internal/usecase/mocks"
)

func newTestEntryHandler() (*handler.EntryHandler, *mocks.MockEntryRepository, *mocks.MockEventPublisher) {
	txManager := mocks.NewMockTransactionManager()
	repo := mocks.NewMockEntryRepository()
	publisher := mocks.NewMockEventPublisher()
	idGen := mocks.NewMockIDGenerator()
	uc := usecase.NewEntryUseCase(txManager, repo, publisher, idGen, zerolog.Nop())
	return handler.NewEntryHandler(uc), repo, publisher
}

func authenticatedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	user := &domain.User{ID: "user-1", Email: "user@example.com"}
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, user)
	return req.WithContext(ctx)
}

func TestEntryHandlerCreate(t *testing.T) {
	h, repo, publisher := newTestEntryHandler()

	body := []byte(`{"date":"2024-01-05T00:00:00Z","amount":"100.00","direction":"C","description":"salary"}`)
	req := authenticatedRequest(http.MethodPost, "/api/v1/entries", body)
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dto.EntryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.UserID != "user-1" || resp.Direction != "C" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if repo.Count() != 1 {
		t.Errorf("expected one persisted entry, got %d", repo.Count())
	}
	if len(publisher.Published()) != 1 {
		t.Errorf("expected one published event, got %d", len(publisher.Published()))
	}
}

func TestEntryHandlerCreateValidationError(t *testing.T) {
	h, repo, _ := newTestEntryHandler()

	body := []byte(`{"date":"2024-01-05T00:00:00Z","amount":"-5.00","direction":"D","description":"groceries"}`)
	req := authenticatedRequest(http.MethodPost, "/api/v1/entries", body)
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if repo.Count() != 0 {
		t.Errorf("invalid entry must not be persisted")
	}
}

func TestEntryHandlerCreateInvalidBody(t *testing.T) {
	h, _, _ := newTestEntryHandler()

	req := authenticatedRequest(http.MethodPost, "/api/v1/entries", []byte("{not json"))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestEntryHandlerCreateRequiresUser(t *testing.T) {
	h, _, _ := newTestEntryHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestEntryHandlerGetNotFound(t *testing.T) {
	h, _, _ := newTestEntryHandler()

	req := authenticatedRequest(http.MethodGet, "/api/v1/entries/missing", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	h.Get(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestEntryHandlerListInvalidDate(t *testing.T) {
	h, _, _ := newTestEntryHandler()

	req := authenticatedRequest(http.MethodGet, "/api/v1/entries?date=05-01-2024", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
