package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/adapter/http/middleware"
	"github.com/iho/cashflow/internal/usecase"
)

// AggregateHandler serves the consolidated daily view.
type AggregateHandler struct {
	aggregateUC *usecase.AggregateUseCase
}

// NewAggregateHandler creates a new AggregateHandler.
func NewAggregateHandler(aggregateUC *usecase.AggregateUseCase) *AggregateHandler {
	return &AggregateHandler{aggregateUC: aggregateUC}
}

// GetDaily returns the authenticated user's aggregate for one calendar day.
func (h *AggregateHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	dateStr := chi.URLParam(r, "date")
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format (use YYYY-MM-DD)", err.Error())
		return
	}

	view, err := h.aggregateUC.GetDailyAggregate(r.Context(), user.ID, date)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get daily aggregate", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AggregateFromView(view))
}
