package dto

import (
	"time"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest represents a request to create a financial entry.
type CreateEntryRequest struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	Description string          `json:"description"`
}

// ToUseCaseInput converts to use case input for the authenticated user.
func (r *CreateEntryRequest) ToUseCaseInput(userID string) usecase.CreateEntryInput {
	return usecase.CreateEntryInput{
		UserID:      userID,
		Date:        r.Date,
		Amount:      r.Amount,
		Direction:   domain.Direction(r.Direction),
		Description: r.Description,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a request to create a user.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
