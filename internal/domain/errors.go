package domain

import "errors"

var (
	// Entry errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrEmptyDescription    = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
	ErrInvalidDirection    = errors.New("direction must be credit or debit")
	ErrEntryNotFound       = errors.New("entry not found")

	// Aggregate errors
	ErrAggregateNotFound = errors.New("daily aggregate not found")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrUserNotFound = errors.New("user not found")
)
