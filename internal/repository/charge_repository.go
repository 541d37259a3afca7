package repository

import (
	"context"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// ChargeRepository is the per-card append-only charge log.
type ChargeRepository interface {
	// Append adds a completed charge to its card's log.
	Append(ctx context.Context, charge domain.Charge) error

	// ListByCard returns a card's charges in append order. Empty slice
	// if none.
	ListByCard(ctx context.Context, cardNumber string) ([]domain.Charge, error)
}
