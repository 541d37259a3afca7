package repository

import (
	"context"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// GiftCardRepository is the gift-card ledger: card state keyed by card
// number.
type GiftCardRepository interface {
	// Create stores a preloaded card. Fails with ALREADY_REGISTERED if
	// the card number is taken; the first card is kept verbatim.
	Create(ctx context.Context, card *domain.GiftCard) error

	// GetByNumber retrieves a card. Fails with UNKNOWN_CARD if absent.
	GetByNumber(ctx context.Context, cardNumber string) (*domain.GiftCard, error)

	// Update persists a card's mutated balance. Fails with UNKNOWN_CARD
	// if the card was never preloaded.
	Update(ctx context.Context, card *domain.GiftCard) error
}
