package repository

import (
	"context"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// ClaimRepository is the claim table: the set of (session token, card
// number) pairs recorded when sessions claim cards they own.
type ClaimRepository interface {
	// Create records a claim. Fails with ALREADY_CLAIMED if the same
	// pair was recorded before; the claim set is left unchanged.
	Create(ctx context.Context, claim *domain.Claim) error

	// Exists reports whether a (token, cardNumber) pair is recorded.
	Exists(ctx context.Context, token, cardNumber string) (bool, error)

	// ExistsForCard reports whether any session has claimed the card.
	// Merchant-initiated charges gate on this rather than on a
	// particular session.
	ExistsForCard(ctx context.Context, cardNumber string) (bool, error)

	// ListByToken returns the card numbers claimed by a session, in
	// claim order. Empty slice if none.
	ListByToken(ctx context.Context, token string) ([]string, error)
}
