package services

import (
	"context"

	"github.com/mgrunewald/giftvault/internal/clock"
	"github.com/mgrunewald/giftvault/internal/domain"
	"github.com/mgrunewald/giftvault/internal/repository"
)

// ClaimService binds cards to the sessions that claimed them. A claim
// is the precondition for reading or charging a card.
type ClaimService interface {
	// Claim records that the session asserts ownership of the card.
	// Fails with UNKNOWN_TOKEN/EXPIRED_TOKEN for a dead session,
	// UNKNOWN_CARD for an absent card, OWNERSHIP_MISMATCH when the
	// card belongs to someone else, and ALREADY_CLAIMED on a repeat.
	Claim(ctx context.Context, token, cardNumber string) error

	// RequireClaimed returns the card if the session is active and
	// previously claimed it. Fails with NOT_CLAIMED when the pair was
	// never recorded.
	RequireClaimed(ctx context.Context, token, cardNumber string) (*domain.GiftCard, error)

	// ListClaims returns the card numbers claimed under the session.
	// Never an error once the session itself is active.
	ListClaims(ctx context.Context, token string) ([]string, error)
}

// claimService implements ClaimService.
type claimService struct {
	sessions SessionService
	cards    repository.GiftCardRepository
	claims   repository.ClaimRepository
	clk      clock.Clock
}

// NewClaimService creates a claim service.
func NewClaimService(
	sessions SessionService,
	cards repository.GiftCardRepository,
	claims repository.ClaimRepository,
	clk clock.Clock,
) ClaimService {
	return &claimService{
		sessions: sessions,
		cards:    cards,
		claims:   claims,
		clk:      clk,
	}
}

// Claim records a (token, cardNumber) pair. Session validity is checked
// before card existence, which is checked before ownership.
func (s *claimService) Claim(ctx context.Context, token, cardNumber string) error {
	session, err := s.sessions.RequireActive(ctx, token)
	if err != nil {
		return err
	}

	card, err := s.cards.GetByNumber(ctx, cardNumber)
	if err != nil {
		return err
	}

	if card.Owner != session.Username {
		return domain.NewAuthorizationError(domain.CodeOwnershipMismatch, "Gift card does not belong to the session's user")
	}

	return s.claims.Create(ctx, &domain.Claim{
		Token:      token,
		CardNumber: cardNumber,
		ClaimedAt:  s.clk.Now(),
	})
}

// RequireClaimed gates balance and statement reads.
func (s *claimService) RequireClaimed(ctx context.Context, token, cardNumber string) (*domain.GiftCard, error) {
	session, err := s.sessions.RequireActive(ctx, token)
	if err != nil {
		return nil, err
	}

	card, err := s.cards.GetByNumber(ctx, cardNumber)
	if err != nil {
		return nil, err
	}

	claimed, err := s.claims.Exists(ctx, token, cardNumber)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, domain.NewAuthorizationError(domain.CodeNotClaimed, "Gift card was not claimed in this session")
	}

	// Ownership cannot normally diverge after a claim; re-checked in
	// case the card record was replaced underneath.
	if card.Owner != session.Username {
		return nil, domain.NewAuthorizationError(domain.CodeOwnershipMismatch, "Gift card does not belong to the session's user")
	}

	return card, nil
}

// ListClaims returns the session's claim set in claim order.
func (s *claimService) ListClaims(ctx context.Context, token string) ([]string, error) {
	return s.claims.ListByToken(ctx, token)
}
