package repository

import (
	"context"
	"sync"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// memoryClaimRepository provides an in-memory implementation of ClaimRepository.
type memoryClaimRepository struct {
	// claims maps a session token to the cards claimed under it, in
	// claim order.
	claims map[string][]*domain.Claim
	mutex  sync.RWMutex
}

// NewMemoryClaimRepository creates a new in-memory claim repository.
func NewMemoryClaimRepository() ClaimRepository {
	return &memoryClaimRepository{
		claims: make(map[string][]*domain.Claim),
	}
}

// Create records a claim for a session.
func (r *memoryClaimRepository) Create(_ context.Context, claim *domain.Claim) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.claims[claim.Token] {
		if existing.CardNumber == claim.CardNumber {
			return domain.NewConflictError(domain.CodeAlreadyClaimed, "Gift card already claimed in this session")
		}
	}

	r.claims[claim.Token] = append(r.claims[claim.Token], claim)
	return nil
}

// Exists reports whether the session already claimed the card.
func (r *memoryClaimRepository) Exists(_ context.Context, token, cardNumber string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, claim := range r.claims[token] {
		if claim.CardNumber == cardNumber {
			return true, nil
		}
	}
	return false, nil
}

// ExistsForCard reports whether any session has claimed the card.
func (r *memoryClaimRepository) ExistsForCard(_ context.Context, cardNumber string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, claims := range r.claims {
		for _, claim := range claims {
			if claim.CardNumber == cardNumber {
				return true, nil
			}
		}
	}
	return false, nil
}

// ListByToken returns the card numbers claimed by a session.
func (r *memoryClaimRepository) ListByToken(_ context.Context, token string) ([]string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	claims := r.claims[token]
	cardNumbers := make([]string, 0, len(claims))
	for _, claim := range claims {
		cardNumbers = append(cardNumbers, claim.CardNumber)
	}
	return cardNumbers, nil
}
