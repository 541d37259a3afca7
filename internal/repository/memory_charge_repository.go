package repository

import (
	"context"
	"sync"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// memoryChargeRepository provides an in-memory implementation of ChargeRepository.
type memoryChargeRepository struct {
	charges map[string][]domain.Charge
	mutex   sync.RWMutex
}

// NewMemoryChargeRepository creates a new in-memory charge repository.
func NewMemoryChargeRepository() ChargeRepository {
	return &memoryChargeRepository{
		charges: make(map[string][]domain.Charge),
	}
}

// Append adds a charge to its card's log.
func (r *memoryChargeRepository) Append(_ context.Context, charge domain.Charge) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.charges[charge.CardNumber] = append(r.charges[charge.CardNumber], charge)
	return nil
}

// ListByCard returns the charges recorded against a card, oldest first.
func (r *memoryChargeRepository) ListByCard(_ context.Context, cardNumber string) ([]domain.Charge, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	stored := r.charges[cardNumber]
	charges := make([]domain.Charge, len(stored))
	copy(charges, stored)
	return charges, nil
}
