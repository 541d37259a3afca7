package repository

import (
	"context"
	"sync"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// memoryMerchantRepository provides an in-memory implementation of MerchantRepository.
type memoryMerchantRepository struct {
	merchants map[string]*domain.Merchant
	mutex     sync.RWMutex
}

// NewMemoryMerchantRepository creates a new in-memory merchant repository.
func NewMemoryMerchantRepository() MerchantRepository {
	return &memoryMerchantRepository{
		merchants: make(map[string]*domain.Merchant),
	}
}

// Create stores a merchant keyed by id.
func (r *memoryMerchantRepository) Create(_ context.Context, merchant *domain.Merchant) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.merchants[merchant.ID]; exists {
		return domain.NewConflictError(domain.CodeAlreadyRegistered, "A merchant with this id already exists")
	}

	r.merchants[merchant.ID] = merchant
	return nil
}

// GetByID retrieves a merchant by id.
func (r *memoryMerchantRepository) GetByID(_ context.Context, id string) (*domain.Merchant, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	merchant, exists := r.merchants[id]
	if !exists {
		return nil, domain.NewNotFoundError(domain.CodeUnknownMerchant, "Merchant not found")
	}
	return merchant, nil
}
