package repository

import (
	"context"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// MerchantRepository is the merchant registry: merchant id to
// credential pairs.
type MerchantRepository interface {
	// Create stores a new merchant. Fails with ALREADY_REGISTERED on a
	// duplicate id.
	Create(ctx context.Context, merchant *domain.Merchant) error

	// GetByID retrieves a merchant. Fails with UNKNOWN_MERCHANT if absent.
	GetByID(ctx context.Context, id string) (*domain.Merchant, error)
}
