package repository

import (
	"context"
	"sync"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// memoryGiftCardRepository provides an in-memory implementation of GiftCardRepository.
type memoryGiftCardRepository struct {
	cards map[string]*domain.GiftCard
	mutex sync.RWMutex
}

// NewMemoryGiftCardRepository creates a new in-memory gift-card repository.
func NewMemoryGiftCardRepository() GiftCardRepository {
	return &memoryGiftCardRepository{
		cards: make(map[string]*domain.GiftCard),
	}
}

// Create stores a card keyed by card number.
func (r *memoryGiftCardRepository) Create(_ context.Context, card *domain.GiftCard) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.cards[card.CardNumber]; exists {
		return domain.NewConflictError(domain.CodeAlreadyRegistered, "A gift card with this number already exists")
	}

	r.cards[card.CardNumber] = card
	return nil
}

// GetByNumber retrieves a card by card number.
func (r *memoryGiftCardRepository) GetByNumber(_ context.Context, cardNumber string) (*domain.GiftCard, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	card, exists := r.cards[cardNumber]
	if !exists {
		return nil, domain.NewNotFoundError(domain.CodeUnknownCard, "Gift card not found")
	}
	return card, nil
}

// Update replaces the stored card state.
func (r *memoryGiftCardRepository) Update(_ context.Context, card *domain.GiftCard) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.cards[card.CardNumber]; !exists {
		return domain.NewNotFoundError(domain.CodeUnknownCard, "Gift card not found")
	}

	r.cards[card.CardNumber] = card
	return nil
}
