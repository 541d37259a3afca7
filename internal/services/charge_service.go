package services

import (
	"context"

	"github.com/mgrunewald/giftvault/internal/clock"
	"github.com/mgrunewald/giftvault/internal/domain"
	"github.com/mgrunewald/giftvault/internal/repository"
)

// ChargeService records completed charges and exposes per-card
// statements. Balance mutation and log append are one logical
// transaction: a rejected debit never reaches the log.
type ChargeService interface {
	// Record debits the card and appends a charge stamped with the
	// current instant. Fails with INVALID_ARGUMENT for a bad amount or
	// description and INSUFFICIENT_FUNDS when the debit would drive
	// the balance negative; the log is untouched on failure.
	Record(ctx context.Context, card *domain.GiftCard, merchant *domain.Merchant, amount int, description string) (domain.Charge, error)

	// ListFor returns the card's charges in the order they were
	// recorded.
	ListFor(ctx context.Context, cardNumber string) ([]domain.Charge, error)
}

// chargeService implements ChargeService.
type chargeService struct {
	cards   repository.GiftCardRepository
	charges repository.ChargeRepository
	clk     clock.Clock
}

// NewChargeService creates a charge service.
func NewChargeService(
	cards repository.GiftCardRepository,
	charges repository.ChargeRepository,
	clk clock.Clock,
) ChargeService {
	return &chargeService{
		cards:   cards,
		charges: charges,
		clk:     clk,
	}
}

// Record debits first, appends second. The debit carries all the
// amount and description validation.
func (s *chargeService) Record(
	ctx context.Context,
	card *domain.GiftCard,
	merchant *domain.Merchant,
	amount int,
	description string,
) (domain.Charge, error) {
	if err := card.Charge(amount, description); err != nil {
		return domain.Charge{}, err
	}

	if err := s.cards.Update(ctx, card); err != nil {
		return domain.Charge{}, err
	}

	charge, err := domain.NewCharge(card.CardNumber, merchant.ID, amount, description, s.clk.Now())
	if err != nil {
		return domain.Charge{}, err
	}

	if err := s.charges.Append(ctx, charge); err != nil {
		return domain.Charge{}, err
	}
	return charge, nil
}

// ListFor returns a card's statement.
func (s *chargeService) ListFor(ctx context.Context, cardNumber string) ([]domain.Charge, error) {
	return s.charges.ListByCard(ctx, cardNumber)
}
