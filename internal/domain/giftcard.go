package domain

import (
	"strings"
)

// GiftCard represents a stored-value card owned by a single user.
// Balances are integers in the currency's minimum unit and can never
// go negative.
type GiftCard struct {
	CardNumber string `json:"card_number"`
	Owner      string `json:"owner"`
	Balance    int    `json:"balance"`
}

// NewGiftCard creates a gift card, rejecting blank owner/card number
// and negative initial balances.
func NewGiftCard(owner, cardNumber string, balance int) (*GiftCard, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, NewValidationError(CodeInvalidArgument, "Card owner is required", map[string]interface{}{
			"field": "owner",
		})
	}
	if strings.TrimSpace(cardNumber) == "" {
		return nil, NewValidationError(CodeInvalidArgument, "Card number is required", map[string]interface{}{
			"field": "card_number",
		})
	}
	if balance < 0 {
		return nil, NewValidationError(CodeInvalidArgument, "Initial balance cannot be negative", map[string]interface{}{
			"field": "balance",
			"value": balance,
		})
	}
	return &GiftCard{
		CardNumber: cardNumber,
		Owner:      owner,
		Balance:    balance,
	}, nil
}

// AddBalance tops up the card by a strictly positive amount.
func (g *GiftCard) AddBalance(amount int) error {
	if amount <= 0 {
		return NewValidationError(CodeInvalidArgument, "Top-up amount must be positive", map[string]interface{}{
			"field": "amount",
			"value": amount,
		})
	}
	g.Balance += amount
	return nil
}

// Charge debits the card by a strictly positive amount. Validation and
// mutation happen together: a rejected charge leaves the balance
// untouched.
func (g *GiftCard) Charge(amount int, description string) error {
	if amount <= 0 {
		return NewValidationError(CodeInvalidArgument, "Charge amount must be positive", map[string]interface{}{
			"field": "amount",
			"value": amount,
		})
	}
	if strings.TrimSpace(description) == "" {
		return NewValidationError(CodeInvalidArgument, "Charge description is required", map[string]interface{}{
			"field": "description",
		})
	}
	if g.Balance-amount < 0 {
		return NewConflictError(CodeInsufficientFunds, "Charge exceeds the card balance")
	}
	g.Balance -= amount
	return nil
}
