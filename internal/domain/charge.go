package domain

import (
	"strings"
	"time"
)

// Charge is an immutable record of a completed debit against a card.
// Charges are value objects: two charges are equal only if every field
// matches, timestamp included, so charges issued at different instants
// are never equal even with identical amount and description.
type Charge struct {
	CardNumber  string    `json:"card_number"`
	MerchantID  string    `json:"merchant_id"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewCharge creates a charge record with the given timestamp.
func NewCharge(cardNumber, merchantID string, amount int, description string, timestamp time.Time) (Charge, error) {
	if strings.TrimSpace(cardNumber) == "" {
		return Charge{}, NewValidationError(CodeInvalidArgument, "Card number is required", map[string]interface{}{
			"field": "card_number",
		})
	}
	if strings.TrimSpace(merchantID) == "" {
		return Charge{}, NewValidationError(CodeInvalidArgument, "Merchant id is required", map[string]interface{}{
			"field": "merchant_id",
		})
	}
	if amount <= 0 {
		return Charge{}, NewValidationError(CodeInvalidArgument, "Charge amount must be positive", map[string]interface{}{
			"field": "amount",
			"value": amount,
		})
	}
	if strings.TrimSpace(description) == "" {
		return Charge{}, NewValidationError(CodeInvalidArgument, "Charge description is required", map[string]interface{}{
			"field": "description",
		})
	}
	if timestamp.IsZero() {
		return Charge{}, NewValidationError(CodeInvalidArgument, "Charge timestamp is required", map[string]interface{}{
			"field": "timestamp",
		})
	}
	return Charge{
		CardNumber:  cardNumber,
		MerchantID:  merchantID,
		Amount:      amount,
		Description: description,
		Timestamp:   timestamp,
	}, nil
}
