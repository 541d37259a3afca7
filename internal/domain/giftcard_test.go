package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGiftCard_Valid(t *testing.T) {
	card, err := NewGiftCard("martina", "1", 1000)
	require.NoError(t, err)
	assert.Equal(t, "martina", card.Owner)
	assert.Equal(t, "1", card.CardNumber)
	assert.Equal(t, 1000, card.Balance)
}

func TestNewGiftCard_ZeroBalanceAllowed(t *testing.T) {
	card, err := NewGiftCard("martina", "1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, card.Balance)
}

func TestNewGiftCard_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		owner      string
		cardNumber string
		balance    int
	}{
		{"blank owner", "", "1", 100},
		{"whitespace owner", "   ", "1", 100},
		{"blank card number", "martina", "", 100},
		{"negative balance", "martina", "1", -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGiftCard(tc.owner, tc.cardNumber, tc.balance)
			require.Error(t, err)
			assert.True(t, IsCode(err, CodeInvalidArgument))
		})
	}
}

func TestGiftCard_AddBalance(t *testing.T) {
	card, err := NewGiftCard("martina", "1", 100)
	require.NoError(t, err)

	require.NoError(t, card.AddBalance(50))
	assert.Equal(t, 150, card.Balance)
}

func TestGiftCard_AddBalance_RejectsNonPositive(t *testing.T) {
	card, err := NewGiftCard("martina", "1", 100)
	require.NoError(t, err)

	assert.True(t, IsCode(card.AddBalance(0), CodeInvalidArgument))
	assert.True(t, IsCode(card.AddBalance(-10), CodeInvalidArgument))
	assert.Equal(t, 100, card.Balance)
}

func TestGiftCard_Charge(t *testing.T) {
	card, err := NewGiftCard("martina", "1", 1000)
	require.NoError(t, err)

	require.NoError(t, card.Charge(300, "coffee"))
	assert.Equal(t, 700, card.Balance)
}

func TestGiftCard_Charge_ExactBalance(t *testing.T) {
	card, err := NewGiftCard("martina", "1", 300)
	require.NoError(t, err)

	require.NoError(t, card.Charge(300, "coffee"))
	assert.Equal(t, 0, card.Balance)
}

func TestGiftCard_Charge_InsufficientFunds(t *testing.T) {
	card, err := NewGiftCard("martina", "1", 100)
	require.NoError(t, err)

	err = card.Charge(101, "coffee")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInsufficientFunds))

	// Balance untouched by the rejected charge.
	assert.Equal(t, 100, card.Balance)
}

func TestGiftCard_Charge_InvalidArguments(t *testing.T) {
	card, err := NewGiftCard("martina", "1", 100)
	require.NoError(t, err)

	assert.True(t, IsCode(card.Charge(0, "coffee"), CodeInvalidArgument))
	assert.True(t, IsCode(card.Charge(-5, "coffee"), CodeInvalidArgument))
	assert.True(t, IsCode(card.Charge(10, ""), CodeInvalidArgument))
	assert.True(t, IsCode(card.Charge(10, "   "), CodeInvalidArgument))
	assert.Equal(t, 100, card.Balance)
}
