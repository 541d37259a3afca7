package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chargeTime = time.Date(2025, 9, 15, 20, 0, 0, 0, time.UTC)

func TestNewCharge_Valid(t *testing.T) {
	charge, err := NewCharge("1", "cafe", 300, "coffee", chargeTime)
	require.NoError(t, err)

	assert.Equal(t, "1", charge.CardNumber)
	assert.Equal(t, "cafe", charge.MerchantID)
	assert.Equal(t, 300, charge.Amount)
	assert.Equal(t, "coffee", charge.Description)
	assert.Equal(t, chargeTime, charge.Timestamp)
}

func TestNewCharge_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		cardNumber  string
		merchantID  string
		amount      int
		description string
		timestamp   time.Time
	}{
		{"blank card number", "", "cafe", 300, "coffee", chargeTime},
		{"blank merchant", "1", "", 300, "coffee", chargeTime},
		{"zero amount", "1", "cafe", 0, "coffee", chargeTime},
		{"negative amount", "1", "cafe", -300, "coffee", chargeTime},
		{"blank description", "1", "cafe", 300, "", chargeTime},
		{"zero timestamp", "1", "cafe", 300, "coffee", time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCharge(tc.cardNumber, tc.merchantID, tc.amount, tc.description, tc.timestamp)
			require.Error(t, err)
			assert.True(t, IsCode(err, CodeInvalidArgument))
		})
	}
}

func TestCharge_EqualityIsByFullTuple(t *testing.T) {
	a, err := NewCharge("1", "cafe", 300, "coffee", chargeTime)
	require.NoError(t, err)
	b, err := NewCharge("1", "cafe", 300, "coffee", chargeTime)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	// Same fields at a different instant are a different charge.
	c, err := NewCharge("1", "cafe", 300, "coffee", chargeTime.Add(time.Second))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
