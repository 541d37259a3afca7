//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrunewald/giftvault/internal/testutil"
)

func TestEndToEnd_PurchaseFlow(t *testing.T) {
	s := NewLedgerTestSuite(t)

	username, secret := s.Factory.CreateUser(t)
	cardNumber := s.Factory.CreateCard(t, username, 1000)
	merchantID, credential := s.Factory.CreateMerchant(t)
	token := s.Factory.LoginUser(t, username, secret)

	resp := s.Request(t, http.MethodPost, "/api/v1/cards/"+cardNumber+"/claim", token, nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = s.Request(t, http.MethodPost, "/api/v1/merchants/charge", "", map[string]interface{}{
		"merchant_id": merchantID,
		"credential":  credential,
		"card_number": cardNumber,
		"amount":      300,
		"description": "coffee",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var balance struct {
		Balance int `json:"balance"`
	}
	resp = s.Request(t, http.MethodGet, "/api/v1/cards/"+cardNumber+"/balance", token, nil)
	s.RequireData(t, resp, &balance)
	assert.Equal(t, 700, balance.Balance)

	var statement struct {
		Charges []struct {
			Amount      int    `json:"amount"`
			Description string `json:"description"`
		} `json:"charges"`
	}
	resp = s.Request(t, http.MethodGet, "/api/v1/cards/"+cardNumber+"/statement", token, nil)
	s.RequireData(t, resp, &statement)
	require.Len(t, statement.Charges, 1)
	assert.Equal(t, 300, statement.Charges[0].Amount)
	assert.Equal(t, "coffee", statement.Charges[0].Description)
}

func TestEndToEnd_SeededState(t *testing.T) {
	s := NewLedgerTestSuite(t)
	s.ApplySeed(t, `
users:
  - username: martina
    secret: pw12345678
gift_cards:
  - owner: martina
    card_number: "1"
    balance: 500
merchants:
  - id: coffee-corner
    credential: merch-secret
`)

	token := s.Factory.LoginUser(t, "martina", "pw12345678")
	resp := s.Request(t, http.MethodPost, "/api/v1/cards/1/claim", token, nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = s.Request(t, http.MethodPost, "/api/v1/merchants/charge", "", map[string]interface{}{
		"merchant_id": "coffee-corner",
		"credential":  "merch-secret",
		"card_number": "1",
		"amount":      200,
		"description": "lunch",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var balance struct {
		Balance int `json:"balance"`
	}
	resp = s.Request(t, http.MethodGet, "/api/v1/cards/1/balance", token, nil)
	s.RequireData(t, resp, &balance)
	assert.Equal(t, 300, balance.Balance)
}

func TestEndToEnd_SessionExpiry(t *testing.T) {
	s := NewLedgerTestSuite(t)

	username, secret := s.Factory.CreateUser(t)
	cardNumber := s.Factory.CreateCard(t, username, 1000)
	token := s.Factory.LoginUser(t, username, secret)

	resp := s.Request(t, http.MethodPost, "/api/v1/cards/"+cardNumber+"/claim", token, nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	s.Clock.Advance(testutil.DefaultTTL + time.Second)

	resp = s.Request(t, http.MethodGet, "/api/v1/cards/"+cardNumber+"/balance", token, nil)
	s.RequireErrorCode(t, resp, http.StatusUnauthorized, "EXPIRED_TOKEN")

	// A merchant can still charge: claims outlive their session.
	merchantID, credential := s.Factory.CreateMerchant(t)
	resp = s.Request(t, http.MethodPost, "/api/v1/merchants/charge", "", map[string]interface{}{
		"merchant_id": merchantID,
		"credential":  credential,
		"card_number": cardNumber,
		"amount":      100,
		"description": "coffee",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
}

func TestEndToEnd_IsolationBetweenUsers(t *testing.T) {
	s := NewLedgerTestSuite(t)

	owner, ownerSecret := s.Factory.CreateUser(t)
	intruder, intruderSecret := s.Factory.CreateUser(t)
	cardNumber := s.Factory.CreateCard(t, owner, 1000)

	intruderToken := s.Factory.LoginUser(t, intruder, intruderSecret)
	resp := s.Request(t, http.MethodPost, "/api/v1/cards/"+cardNumber+"/claim", intruderToken, nil)
	s.RequireErrorCode(t, resp, http.StatusForbidden, "OWNERSHIP_MISMATCH")

	ownerToken := s.Factory.LoginUser(t, owner, ownerSecret)
	resp = s.Request(t, http.MethodPost, "/api/v1/cards/"+cardNumber+"/claim", ownerToken, nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	// The intruder still cannot read the card.
	resp = s.Request(t, http.MethodGet, "/api/v1/cards/"+cardNumber+"/balance", intruderToken, nil)
	s.RequireErrorCode(t, resp, http.StatusForbidden, "NOT_CLAIMED")
}
