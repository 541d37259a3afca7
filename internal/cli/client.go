package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// APIClient handles communication with the giftvault API.
type APIClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewAPIClient creates a new API client.
func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// apiEnvelope is the server's standard response wrapper.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

type apiError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// do performs a request and decodes the envelope's data into out, if
// out is non-nil.
func (c *APIClient) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response (%s): %w", resp.Status, err)
	}

	if !envelope.Success {
		if envelope.Error != nil {
			return envelope.Error
		}
		return fmt.Errorf("request failed with status %s", resp.Status)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// Register creates a user account.
func (c *APIClient) Register(username, secret string) error {
	return c.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": username,
		"secret":   secret,
	}, nil)
}

// Login authenticates and returns a session token.
func (c *APIClient) Login(username, secret string) (string, error) {
	var data struct {
		Token string `json:"token"`
	}
	err := c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": username,
		"secret":   secret,
	}, &data)
	return data.Token, err
}

// SessionActive reports whether the stored token is still live.
func (c *APIClient) SessionActive() (bool, error) {
	var data struct {
		Active bool `json:"active"`
	}
	err := c.do(http.MethodGet, "/api/v1/auth/session", nil, &data)
	return data.Active, err
}

// Claim claims a card into the current session.
func (c *APIClient) Claim(cardNumber string) error {
	return c.do(http.MethodPost, "/api/v1/cards/"+cardNumber+"/claim", nil, nil)
}

// MyCards lists the cards claimed in the current session.
func (c *APIClient) MyCards() ([]string, error) {
	var data struct {
		Cards []string `json:"cards"`
	}
	err := c.do(http.MethodGet, "/api/v1/cards", nil, &data)
	return data.Cards, err
}

// Balance fetches a claimed card's balance.
func (c *APIClient) Balance(cardNumber string) (int, error) {
	var data struct {
		Balance int `json:"balance"`
	}
	err := c.do(http.MethodGet, "/api/v1/cards/"+cardNumber+"/balance", nil, &data)
	return data.Balance, err
}

// Statement fetches a claimed card's charge log.
func (c *APIClient) Statement(cardNumber string) ([]domain.Charge, error) {
	var data struct {
		Charges []domain.Charge `json:"charges"`
	}
	err := c.do(http.MethodGet, "/api/v1/cards/"+cardNumber+"/statement", nil, &data)
	return data.Charges, err
}

// RegisterMerchant adds a merchant to the registry.
func (c *APIClient) RegisterMerchant(id, credential string) error {
	return c.do(http.MethodPost, "/api/v1/merchants", map[string]string{
		"id":         id,
		"credential": credential,
	}, nil)
}

// Charge debits a card on behalf of a merchant.
func (c *APIClient) Charge(merchantID, credential, cardNumber string, amount int, description string) (*domain.Charge, error) {
	var data struct {
		Charge domain.Charge `json:"charge"`
	}
	err := c.do(http.MethodPost, "/api/v1/merchants/charge", map[string]interface{}{
		"merchant_id": merchantID,
		"credential":  credential,
		"card_number": cardNumber,
		"amount":      amount,
		"description": description,
	}, &data)
	if err != nil {
		return nil, err
	}
	return &data.Charge, nil
}

// Preload seeds a card (administrative).
func (c *APIClient) Preload(owner, cardNumber string, balance int) error {
	return c.do(http.MethodPost, "/api/v1/admin/cards", map[string]interface{}{
		"owner":       owner,
		"card_number": cardNumber,
		"balance":     balance,
	}, nil)
}

// TopUp adds funds to a card (administrative).
func (c *APIClient) TopUp(cardNumber string, amount int) error {
	return c.do(http.MethodPost, "/api/v1/admin/cards/"+cardNumber+"/topup", map[string]interface{}{
		"amount": amount,
	}, nil)
}
