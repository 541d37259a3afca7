//go:build integration
// +build integration

// Package integration provides end-to-end testing infrastructure that
// drives the full stack: seed loading, the ledger facade and the HTTP
// surface over one shared in-memory state.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mgrunewald/giftvault/internal/api"
	"github.com/mgrunewald/giftvault/internal/seed"
	"github.com/mgrunewald/giftvault/internal/testutil"
)

// LedgerTestSuite wires the complete application for end-to-end tests.
type LedgerTestSuite struct {
	*testutil.LedgerFixture
	Router  *gin.Engine
	Factory *TestDataFactory
	ctx     context.Context
}

// NewLedgerTestSuite builds a suite over a fresh in-memory ledger.
func NewLedgerTestSuite(t *testing.T) *LedgerTestSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fixture := testutil.NewLedgerFixture()
	router := api.NewRouter(api.RouterConfig{
		Facade: fixture.Facade,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	s := &LedgerTestSuite{
		LedgerFixture: fixture,
		Router:        router,
		ctx:           context.Background(),
	}
	s.Factory = &TestDataFactory{suite: s}
	return s
}

// Context returns the suite's base context.
func (s *LedgerTestSuite) Context() context.Context {
	return s.ctx
}

// ApplySeed parses seed YAML and applies it through the facade.
func (s *LedgerTestSuite) ApplySeed(t *testing.T, seedYAML string) {
	t.Helper()
	parsed, err := seed.Parse([]byte(seedYAML))
	require.NoError(t, err)
	require.NoError(t, parsed.Apply(s.ctx, s.Facade))
}

// HTTPResponse is a decoded API response.
type HTTPResponse struct {
	Code    int
	Success bool
	Data    json.RawMessage
	Error   *APIError
}

// APIError is the error half of the response envelope.
type APIError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Request performs an HTTP request against the suite's router and
// decodes the response envelope.
func (s *LedgerTestSuite) Request(t *testing.T, method, path, token string, body interface{}) HTTPResponse {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *APIError       `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope),
		"undecodable response for %s %s: %s", method, path, rec.Body.String())

	return HTTPResponse{
		Code:    rec.Code,
		Success: envelope.Success,
		Data:    envelope.Data,
		Error:   envelope.Error,
	}
}

// RequireData decodes the data half of a response into out, failing the
// test if the response was an error.
func (s *LedgerTestSuite) RequireData(t *testing.T, resp HTTPResponse, out interface{}) {
	t.Helper()
	require.True(t, resp.Success, "expected a success response, got %+v", resp.Error)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

// RequireErrorCode asserts that the response carries the given error code.
func (s *LedgerTestSuite) RequireErrorCode(t *testing.T, resp HTTPResponse, status int, code string) {
	t.Helper()
	require.Equal(t, status, resp.Code)
	require.NotNil(t, resp.Error, "expected an error response")
	require.Equal(t, code, resp.Error.Code)
}

// TestDataFactory creates consistent test data through the HTTP API so
// that end-to-end tests exercise the same paths production traffic does.
type TestDataFactory struct {
	suite   *LedgerTestSuite
	counter int
}

// CreateUser registers a user over HTTP and returns the username and
// secret.
func (f *TestDataFactory) CreateUser(t *testing.T) (username, secret string) {
	t.Helper()
	f.counter++
	username = fmt.Sprintf("user-%d", f.counter)
	secret = fmt.Sprintf("secret-%d-0123456789", f.counter)

	resp := f.suite.Request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"secret":   secret,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	return username, secret
}

// CreateCard preloads a card over HTTP for the given owner.
func (f *TestDataFactory) CreateCard(t *testing.T, owner string, balance int) (cardNumber string) {
	t.Helper()
	f.counter++
	cardNumber = fmt.Sprintf("%d", 1000+f.counter)

	resp := f.suite.Request(t, http.MethodPost, "/api/v1/admin/cards", "", map[string]interface{}{
		"owner":       owner,
		"card_number": cardNumber,
		"balance":     balance,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	return cardNumber
}

// CreateMerchant registers a merchant over HTTP.
func (f *TestDataFactory) CreateMerchant(t *testing.T) (id, credential string) {
	t.Helper()
	f.counter++
	id = fmt.Sprintf("merchant-%d", f.counter)
	credential = fmt.Sprintf("credential-%d", f.counter)

	resp := f.suite.Request(t, http.MethodPost, "/api/v1/merchants", "", map[string]string{
		"id":         id,
		"credential": credential,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	return id, credential
}

// LoginUser logs in over HTTP and returns the session token.
func (f *TestDataFactory) LoginUser(t *testing.T, username, secret string) string {
	t.Helper()
	resp := f.suite.Request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"secret":   secret,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var data struct {
		Token string `json:"token"`
	}
	f.suite.RequireData(t, resp, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}
