// Package testutil provides testing utilities shared across packages.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mgrunewald/giftvault/internal/clock"
	"github.com/mgrunewald/giftvault/internal/domain"
	"github.com/mgrunewald/giftvault/internal/repository"
	"github.com/mgrunewald/giftvault/internal/services"
)

// Epoch is the fixed instant manual clocks start at in tests.
var Epoch = time.Date(2025, 9, 15, 20, 0, 0, 0, time.UTC)

// DefaultTTL is the session TTL used by fixtures.
const DefaultTTL = 5 * time.Minute

// LedgerFixture wires a complete in-memory ledger around a manual
// clock and a plain secret verifier.
type LedgerFixture struct {
	Facade   services.Facade
	Clock    *clock.Manual
	Sessions services.SessionService
	Claims   services.ClaimService
	Charges  services.ChargeService

	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	CardRepo     repository.GiftCardRepository
	ClaimRepo    repository.ClaimRepository
	MerchantRepo repository.MerchantRepository
	ChargeRepo   repository.ChargeRepository
}

// NewLedgerFixture builds a fixture with the default TTL.
func NewLedgerFixture() *LedgerFixture {
	return NewLedgerFixtureTTL(DefaultTTL)
}

// NewLedgerFixtureTTL builds a fixture with a custom session TTL.
func NewLedgerFixtureTTL(ttl time.Duration) *LedgerFixture {
	clk := clock.NewManual(Epoch)

	users := repository.NewMemoryUserRepository()
	sessions := repository.NewMemorySessionRepository()
	cards := repository.NewMemoryGiftCardRepository()
	claims := repository.NewMemoryClaimRepository()
	merchants := repository.NewMemoryMerchantRepository()
	charges := repository.NewMemoryChargeRepository()

	sessionService := services.NewSessionService(sessions, clk, ttl, nil)
	claimService := services.NewClaimService(sessionService, cards, claims, clk)
	chargeService := services.NewChargeService(cards, charges, clk)

	facade := services.NewFacade(services.FacadeDeps{
		Users:     users,
		Verifier:  services.NewPlainVerifier(),
		Sessions:  sessionService,
		Cards:     cards,
		Claims:    claimService,
		ClaimRepo: claims,
		Merchants: merchants,
		Charges:   chargeService,
		Clock:     clk,
	})

	return &LedgerFixture{
		Facade:       facade,
		Clock:        clk,
		Sessions:     sessionService,
		Claims:       claimService,
		Charges:      chargeService,
		UserRepo:     users,
		SessionRepo:  sessions,
		CardRepo:     cards,
		ClaimRepo:    claims,
		MerchantRepo: merchants,
		ChargeRepo:   charges,
	}
}

// RegisterUser registers a user, failing the test on error.
func (f *LedgerFixture) RegisterUser(t *testing.T, username, secret string) {
	t.Helper()
	require.NoError(t, f.Facade.Register(context.Background(), username, secret))
}

// PreloadCard seeds a card, failing the test on error.
func (f *LedgerFixture) PreloadCard(t *testing.T, owner, cardNumber string, balance int) {
	t.Helper()
	card, err := domain.NewGiftCard(owner, cardNumber, balance)
	require.NoError(t, err)
	require.NoError(t, f.Facade.PreloadGiftCard(context.Background(), card))
}

// Login logs a user in and returns the session token, failing the test
// on error.
func (f *LedgerFixture) Login(t *testing.T, username, secret string) string {
	t.Helper()
	token, err := f.Facade.Login(context.Background(), username, secret)
	require.NoError(t, err)
	return token
}

// RegisterMerchant adds a merchant, failing the test on error.
func (f *LedgerFixture) RegisterMerchant(t *testing.T, id, credential string) {
	t.Helper()
	require.NoError(t, f.Facade.RegisterMerchant(context.Background(), id, credential))
}

// RequireErrorCode asserts that err is a domain error with the given code.
func RequireErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, domain.IsCode(err, code), "expected error code %s, got %v", code, err)
}
