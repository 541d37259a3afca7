package services

import (
	"context"
	"sync"

	"github.com/mgrunewald/giftvault/internal/clock"
	"github.com/mgrunewald/giftvault/internal/domain"
	"github.com/mgrunewald/giftvault/internal/repository"
)

// Facade is the single entry point of the ledger core. It sequences
// validations and mutations across the credential store, session
// manager, gift-card ledger, claim table, merchant registry and charge
// log while preserving their invariants.
//
// Checks are always ordered authentication first, then claim/ownership,
// then domain amounts: callers receive the outermost failure even when
// several preconditions are violated at once.
type Facade interface {
	// Register creates a user account. Fails with ALREADY_REGISTERED
	// on a duplicate username, leaving the store unchanged.
	Register(ctx context.Context, username, secret string) error

	// Exists reports whether a username is registered.
	Exists(ctx context.Context, username string) (bool, error)

	// Login verifies credentials and issues a session, returning its
	// token. Fails with UNKNOWN_USER or WRONG_SECRET.
	Login(ctx context.Context, username, secret string) (string, error)

	// IsSessionActive reports whether the token belongs to a live
	// session. Unknown and expired tokens are both false.
	IsSessionActive(ctx context.Context, token string) bool

	// PreloadGiftCard seeds a card into the ledger. Administrative:
	// outside session scope. Fails with ALREADY_REGISTERED on a
	// duplicate card number.
	PreloadGiftCard(ctx context.Context, card *domain.GiftCard) error

	// TopUp adds a positive amount to a card's balance.
	// Administrative: outside session scope.
	TopUp(ctx context.Context, cardNumber string, amount int) error

	// Claim records that the session asserts the right to operate on a
	// card it owns.
	Claim(ctx context.Context, token, cardNumber string) error

	// MyCards returns the card numbers claimed under the session.
	MyCards(ctx context.Context, token string) ([]string, error)

	// Balance returns the current balance of a card claimed by the
	// session.
	Balance(ctx context.Context, token, cardNumber string) (int, error)

	// Statement returns the charges against a card claimed by the
	// session, oldest first.
	Statement(ctx context.Context, token, cardNumber string) ([]domain.Charge, error)

	// RegisterMerchant adds a charging party to the registry. Fails
	// with ALREADY_REGISTERED on a duplicate id.
	RegisterMerchant(ctx context.Context, id, credential string) error

	// Charge debits a card on behalf of a merchant. The operation is
	// merchant-initiated and carries no user session; it requires only
	// that some session has claimed the card. Fails with
	// UNKNOWN_MERCHANT, INVALID_CREDENTIAL, NOT_CLAIMED,
	// INVALID_ARGUMENT or INSUFFICIENT_FUNDS.
	Charge(ctx context.Context, merchantID, merchantCredential, cardNumber string, amount int, description string) (domain.Charge, error)
}

// facade implements Facade. All operations are short, CPU-only and
// serialized under a single mutex.
type facade struct {
	mu sync.Mutex

	users     repository.UserRepository
	verifier  SecretVerifier
	sessions  SessionService
	cards     repository.GiftCardRepository
	claims    ClaimService
	claimRepo repository.ClaimRepository
	merchants repository.MerchantRepository
	charges   ChargeService
	clk       clock.Clock
}

// FacadeDeps bundles the collaborators of the facade.
type FacadeDeps struct {
	Users     repository.UserRepository
	Verifier  SecretVerifier
	Sessions  SessionService
	Cards     repository.GiftCardRepository
	Claims    ClaimService
	ClaimRepo repository.ClaimRepository
	Merchants repository.MerchantRepository
	Charges   ChargeService
	Clock     clock.Clock
}

// NewFacade creates the ledger facade.
func NewFacade(deps FacadeDeps) Facade {
	return &facade{
		users:     deps.Users,
		verifier:  deps.Verifier,
		sessions:  deps.Sessions,
		cards:     deps.Cards,
		claims:    deps.Claims,
		claimRepo: deps.ClaimRepo,
		merchants: deps.Merchants,
		charges:   deps.Charges,
		clk:       deps.Clock,
	}
}

// Register creates a user account with the verifier's encoded secret.
func (f *facade) Register(ctx context.Context, username, secret string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, err := domain.NewUser(username, secret, f.clk.Now())
	if err != nil {
		return err
	}

	encoded, err := f.verifier.Encode(secret)
	if err != nil {
		return err
	}
	user.Secret = encoded

	return f.users.Create(ctx, user)
}

// Exists reports whether a username is registered.
func (f *facade) Exists(ctx context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.users.Exists(ctx, username)
}

// Login verifies credentials, then issues a session.
func (f *facade) Login(ctx context.Context, username, secret string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, err := f.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if err := f.verifier.Verify(user.Secret, secret); err != nil {
		return "", err
	}

	session, err := f.sessions.Issue(ctx, username)
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

// IsSessionActive reports session liveness.
func (f *facade) IsSessionActive(ctx context.Context, token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.sessions.IsActive(ctx, token)
}

// PreloadGiftCard seeds a card into the ledger.
func (f *facade) PreloadGiftCard(ctx context.Context, card *domain.GiftCard) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if card == nil {
		return domain.NewValidationError(domain.CodeInvalidArgument, "Gift card is required", nil)
	}

	// Re-run constructor validation: callers may hand in a literal.
	validated, err := domain.NewGiftCard(card.Owner, card.CardNumber, card.Balance)
	if err != nil {
		return err
	}

	return f.cards.Create(ctx, validated)
}

// TopUp adds funds to an existing card.
func (f *facade) TopUp(ctx context.Context, cardNumber string, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	card, err := f.cards.GetByNumber(ctx, cardNumber)
	if err != nil {
		return err
	}

	if err := card.AddBalance(amount); err != nil {
		return err
	}

	return f.cards.Update(ctx, card)
}

// Claim records a claim for the session.
func (f *facade) Claim(ctx context.Context, token, cardNumber string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.claims.Claim(ctx, token, cardNumber)
}

// MyCards lists the session's claimed card numbers.
func (f *facade) MyCards(ctx context.Context, token string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.sessions.RequireActive(ctx, token); err != nil {
		return nil, err
	}
	return f.claims.ListClaims(ctx, token)
}

// Balance returns the balance of a claimed card.
func (f *facade) Balance(ctx context.Context, token, cardNumber string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	card, err := f.claims.RequireClaimed(ctx, token, cardNumber)
	if err != nil {
		return 0, err
	}
	return card.Balance, nil
}

// Statement returns the charge log of a claimed card.
func (f *facade) Statement(ctx context.Context, token, cardNumber string) ([]domain.Charge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.claims.RequireClaimed(ctx, token, cardNumber); err != nil {
		return nil, err
	}
	return f.charges.ListFor(ctx, cardNumber)
}

// RegisterMerchant adds a merchant to the registry.
func (f *facade) RegisterMerchant(ctx context.Context, id, credential string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	merchant, err := domain.NewMerchant(id, credential)
	if err != nil {
		return err
	}
	return f.merchants.Create(ctx, merchant)
}

// Charge debits a card on behalf of an authorized merchant. Merchant
// authorization is checked before the claim gate, which is checked
// before amount and funds.
func (f *facade) Charge(
	ctx context.Context,
	merchantID, merchantCredential, cardNumber string,
	amount int,
	description string,
) (domain.Charge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	merchant, err := f.merchants.GetByID(ctx, merchantID)
	if err != nil {
		return domain.Charge{}, err
	}
	if err := merchant.CheckCredential(merchantCredential); err != nil {
		return domain.Charge{}, err
	}

	claimed, err := f.claimRepo.ExistsForCard(ctx, cardNumber)
	if err != nil {
		return domain.Charge{}, err
	}
	if !claimed {
		return domain.Charge{}, domain.NewAuthorizationError(domain.CodeNotClaimed, "Gift card was never claimed by a session")
	}

	card, err := f.cards.GetByNumber(ctx, cardNumber)
	if err != nil {
		return domain.Charge{}, err
	}

	return f.charges.Record(ctx, card, merchant, amount, description)
}
