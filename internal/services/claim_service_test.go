package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrunewald/giftvault/internal/domain"
	"github.com/mgrunewald/giftvault/internal/testutil"
)

func TestClaimService_ClaimAndList(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewLedgerFixture()
	f.RegisterUser(t, "martina", "pw12345678")
	f.PreloadCard(t, "martina", "1", 1000)
	f.PreloadCard(t, "martina", "2", 500)
	token := f.Login(t, "martina", "pw12345678")

	require.NoError(t, f.Claims.Claim(ctx, token, "1"))
	require.NoError(t, f.Claims.Claim(ctx, token, "2"))

	cards, err := f.Claims.ListClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, cards)

	card, err := f.Claims.RequireClaimed(ctx, token, "1")
	require.NoError(t, err)
	assert.Equal(t, 1000, card.Balance)
}

func TestClaimService_ClaimTwiceFailsOnce(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewLedgerFixture()
	f.RegisterUser(t, "martina", "pw12345678")
	f.PreloadCard(t, "martina", "1", 1000)
	token := f.Login(t, "martina", "pw12345678")

	require.NoError(t, f.Claims.Claim(ctx, token, "1"))

	err := f.Claims.Claim(ctx, token, "1")
	testutil.RequireErrorCode(t, err, domain.CodeAlreadyClaimed)

	// The claim set is unchanged after the failed repeat.
	cards, err := f.Claims.ListClaims(ctx, token)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestClaimService_ClaimsArePerSessionNotPerUser(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewLedgerFixture()
	f.RegisterUser(t, "martina", "pw12345678")
	f.PreloadCard(t, "martina", "1", 1000)

	tokenA := f.Login(t, "martina", "pw12345678")
	tokenB := f.Login(t, "martina", "pw12345678")

	require.NoError(t, f.Claims.Claim(ctx, tokenA, "1"))

	// Session B does not inherit A's claims.
	cards, err := f.Claims.ListClaims(ctx, tokenB)
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = f.Claims.RequireClaimed(ctx, tokenB, "1")
	testutil.RequireErrorCode(t, err, domain.CodeNotClaimed)

	// But B may claim the same card for itself.
	require.NoError(t, f.Claims.Claim(ctx, tokenB, "1"))
}

func TestClaimService_OwnershipMismatch(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewLedgerFixture()
	f.RegisterUser(t, "martina", "pw12345678")
	f.RegisterUser(t, "maxi", "abcdefgh")
	f.PreloadCard(t, "maxi", "3", 200)
	token := f.Login(t, "martina", "pw12345678")

	err := f.Claims.Claim(ctx, token, "3")
	testutil.RequireErrorCode(t, err, domain.CodeOwnershipMismatch)
}

func TestClaimService_UnknownCard(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewLedgerFixture()
	f.RegisterUser(t, "martina", "pw12345678")
	token := f.Login(t, "martina", "pw12345678")

	err := f.Claims.Claim(ctx, token, "404")
	testutil.RequireErrorCode(t, err, domain.CodeUnknownCard)

	_, err = f.Claims.RequireClaimed(ctx, token, "404")
	testutil.RequireErrorCode(t, err, domain.CodeUnknownCard)
}

func TestClaimService_SessionGateComesFirst(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewLedgerFixture()
	f.RegisterUser(t, "martina", "pw12345678")
	f.PreloadCard(t, "martina", "1", 1000)
	token := f.Login(t, "martina", "pw12345678")
	require.NoError(t, f.Claims.Claim(ctx, token, "1"))

	f.Clock.Advance(testutil.DefaultTTL + time.Second)

	// Expired session wins over every later check, even for a card
	// that was claimed.
	_, err := f.Claims.RequireClaimed(ctx, token, "1")
	testutil.RequireErrorCode(t, err, domain.CodeExpiredToken)

	err = f.Claims.Claim(ctx, token, "404")
	testutil.RequireErrorCode(t, err, domain.CodeExpiredToken)
}
