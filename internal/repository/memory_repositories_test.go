package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrunewald/giftvault/internal/domain"
)

var testTime = time.Date(2025, 9, 15, 20, 0, 0, 0, time.UTC)

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user, err := domain.NewUser("martina", "pw12345678", testTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	exists, err := repo.Exists(ctx, "martina")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "maxi")
	require.NoError(t, err)
	assert.False(t, exists)

	got, err := repo.GetByUsername(ctx, "martina")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = repo.GetByUsername(ctx, "maxi")
	assert.True(t, domain.IsCode(err, domain.CodeUnknownUser))

	// A second registration with the same username fails without
	// mutating the store.
	other, err := domain.NewUser("martina", "different", testTime)
	require.NoError(t, err)
	err = repo.Create(ctx, other)
	assert.True(t, domain.IsCode(err, domain.CodeAlreadyRegistered))

	got, err = repo.GetByUsername(ctx, "martina")
	require.NoError(t, err)
	assert.Equal(t, "pw12345678", got.Secret)
}

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()

	session, err := domain.NewSession("tok-1", "martina", testTime, 5*time.Minute)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.GetByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	_, err = repo.GetByToken(ctx, "unknown")
	assert.True(t, domain.IsCode(err, domain.CodeUnknownToken))
}

func TestMemoryGiftCardRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGiftCardRepository()

	card, err := domain.NewGiftCard("martina", "1", 1000)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, card))

	// Duplicate card number fails, the first card's owner survives.
	dup, err := domain.NewGiftCard("maxi", "1", 500)
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	assert.True(t, domain.IsCode(err, domain.CodeAlreadyRegistered))

	got, err := repo.GetByNumber(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "martina", got.Owner)
	assert.Equal(t, 1000, got.Balance)

	_, err = repo.GetByNumber(ctx, "404")
	assert.True(t, domain.IsCode(err, domain.CodeUnknownCard))

	got.Balance = 700
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByNumber(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 700, updated.Balance)

	ghost, err := domain.NewGiftCard("maxi", "404", 100)
	require.NoError(t, err)
	err = repo.Update(ctx, ghost)
	assert.True(t, domain.IsCode(err, domain.CodeUnknownCard))
}

func TestMemoryClaimRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClaimRepository()

	require.NoError(t, repo.Create(ctx, &domain.Claim{Token: "tok-1", CardNumber: "1", ClaimedAt: testTime}))
	require.NoError(t, repo.Create(ctx, &domain.Claim{Token: "tok-1", CardNumber: "2", ClaimedAt: testTime}))

	// Duplicate (token, card) pair fails and leaves the set unchanged.
	err := repo.Create(ctx, &domain.Claim{Token: "tok-1", CardNumber: "1", ClaimedAt: testTime})
	assert.True(t, domain.IsCode(err, domain.CodeAlreadyClaimed))

	cards, err := repo.ListByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, cards)

	claimed, err := repo.Exists(ctx, "tok-1", "1")
	require.NoError(t, err)
	assert.True(t, claimed)

	// Claims are per-session: another token for the same user starts
	// empty and may claim the same card.
	claimed, err = repo.Exists(ctx, "tok-2", "1")
	require.NoError(t, err)
	assert.False(t, claimed)

	require.NoError(t, repo.Create(ctx, &domain.Claim{Token: "tok-2", CardNumber: "1", ClaimedAt: testTime}))

	anyClaim, err := repo.ExistsForCard(ctx, "1")
	require.NoError(t, err)
	assert.True(t, anyClaim)

	anyClaim, err = repo.ExistsForCard(ctx, "404")
	require.NoError(t, err)
	assert.False(t, anyClaim)

	empty, err := repo.ListByToken(ctx, "tok-404")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryChargeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryChargeRepository()

	first, err := domain.NewCharge("1", "cafe", 300, "coffee", testTime)
	require.NoError(t, err)
	second, err := domain.NewCharge("1", "cafe", 200, "croissant", testTime.Add(time.Minute))
	require.NoError(t, err)

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	charges, err := repo.ListByCard(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Charge{first, second}, charges)

	none, err := repo.ListByCard(ctx, "404")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryMerchantRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMerchantRepository()

	merchant, err := domain.NewMerchant("cafe", "s3cret")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, merchant))

	err = repo.Create(ctx, merchant)
	assert.True(t, domain.IsCode(err, domain.CodeAlreadyRegistered))

	got, err := repo.GetByID(ctx, "cafe")
	require.NoError(t, err)
	assert.Equal(t, merchant, got)

	_, err = repo.GetByID(ctx, "ghost")
	assert.True(t, domain.IsCode(err, domain.CodeUnknownMerchant))
}
