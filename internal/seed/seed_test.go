package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrunewald/giftvault/internal/seed"
	"github.com/mgrunewald/giftvault/internal/testutil"
)

const sampleSeed = `
users:
  - username: martina
    secret: pw12345678
  - username: bruno
    secret: pw-bruno-99
gift_cards:
  - owner: martina
    card_number: "1"
    balance: 1000
merchants:
  - id: coffee-corner
    credential: merch-secret
`

func TestParse(t *testing.T) {
	s, err := seed.Parse([]byte(sampleSeed))
	require.NoError(t, err)

	require.Len(t, s.Users, 2)
	assert.Equal(t, "martina", s.Users[0].Username)
	require.Len(t, s.GiftCards, 1)
	assert.Equal(t, "1", s.GiftCards[0].CardNumber)
	assert.Equal(t, 1000, s.GiftCards[0].Balance)
	require.Len(t, s.Merchants, 1)
	assert.Equal(t, "coffee-corner", s.Merchants[0].ID)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := seed.Parse([]byte("users: [whoops"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse seed file")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o600))

	s, err := seed.Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Users, 2)

	_, err = seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewLedgerFixture()

	s, err := seed.Parse([]byte(sampleSeed))
	require.NoError(t, err)
	require.NoError(t, s.Apply(ctx, f.Facade))

	// Seeded state is reachable through regular operations.
	token := f.Login(t, "martina", "pw12345678")
	require.NoError(t, f.Facade.Claim(ctx, token, "1"))

	charge, err := f.Facade.Charge(ctx, "coffee-corner", "merch-secret", "1", 300, "coffee")
	require.NoError(t, err)
	assert.Equal(t, 300, charge.Amount)
}

func TestApply_AbortsOnFirstFailure(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewLedgerFixture()
	f.RegisterUser(t, "martina", "already-there")

	s, err := seed.Parse([]byte(sampleSeed))
	require.NoError(t, err)

	err = s.Apply(ctx, f.Facade)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `seed user "martina"`)

	// Nothing after the failing entry was applied.
	exists, err := f.Facade.Exists(ctx, "bruno")
	require.NoError(t, err)
	assert.False(t, exists)
}
