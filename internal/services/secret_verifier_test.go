package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrunewald/giftvault/internal/domain"
	"github.com/mgrunewald/giftvault/internal/services"
	"github.com/mgrunewald/giftvault/internal/testutil"
)

func TestPlainVerifier(t *testing.T) {
	v := services.NewPlainVerifier()

	encoded, err := v.Encode("pw12345678")
	require.NoError(t, err)
	assert.Equal(t, "pw12345678", encoded)

	require.NoError(t, v.Verify(encoded, "pw12345678"))
	testutil.RequireErrorCode(t, v.Verify(encoded, "wrong"), domain.CodeWrongSecret)
}

func TestBcryptVerifier(t *testing.T) {
	v := services.NewBcryptVerifier()

	encoded, err := v.Encode("pw12345678")
	require.NoError(t, err)
	assert.NotEqual(t, "pw12345678", encoded)

	require.NoError(t, v.Verify(encoded, "pw12345678"))
	testutil.RequireErrorCode(t, v.Verify(encoded, "wrong"), domain.CodeWrongSecret)
	testutil.RequireErrorCode(t, v.Verify("not-a-hash", "pw12345678"), domain.CodeWrongSecret)
}

func TestBcryptVerifier_EncodingsDiffer(t *testing.T) {
	v := services.NewBcryptVerifier()

	first, err := v.Encode("pw12345678")
	require.NoError(t, err)
	second, err := v.Encode("pw12345678")
	require.NoError(t, err)

	// Salted hashes never repeat, yet both verify.
	assert.NotEqual(t, first, second)
	require.NoError(t, v.Verify(first, "pw12345678"))
	require.NoError(t, v.Verify(second, "pw12345678"))
}
