package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	err := NewConflictError(CodeAlreadyRegistered, "duplicate username")
	assert.Equal(t, "ALREADY_REGISTERED: duplicate username", err.Error())

	cause := errors.New("boom")
	wrapped := NewInternalError("SECRET_ENCODE_FAILED", "hash failed", cause)
	assert.Contains(t, wrapped.Error(), "boom")
	assert.Equal(t, cause, errors.Unwrap(wrapped))
}

func TestIsCode(t *testing.T) {
	err := NewAuthenticationError(CodeExpiredToken, "expired")

	assert.True(t, IsCode(err, CodeExpiredToken))
	assert.False(t, IsCode(err, CodeUnknownToken))
	assert.False(t, IsCode(errors.New("plain"), CodeExpiredToken))
	assert.False(t, IsCode(nil, CodeExpiredToken))

	// Codes survive fmt wrapping.
	assert.True(t, IsCode(fmt.Errorf("seed user: %w", err), CodeExpiredToken))
}
