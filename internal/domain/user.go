// Package domain provides the core business entities of the gift-card ledger.
package domain

import (
	"strings"
	"time"
)

// User represents an account holder in the ledger. Users are immutable
// once registered and are never deleted.
type User struct {
	Username  string    `json:"username"`
	Secret    string    `json:"-"` // Never serialize the secret
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a user, rejecting blank usernames and secrets.
func NewUser(username, secret string, now time.Time) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, NewValidationError(CodeInvalidArgument, "Username is required", map[string]interface{}{
			"field": "username",
		})
	}
	if strings.TrimSpace(secret) == "" {
		return nil, NewValidationError(CodeInvalidArgument, "Secret is required", map[string]interface{}{
			"field": "secret",
		})
	}
	return &User{
		Username:  username,
		Secret:    secret,
		CreatedAt: now,
	}, nil
}
