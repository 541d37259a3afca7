package domain

import (
	"strings"
	"time"
)

// Session represents a time-bounded login session identified by an
// opaque token. Sessions are immutable after issuance; expiry is
// derived from the clock on access, never stored as a state change.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession creates a session issued at now with the given time-to-live.
// The token is expected to come from a collision-resistant generator;
// uniqueness is assumed, not verified.
func NewSession(token, username string, now time.Time, ttl time.Duration) (*Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, NewValidationError(CodeInvalidArgument, "Session token is required", map[string]interface{}{
			"field": "token",
		})
	}
	if strings.TrimSpace(username) == "" {
		return nil, NewValidationError(CodeInvalidArgument, "Username is required", map[string]interface{}{
			"field": "username",
		})
	}
	if ttl <= 0 {
		return nil, NewValidationError(CodeInvalidArgument, "Session TTL must be positive", map[string]interface{}{
			"field": "ttl",
			"value": ttl.String(),
		})
	}
	return &Session{
		Token:     token,
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// Active reports whether the session is still live at the given instant.
// A session is active up to and including its expiry instant.
func (s *Session) Active(now time.Time) bool {
	return !now.After(s.ExpiresAt)
}

// TTL returns the duration the session was issued for.
func (s *Session) TTL() time.Duration {
	return s.ExpiresAt.Sub(s.IssuedAt)
}
