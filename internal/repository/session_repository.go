package repository

import (
	"context"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// SessionRepository tracks issued sessions keyed by token. Expired
// sessions are not proactively purged; expiry is detected on access.
type SessionRepository interface {
	// Create stores a freshly issued session.
	Create(ctx context.Context, session *domain.Session) error

	// GetByToken retrieves a session. Fails with UNKNOWN_TOKEN if no
	// session was ever issued for the token.
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
}
