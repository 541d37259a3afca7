// Package services implements the orchestration layer of the gift-card
// ledger: session issuance, card claiming, charge recording and the
// facade that composes them over the stores.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mgrunewald/giftvault/internal/clock"
	"github.com/mgrunewald/giftvault/internal/domain"
	"github.com/mgrunewald/giftvault/internal/repository"
)

// TokenGenerator produces opaque session tokens. Any collision-resistant
// generator satisfies the contract; uniqueness is assumed, not verified.
type TokenGenerator func() string

// UUIDTokenGenerator returns random UUID strings.
func UUIDTokenGenerator() string {
	return uuid.New().String()
}

// SessionService issues and gates sessions. Every authenticated
// operation funnels through RequireActive.
type SessionService interface {
	// Issue creates a session for the username with the service's TTL.
	Issue(ctx context.Context, username string) (*domain.Session, error)

	// IsActive reports whether a session exists for the token and has
	// not expired. Unknown and expired tokens are both false, never an
	// error.
	IsActive(ctx context.Context, token string) bool

	// RequireActive returns the session for the token. Fails with
	// UNKNOWN_TOKEN if no session matches and EXPIRED_TOKEN if the
	// session is past its TTL.
	RequireActive(ctx context.Context, token string) (*domain.Session, error)
}

// sessionService implements SessionService.
type sessionService struct {
	sessions repository.SessionRepository
	clk            clock.Clock
	ttl            time.Duration
	generateToken  TokenGenerator
}

// NewSessionService creates a session service. The token generator may
// be nil, in which case UUID tokens are used.
func NewSessionService(
	sessions repository.SessionRepository,
	clk clock.Clock,
	ttl time.Duration,
	generateToken TokenGenerator,
) SessionService {
	if generateToken == nil {
		generateToken = UUIDTokenGenerator
	}
	return &sessionService{
		sessions: sessions,
		clk:            clk,
		ttl:            ttl,
		generateToken:  generateToken,
	}
}

// Issue creates and stores a new session.
func (s *sessionService) Issue(ctx context.Context, username string) (*domain.Session, error) {
	session, err := domain.NewSession(s.generateToken(), username, s.clk.Now(), s.ttl)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// IsActive reports session liveness without distinguishing unknown from
// expired.
func (s *sessionService) IsActive(ctx context.Context, token string) bool {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return false
	}
	return session.Active(s.clk.Now())
}

// RequireActive is the gate every session-scoped operation goes through.
func (s *sessionService) RequireActive(ctx context.Context, token string) (*domain.Session, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !session.Active(s.clk.Now()) {
		return nil, domain.NewAuthenticationError(domain.CodeExpiredToken, "Session token has expired")
	}
	return session, nil
}
