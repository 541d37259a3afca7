package repository

import (
	"context"
	"sync"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// memorySessionRepository provides an in-memory implementation of SessionRepository.
type memorySessionRepository struct {
	sessions map[string]*domain.Session
	mutex    sync.RWMutex
}

// NewMemorySessionRepository creates a new in-memory session repository.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*domain.Session),
	}
}

// Create stores a session keyed by its token. Token uniqueness is
// assumed from the generator, not verified here.
func (r *memorySessionRepository) Create(_ context.Context, session *domain.Session) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.sessions[session.Token] = session
	return nil
}

// GetByToken retrieves a session by token.
func (r *memorySessionRepository) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	session, exists := r.sessions[token]
	if !exists {
		return nil, domain.NewAuthenticationError(domain.CodeUnknownToken, "Unknown session token")
	}
	return session, nil
}
