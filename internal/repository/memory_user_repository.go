package repository

import (
	"context"
	"sync"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// memoryUserRepository provides an in-memory implementation of UserRepository.
type memoryUserRepository struct {
	users map[string]*domain.User
	mutex sync.RWMutex
}

// NewMemoryUserRepository creates a new in-memory user repository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]*domain.User),
	}
}

// Create stores a new user keyed by username.
func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return domain.NewConflictError(domain.CodeAlreadyRegistered, "A user with this username already exists")
	}

	r.users[user.Username] = user
	return nil
}

// GetByUsername retrieves a user by username.
func (r *memoryUserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return nil, domain.NewNotFoundError(domain.CodeUnknownUser, "User not found")
	}
	return user, nil
}

// Exists reports whether a username is registered.
func (r *memoryUserRepository) Exists(_ context.Context, username string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.users[username]
	return exists, nil
}
