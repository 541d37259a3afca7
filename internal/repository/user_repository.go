// Package repository provides the store abstractions behind the ledger
// core and their in-memory implementations. Every store is reached only
// through these interfaces so the orchestration layer can be tested
// against memory stores and swapped onto a persistent backend without
// touching its logic.
package repository

import (
	"context"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// UserRepository is the credential store: username to secret pairs.
type UserRepository interface {
	// Create stores a new user. Fails with ALREADY_REGISTERED if the
	// username is taken; the store is left unchanged in that case.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user. Fails with UNKNOWN_USER if absent.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Exists reports whether a username is registered.
	Exists(ctx context.Context, username string) (bool, error)
}
