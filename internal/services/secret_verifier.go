package services

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/mgrunewald/giftvault/internal/domain"
)

// SecretVerifier abstracts how user secrets are stored and checked.
// The credential store itself only ever sees the encoded form.
type SecretVerifier interface {
	// Encode transforms a raw secret into its stored form.
	Encode(secret string) (string, error)

	// Verify checks a supplied secret against the stored form. Fails
	// with WRONG_SECRET on mismatch.
	Verify(stored, supplied string) error
}

// plainVerifier stores secrets verbatim and compares by equality.
type plainVerifier struct{}

// NewPlainVerifier creates a verifier that compares raw secrets by
// equality. Intended for tests and seeded development environments.
func NewPlainVerifier() SecretVerifier {
	return plainVerifier{}
}

func (plainVerifier) Encode(secret string) (string, error) {
	return secret, nil
}

func (plainVerifier) Verify(stored, supplied string) error {
	if stored != supplied {
		return domain.NewAuthenticationError(domain.CodeWrongSecret, "Secret does not match")
	}
	return nil
}

// bcryptVerifier stores secrets as bcrypt hashes.
type bcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a verifier backed by bcrypt at the default
// cost.
func NewBcryptVerifier() SecretVerifier {
	return bcryptVerifier{cost: bcrypt.DefaultCost}
}

func (v bcryptVerifier) Encode(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	if err != nil {
		return "", domain.NewInternalError("SECRET_ENCODE_FAILED", "Failed to hash secret", err)
	}
	return string(hash), nil
}

func (v bcryptVerifier) Verify(stored, supplied string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)); err != nil {
		return domain.NewAuthenticationError(domain.CodeWrongSecret, "Secret does not match")
	}
	return nil
}
