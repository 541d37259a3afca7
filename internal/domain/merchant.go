package domain

import (
	"strings"
)

// Merchant represents a registered charging party identified by its id
// and authorized by a private credential.
type Merchant struct {
	ID         string `json:"id"`
	Credential string `json:"-"` // Never serialize the credential
}

// NewMerchant creates a merchant, rejecting blank ids and credentials.
func NewMerchant(id, credential string) (*Merchant, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError(CodeInvalidArgument, "Merchant id is required", map[string]interface{}{
			"field": "id",
		})
	}
	if strings.TrimSpace(credential) == "" {
		return nil, NewValidationError(CodeInvalidArgument, "Merchant credential is required", map[string]interface{}{
			"field": "credential",
		})
	}
	return &Merchant{
		ID:         id,
		Credential: credential,
	}, nil
}

// CheckCredential verifies the supplied credential against the stored one.
func (m *Merchant) CheckCredential(credential string) error {
	if m.Credential != credential {
		return NewAuthenticationError(CodeInvalidCredential, "Merchant credential does not match")
	}
	return nil
}
