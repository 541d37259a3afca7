// Package seed implements the administrative loader that establishes
// initial state before normal operation: users, gift cards and
// merchants read from a YAML file and applied through the same facade
// operations regular callers use.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mgrunewald/giftvault/internal/domain"
	"github.com/mgrunewald/giftvault/internal/services"
)

// UserSeed is one credential-store entry.
type UserSeed struct {
	Username string `yaml:"username"`
	Secret   string `yaml:"secret"`
}

// GiftCardSeed is one gift-card ledger entry.
type GiftCardSeed struct {
	Owner      string `yaml:"owner"`
	CardNumber string `yaml:"card_number"`
	Balance    int    `yaml:"balance"`
}

// MerchantSeed is one merchant-registry entry.
type MerchantSeed struct {
	ID         string `yaml:"id"`
	Credential string `yaml:"credential"`
}

// Seed is the full initial state of the ledger.
type Seed struct {
	Users     []UserSeed     `yaml:"users"`
	GiftCards []GiftCardSeed `yaml:"gift_cards"`
	Merchants []MerchantSeed `yaml:"merchants"`
}

// Load parses a seed file.
func Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses seed YAML.
func Parse(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &s, nil
}

// Apply pushes the seed through the facade's register and preload
// operations, in declaration order. The first failure aborts the load.
func (s *Seed) Apply(ctx context.Context, facade services.Facade) error {
	for _, u := range s.Users {
		if err := facade.Register(ctx, u.Username, u.Secret); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}

	for _, g := range s.GiftCards {
		card, err := domain.NewGiftCard(g.Owner, g.CardNumber, g.Balance)
		if err != nil {
			return fmt.Errorf("seed gift card %q: %w", g.CardNumber, err)
		}
		if err := facade.PreloadGiftCard(ctx, card); err != nil {
			return fmt.Errorf("seed gift card %q: %w", g.CardNumber, err)
		}
	}

	for _, m := range s.Merchants {
		if err := facade.RegisterMerchant(ctx, m.ID, m.Credential); err != nil {
			return fmt.Errorf("seed merchant %q: %w", m.ID, err)
		}
	}

	return nil
}
