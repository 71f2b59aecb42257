package localfile

import (
	"context"
	"encoding/json"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type guestCartRepository struct {
	dir string
}

// NewGuestCartRepository creates a file-backed guest cart store rooted at
// the configured state directory.
func NewGuestCartRepository(cfg *config.Config) repository.GuestCartRepository {
	return &guestCartRepository{dir: cfg.State.Dir}
}

// Load reads the guest cart key. Missing or corrupt data yields an empty
// cart: an anonymous visitor must never be blocked by a bad local file.
func (r *guestCartRepository) Load(_ context.Context) (*entity.Cart, error) {
	raw, ok, err := readKey(r.dir, guestCartFile)
	if err != nil || !ok {
		return &entity.Cart{}, err
	}

	var lines []entity.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		// Corrupt cart data is discarded, not surfaced.
		return &entity.Cart{}, nil
	}

	cart := &entity.Cart{Lines: lines}
	cart.Normalize()

	return cart, nil
}

// Save overwrites the guest cart key with the full given state.
func (r *guestCartRepository) Save(_ context.Context, cart *entity.Cart) error {
	lines := cart.Lines
	if lines == nil {
		lines = []entity.CartLine{}
	}

	return writeKey(r.dir, guestCartFile, lines)
}

// Clear removes the guest cart key.
func (r *guestCartRepository) Clear(_ context.Context) error {
	return clearKey(r.dir, guestCartFile)
}
