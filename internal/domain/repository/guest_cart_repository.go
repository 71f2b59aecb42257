// Package repository defines the interfaces for locally persisted client
// state. These interfaces act as a contract between the application layer
// and the on-device storage backend.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// GuestCartRepository persists the anonymous shopper's cart on the device,
// under the well-known guest cart key. It is the authoritative cart backend
// whenever no session exists.
type GuestCartRepository interface {
	// Load reads the guest cart. Missing or corrupt stored data is treated
	// as an empty cart, never as an error.
	Load(ctx context.Context) (*entity.Cart, error)

	// Save overwrites the stored guest cart with the full given state.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear removes the guest cart key entirely. Used after a successful
	// merge into the remote cart, and on session teardown.
	Clear(ctx context.Context) error
}
