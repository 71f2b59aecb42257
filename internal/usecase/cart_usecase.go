package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartItem is a cart line joined with its catalog product for display.
// Product may be nil when the catalog no longer knows the ID; the price
// shown is the catalog's current one and can be stale relative to what the
// server charges at checkout.
type CartItem struct {
	Line    entity.CartLine
	Product *entity.Product
}

// CartUsecase is the dual-mode cart store. Anonymous visitors read and
// write the locally persisted guest cart; authenticated visitors read and
// write the remote cart. The contract is identical in both modes, and
// every write persists the full next-state cart rather than a delta, so
// writes are idempotent and order-tolerant.
type CartUsecase interface {
	// Get returns the current cart from whichever backend owns it.
	Get(ctx context.Context) (*entity.Cart, error)

	// GetDetailed returns the cart joined with catalog detail, one catalog
	// read per distinct product.
	GetDetailed(ctx context.Context) ([]CartItem, error)

	// Add accumulates quantity onto the product's line and returns the
	// resulting cart.
	Add(ctx context.Context, productID int64, quantity int) (*entity.Cart, error)

	// SetQuantity upserts the product's line to the exact quantity;
	// zero or less removes the line.
	SetQuantity(ctx context.Context, productID int64, quantity int) (*entity.Cart, error)

	// Remove is equivalent to SetQuantity(productID, 0).
	Remove(ctx context.Context, productID int64) (*entity.Cart, error)

	// MergeGuestIntoRemote runs the one-time guest-to-owned migration with
	// a freshly issued credential: push the full guest cart as one
	// full-replace upsert, then clear the local copy. An empty guest cart
	// makes no network call. On failure the guest cart is left intact and
	// the error returned; the caller decides how to surface it.
	MergeGuestIntoRemote(ctx context.Context, token string) (moved int, err error)
}
