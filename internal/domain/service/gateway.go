// Package service defines the interfaces for external collaborators of the
// client: the remote storefront API, credential decoding, and QR rendering.
// The remote API is never implemented here, only called; these contracts
// name exactly the shapes the client reads.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput is the payload for creating a new shopper account.
type RegisterInput struct {
	Name     string `validate:"required"`
	Username string `validate:"required"`
	Password string `validate:"required,min=6"`
}

// AuthGateway exchanges credentials for a bearer token with the remote API.
// The token encodes identity, role and expiry; decoding it is the
// TokenService's job.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (token string, err error)
	Register(ctx context.Context, input RegisterInput) (token string, err error)
}

// CatalogGateway reads the product catalog. Listing is paginated; a short
// page (fewer items than the requested limit) signals the end of the catalog.
type CatalogGateway interface {
	ListProducts(ctx context.Context, page, limit int) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}

// CartGateway is the remote, session-keyed cart backend. Replace is a
// full-state upsert: the server discards whatever it held and stores the
// given lines, which makes every write idempotent.
type CartGateway interface {
	Fetch(ctx context.Context, token string) (*entity.Cart, error)
	Replace(ctx context.Context, token string, cart *entity.Cart) error
}

// AddressGateway manages the shopper's shipping profiles.
type AddressGateway interface {
	List(ctx context.Context, token string) ([]*entity.Address, error)
	Create(ctx context.Context, token string, address *entity.Address) (*entity.Address, error)
}

// CheckoutResult is the server's answer to a checkout submission: where to
// send the shopper, and the order number the gateway will echo back in its
// return redirect.
type CheckoutResult struct {
	PaymentURL string
	OrderNum   string
}

// CheckoutGateway submits the authenticated cart for payment. The charge
// amount is computed server-side from the then-current cart; the client's
// quote is advisory only.
type CheckoutGateway interface {
	Submit(ctx context.Context, token string, addressID int64, method entity.PaymentMethod) (*CheckoutResult, error)
}

// OrderGateway reads orders and, for staff, advances their status.
type OrderGateway interface {
	// ListMine returns the shopper's own orders, newest first.
	ListMine(ctx context.Context, token string) ([]*entity.Order, error)

	// GetMine returns one of the shopper's own orders by server ID.
	GetMine(ctx context.Context, token string, id int64) (*entity.Order, error)

	// ListAll returns every order. Staff only.
	ListAll(ctx context.Context, token string) ([]*entity.Order, error)

	// Get returns any order by server ID. Staff only.
	Get(ctx context.Context, token string, id int64) (*entity.Order, error)

	// SetStatus moves an order to the given status. The server applies the
	// move without validating transition legality.
	SetStatus(ctx context.Context, token string, id int64, status entity.OrderStatus) error
}
