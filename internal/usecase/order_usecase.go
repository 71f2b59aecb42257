package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase reads placed orders and, for staff, advances their status.
type OrderUsecase interface {
	// ListMine returns the shopper's own orders.
	ListMine(ctx context.Context) ([]*entity.Order, error)

	// GetMine returns one of the shopper's own orders.
	GetMine(ctx context.Context, id int64) (*entity.Order, error)

	// FindByOrderNum resolves a payment gateway's external_id back to the
	// shopper's order. Returns ErrOrderNotFound when no order matches.
	FindByOrderNum(ctx context.Context, orderNum string) (*entity.Order, error)

	// ListAll returns every order. Staff only.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// Get returns any order. Staff only.
	Get(ctx context.Context, id int64) (*entity.Order, error)

	// SetStatus moves an order to the given status and returns the order
	// with the new status applied optimistically. Any status may move to
	// any other, including backwards: the looseness is an operational
	// correction tool, not an oversight. On error the caller keeps showing
	// the previous status.
	SetStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error)
}
