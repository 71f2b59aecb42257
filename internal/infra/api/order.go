package api

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain/entity"
)

type orderListResponse struct {
	Orders []orderPayload `json:"orders"`
}

type orderResponse struct {
	Order orderPayload `json:"order"`
}

func toOrders(payloads []orderPayload) []*entity.Order {
	orders := make([]*entity.Order, 0, len(payloads))
	for _, p := range payloads {
		orders = append(orders, p.toEntity())
	}

	return orders
}

// ListMine returns the shopper's own orders.
func (c *Client) ListMine(ctx context.Context, token string) ([]*entity.Order, error) {
	var out orderListResponse
	if err := c.do(ctx, http.MethodGet, "/my/orders", token, nil, &out); err != nil {
		return nil, err
	}

	return toOrders(out.Orders), nil
}

// GetMine returns one of the shopper's own orders.
func (c *Client) GetMine(ctx context.Context, token string, id int64) (*entity.Order, error) {
	var out orderResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/my/orders/%d", id), token, nil, &out); err != nil {
		return nil, err
	}

	return out.Order.toEntity(), nil
}

// ListAll returns every order. Staff only.
func (c *Client) ListAll(ctx context.Context, token string) ([]*entity.Order, error) {
	var out orderListResponse
	if err := c.do(ctx, http.MethodGet, "/admin/orders", token, nil, &out); err != nil {
		return nil, err
	}

	return toOrders(out.Orders), nil
}

// Get returns any order by ID. Staff only.
func (c *Client) Get(ctx context.Context, token string, id int64) (*entity.Order, error) {
	var out orderResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/orders/%d", id), token, nil, &out); err != nil {
		return nil, err
	}

	return out.Order.toEntity(), nil
}

// SetStatus moves an order to the given status. The server applies the move
// as-is; transition legality is deliberately not checked anywhere.
func (c *Client) SetStatus(ctx context.Context, token string, id int64, status entity.OrderStatus) error {
	body := map[string]string{"status": status.String()}

	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/orders/%d/status", id), token, body, nil)
}
