package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
)

// Fetch reads the authenticated shopper's remote cart, normalized into the
// client's single line shape.
func (c *Client) Fetch(ctx context.Context, token string) (*entity.Cart, error) {
	var out cartPayload
	if err := c.do(ctx, http.MethodGet, "/my/cart", token, nil, &out); err != nil {
		return nil, err
	}

	return out.toEntity(), nil
}

// Replace overwrites the remote cart with the full given state. The server
// treats the body as the complete desired cart, so the call is idempotent.
func (c *Client) Replace(ctx context.Context, token string, cart *entity.Cart) error {
	lines := cart.Lines
	if lines == nil {
		lines = []entity.CartLine{}
	}
	body := map[string]any{"items": lines}

	return c.do(ctx, http.MethodPost, "/my/cart", token, body, nil)
}
