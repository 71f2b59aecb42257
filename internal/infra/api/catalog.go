package api

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain/entity"
)

// ListProducts returns one catalog page. Returning fewer products than the
// requested limit signals the end of the catalog.
func (c *Client) ListProducts(ctx context.Context, page, limit int) ([]*entity.Product, error) {
	var out struct {
		Products []productPayload `json:"products"`
	}
	path := fmt.Sprintf("/products?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(out.Products))
	for _, p := range out.Products {
		products = append(products, p.toEntity())
	}

	return products, nil
}

// GetProduct returns one catalog item by ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var out struct {
		Product productPayload `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &out); err != nil {
		return nil, err
	}

	return out.Product.toEntity(), nil
}
