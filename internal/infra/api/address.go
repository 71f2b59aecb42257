package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
)

// List returns the shopper's saved shipping profiles.
func (c *Client) List(ctx context.Context, token string) ([]*entity.Address, error) {
	var out struct {
		Addresses []addressPayload `json:"addresses"`
	}
	if err := c.do(ctx, http.MethodGet, "/my/addresses", token, nil, &out); err != nil {
		return nil, err
	}

	addresses := make([]*entity.Address, 0, len(out.Addresses))
	for _, a := range out.Addresses {
		addresses = append(addresses, a.toEntity())
	}

	return addresses, nil
}

// Create saves a new shipping profile and returns it with its server ID.
func (c *Client) Create(ctx context.Context, token string, address *entity.Address) (*entity.Address, error) {
	body := map[string]string{
		"label":         address.Label,
		"recipientName": address.RecipientName,
		"phone":         address.Phone,
		"street":        address.Street,
	}

	var out struct {
		Address addressPayload `json:"address"`
	}
	if err := c.do(ctx, http.MethodPost, "/my/addresses", token, body, &out); err != nil {
		return nil, err
	}

	return out.Address.toEntity(), nil
}
