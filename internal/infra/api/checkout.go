package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// Submit places the checkout for the authenticated cart. The response names
// the payment redirect URL and the order number the gateway will echo back
// as external_id on its return redirect.
func (c *Client) Submit(ctx context.Context, token string, addressID int64, method entity.PaymentMethod) (*service.CheckoutResult, error) {
	body := map[string]any{
		"addressId":     addressID,
		"paymentMethod": method.String(),
	}

	var out struct {
		PaymentURL string `json:"paymentUrl"`
		LegacyURL  string `json:"payment_url"`
		OrderNum   string `json:"orderNum"`
		LegacyNum  string `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/checkout", token, body, &out); err != nil {
		return nil, err
	}

	result := &service.CheckoutResult{PaymentURL: out.PaymentURL, OrderNum: out.OrderNum}
	if result.PaymentURL == "" {
		result.PaymentURL = out.LegacyURL
	}
	if result.OrderNum == "" {
		result.OrderNum = out.LegacyNum
	}
	if result.OrderNum == "" {
		return nil, domainerrors.NewTransportError(errors.New("checkout response carried no order number"), "")
	}

	return result, nil
}
