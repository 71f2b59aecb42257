package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// CheckoutInput defines what a shopper must choose before submitting.
type CheckoutInput struct {
	AddressID int64                `validate:"required"`
	Method    entity.PaymentMethod `validate:"required"`
}

// AddressInput defines the data required to save a shipping profile.
type AddressInput struct {
	Label         string `validate:"required"`
	RecipientName string `validate:"required"`
	Phone         string `validate:"required"`
	Street        string `validate:"required"`
}

// --- Output DTOs ---

// CheckoutOutput is the result of a submitted checkout. After this the
// client's part is over: payment happens on the gateway's page, and the
// outcome is only observed through the later return redirect carrying
// OrderNum as external_id.
type CheckoutOutput struct {
	PaymentURL string
	OrderNum   string

	// Quote is the client-side pricing shown before submission. Advisory:
	// the server's own figure is what the redirect actually charges.
	Quote entity.Quote

	// QRCodePNG is set for QRIS payments: the payment URL rendered as a
	// scannable code.
	QRCodePNG []byte
}

// CheckoutUsecase prices the current cart and submits it for payment.
type CheckoutUsecase interface {
	// Quote computes subtotal, admin fee and total for the current cart
	// under the given payment method, joining catalog prices per product.
	Quote(ctx context.Context, method entity.PaymentMethod) (*entity.Quote, error)

	// ListAddresses returns the shopper's saved shipping profiles.
	ListAddresses(ctx context.Context) ([]*entity.Address, error)

	// SaveAddress stores a new shipping profile.
	SaveAddress(ctx context.Context, input AddressInput) (*entity.Address, error)

	// Submit validates the selection client-side (no network call on
	// validation failure) and places the checkout.
	Submit(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error)
}
