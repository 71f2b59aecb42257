package service

// QRCodeService renders a payment URL as a scannable QR code image.
// Used for QRIS checkouts, where the shopper pays by scanning rather than
// following the redirect in a browser.
type QRCodeService interface {
	// GeneratePaymentQR returns a PNG encoding of the given payment URL.
	GeneratePaymentQR(paymentURL string) ([]byte, error)
}
