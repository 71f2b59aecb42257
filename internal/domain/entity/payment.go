package entity

import "math"

// PaymentMethod identifies one of the closed set of checkout payment options.
type PaymentMethod string

const (
	// PaymentVirtualAccount is a bank virtual-account transfer.
	PaymentVirtualAccount PaymentMethod = "virtual_account"
	// PaymentQRIS is an Indonesian QRIS wallet payment.
	PaymentQRIS PaymentMethod = "qris"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentVirtualAccount, PaymentQRIS:
		return true
	default:
		return false
	}
}

// FeeRuleType distinguishes how an admin fee is derived.
type FeeRuleType string

const (
	// FeeFlat charges a fixed amount regardless of subtotal.
	FeeFlat FeeRuleType = "flat"
	// FeePercent charges a fraction of the subtotal, rounded up to the
	// nearest currency unit.
	FeePercent FeeRuleType = "percent"
)

// FeeRule describes the admin fee bound to a payment method.
// Exactly one of Amount or Rate is meaningful, selected by Type.
type FeeRule struct {
	Type   FeeRuleType `json:"type" yaml:"type"`
	Amount int64       `json:"amount" yaml:"amount"`
	Rate   float64     `json:"rate" yaml:"rate"`
}

// Apply computes the fee for the given subtotal. Percentage fees round up,
// so the shopper is never shown less than the gateway will add.
func (r FeeRule) Apply(subtotal int64) int64 {
	switch r.Type {
	case FeePercent:
		return int64(math.Ceil(float64(subtotal) * r.Rate))
	default:
		return r.Amount
	}
}

// FeeTable is the closed, statically configured mapping from payment method
// to fee rule. Adding a payment method means adding one entry here, not new
// branching logic.
type FeeTable map[PaymentMethod]FeeRule

// DefaultFeeTable mirrors the fee policy of the hosted storefront.
func DefaultFeeTable() FeeTable {
	return FeeTable{
		PaymentVirtualAccount: {Type: FeeFlat, Amount: 4440},
		PaymentQRIS:           {Type: FeePercent, Rate: 0.007},
	}
}

// Quote is the client-side checkout pricing summary. It is advisory: the
// server recomputes the authoritative charge at submission time.
type Quote struct {
	Subtotal int64
	Fee      int64
	Total    int64
}
