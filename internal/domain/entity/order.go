package entity

import "time"

// OrderStatus represents the staff-controlled lifecycle state of an order.
type OrderStatus string

const (
	// OrderPending is the initial state after checkout, before payment.
	OrderPending OrderStatus = "pending"
	// OrderPaid means the payment gateway confirmed the charge.
	OrderPaid OrderStatus = "paid"
	// OrderShipped means the order left the warehouse.
	OrderShipped OrderStatus = "shipped"
	// OrderDelivered means the shopper received the order.
	OrderDelivered OrderStatus = "delivered"
	// OrderCanceled is reachable from any non-terminal state.
	OrderCanceled OrderStatus = "canceled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the lifecycle.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCanceled
}

// AllOrderStatuses lists every valid status, in lifecycle order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCanceled}
}

// OrderItem is a purchased line, priced at the moment of checkout.
type OrderItem struct {
	Product         Product
	Quantity        int
	PriceAtPurchase int64
}

// Order is a placed order as reported by the server. The client never
// constructs one locally and treats every field except Status as immutable.
// OrderNum is the human-facing identifier the payment gateway echoes back
// in its return redirect.
type Order struct {
	ID        int64
	OrderNum  string
	UserName  string
	Items     []OrderItem
	Address   *Address
	Status    OrderStatus
	Total     int64
	CreatedAt time.Time
}
