package entity

// Address is a shopper-owned shipping profile. The list is fetched at
// checkout time and one address is selected per checkout.
type Address struct {
	ID            int64
	Label         string
	RecipientName string
	Phone         string
	Street        string
}
