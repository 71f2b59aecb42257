package entity

// Product is a catalog item as read from the remote storefront API.
// Price is in whole currency units (rupiah); the catalog carries no
// fractional prices.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64
	Stock       int
	ImageURL    string
}

// InStock reports whether the product can currently be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
