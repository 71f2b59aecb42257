// Package entity contains the core business objects of the storefront client.
package entity

// CartLine is a single product entry in a cart. A cart holds at most one
// line per product, and a line's quantity is always positive.
type CartLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Cart is the set of lines currently accumulated by the shopper.
// Line order carries no meaning; lines are addressed by product ID.
// The zero value is an empty cart ready for use.
type Cart struct {
	Lines []CartLine
}

// Find returns the line for the given product, if present.
func (c *Cart) Find(productID int64) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}

	return CartLine{}, false
}

// SetQuantity upserts the line for the given product to the exact quantity.
// A quantity of zero or less removes the line instead, so the cart never
// holds a non-positive line.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)

		return
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity

			return
		}
	}

	c.Lines = append(c.Lines, CartLine{ProductID: productID, Quantity: quantity})
}

// Add accumulates quantity onto an existing line, or creates the line when
// the product is not in the cart yet.
func (c *Cart) Add(productID int64, quantity int) {
	if existing, ok := c.Find(productID); ok {
		c.SetQuantity(productID, existing.Quantity+quantity)

		return
	}

	c.SetQuantity(productID, quantity)
}

// Remove drops the line for the given product. Removing an absent product
// is a no-op.
func (c *Cart) Remove(productID int64) {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)

			return
		}
	}
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems returns the summed quantity across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}

	return total
}

// Normalize drops lines with non-positive quantities and collapses duplicate
// product entries by summing their quantities. Used when ingesting lines
// from an untrusted source (a stale local file or a remote payload).
func (c *Cart) Normalize() {
	merged := Cart{}
	for _, line := range c.Lines {
		if line.Quantity <= 0 {
			continue
		}
		merged.Add(line.ProductID, line.Quantity)
	}
	c.Lines = merged.Lines
}
