package api

import (
	"time"

	"storefront/internal/domain/entity"
)

// The server's wire shapes drifted over time: cart lines come back with
// either Go-struct field casing (ProductID, Qty) or JSON casing
// (productId, quantity), and products expose an upper-case ID next to
// snake_case image_url. The payload types below accept both spellings and
// produce exactly one normalized entity, so the divergence stops here.

type cartLinePayload struct {
	ProductID       int64 `json:"productId"`
	LegacyProductID int64 `json:"ProductID"`
	Quantity        int   `json:"quantity"`
	LegacyQty       int   `json:"Qty"`
}

func (p cartLinePayload) toEntity() entity.CartLine {
	line := entity.CartLine{ProductID: p.ProductID, Quantity: p.Quantity}
	if line.ProductID == 0 {
		line.ProductID = p.LegacyProductID
	}
	if line.Quantity == 0 {
		line.Quantity = p.LegacyQty
	}

	return line
}

type cartPayload struct {
	Cart struct {
		Items []cartLinePayload `json:"items"`
	} `json:"cart"`
	Items []cartLinePayload `json:"items"`
}

func (p cartPayload) toEntity() *entity.Cart {
	items := p.Cart.Items
	if len(items) == 0 {
		items = p.Items
	}

	cart := &entity.Cart{}
	for _, item := range items {
		line := item.toEntity()
		cart.Add(line.ProductID, line.Quantity)
	}
	cart.Normalize()

	return cart
}

type productPayload struct {
	LegacyID    int64  `json:"ID"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image_url"`
}

func (p productPayload) toEntity() *entity.Product {
	id := p.ID
	if id == 0 {
		id = p.LegacyID
	}

	return &entity.Product{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

type addressPayload struct {
	ID            int64  `json:"id"`
	Label         string `json:"label"`
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
}

func (p addressPayload) toEntity() *entity.Address {
	return &entity.Address{
		ID:            p.ID,
		Label:         p.Label,
		RecipientName: p.RecipientName,
		Phone:         p.Phone,
		Street:        p.Street,
	}
}

type orderItemPayload struct {
	Quantity int            `json:"quantity"`
	Price    int64          `json:"price"`
	Product  productPayload `json:"product"`
}

type orderPayload struct {
	ID        int64              `json:"id"`
	OrderNum  string             `json:"orderNum"`
	Status    string             `json:"status"`
	Total     int64              `json:"total"`
	CreatedAt string             `json:"createdAt"`
	Items     []orderItemPayload `json:"items"`
	Address   *addressPayload    `json:"address"`
	User      *struct {
		Name string `json:"name"`
	} `json:"user"`
}

// orderTimeLayout is the server's non-RFC3339 timestamp format.
const orderTimeLayout = "2006-01-02 15:04:05"

func (p orderPayload) toEntity() *entity.Order {
	order := &entity.Order{
		ID:       p.ID,
		OrderNum: p.OrderNum,
		Status:   entity.OrderStatus(p.Status),
		Total:    p.Total,
	}

	if ts, err := time.Parse(orderTimeLayout, p.CreatedAt); err == nil {
		order.CreatedAt = ts
	} else if ts, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		order.CreatedAt = ts
	}

	for _, item := range p.Items {
		product := item.Product.toEntity()
		price := item.Price
		if price == 0 {
			price = product.Price
		}
		order.Items = append(order.Items, entity.OrderItem{
			Product:         *product,
			Quantity:        item.Quantity,
			PriceAtPurchase: price,
		})
	}

	if p.Address != nil {
		order.Address = p.Address.toEntity()
	}
	if p.User != nil {
		order.UserName = p.User.Name
	}

	return order
}
