// Package cart holds the order-entry form's pre-submission state: a
// plain serializable value the presentation layer mutates through
// these functions. Nothing here is persisted, the server recomputes
// all prices when the cart is submitted.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/transport"
)

type Item struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

type Cart struct {
	Items []Item `json:"items"`
}

// Add merges by product id: adding a product already in the cart bumps
// its quantity instead of appending a second entry. A non-positive
// quantity defaults to 1 rather than rejecting the add.
func (c *Cart) Add(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  quantity,
	})
}

// Remove drops the entry for productID. Removing an absent product is
// a no-op.
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Total is recomputed on every call, never cached.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ToOrderRequest projects the cart to the wire shape consumed by order
// creation. Names and price snapshots are display-only and stripped
// here, the server prices the order from the catalog.
func (c *Cart) ToOrderRequest(customerName, customerEmail string) transport.CreateOrderRequest {
	req := transport.CreateOrderRequest{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Items:         make([]transport.CreateOrderItem, 0, len(c.Items)),
	}
	for _, it := range c.Items {
		req.Items = append(req.Items, transport.CreateOrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return req
}
