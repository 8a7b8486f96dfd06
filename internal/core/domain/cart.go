package domain

import "time"

// CartItem is one product line in a cart. ProductPrice snapshots the
// product's special price at the time the line was last touched.
type CartItem struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	Discount     float64 `json:"discount"`
	ProductPrice float64 `json:"product_price"`
}

// Cart is the per-user shopping cart, keyed by username. One cart per user.
type Cart struct {
	ID         string     `json:"id"`
	Owner      string     `json:"owner"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Recalculate recomputes TotalPrice from the cart's lines.
func (c *Cart) Recalculate() {
	total := 0.0
	for _, item := range c.Items {
		total += item.ProductPrice * float64(item.Quantity)
	}
	c.TotalPrice = total
}

// Find returns the line for productID, or nil.
func (c *Cart) Find(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Remove drops the line for productID and reports whether it was present.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Touch updates UpdatedAt.
func (c *Cart) Touch(now time.Time) {
	c.UpdatedAt = now
}
