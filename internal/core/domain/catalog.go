package domain

import "time"

// Category groups products for browsing.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a catalog item offered by a seller. SpecialPrice is derived,
// never set directly: price minus the percentage discount.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryID   string    `json:"category_id"`
	Seller       string    `json:"seller"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	Discount     float64   `json:"discount"`
	SpecialPrice float64   `json:"special_price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ApplyDiscount recomputes SpecialPrice from Price and Discount (a percentage).
func (p *Product) ApplyDiscount() {
	p.SpecialPrice = p.Price - (p.Discount/100)*p.Price
}
