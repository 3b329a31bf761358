package models

import "time"

// Product represents a product entity in the inventory system.
type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Quantity      int       `json:"quantity"`
	MinStockLevel int       `json:"min_stock_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LowStock reports whether the product is at or below its minimum stock level.
func (p Product) LowStock() bool {
	return p.Quantity <= p.MinStockLevel
}
