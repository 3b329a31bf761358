package models

import "time"

type AlertType string

const AlertLowStock AlertType = "low_stock"

// Alert notifies that a product needs attention. Alerts are only ever marked read.
type Alert struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        AlertType `json:"alert_type"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
