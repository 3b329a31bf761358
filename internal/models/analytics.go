package models

import "time"

// UsageSummary aggregates a product's ledger over a window.
type UsageSummary struct {
	TotalRemoved  int
	ActiveDays    int
	MovementCount int
}

// FastMover is a ranking row for products with recent usage.
type FastMover struct {
	ProductID     int    `json:"product_id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	TotalUsage    int    `json:"total_usage"`
	ActiveDays    int    `json:"active_days"`
	MovementCount int    `json:"movement_count"`
}

// SlowMover is a ranking row for stocked products with little or stale usage.
type SlowMover struct {
	ProductID             int    `json:"product_id"`
	Name                  string `json:"name"`
	Quantity              int    `json:"quantity"`
	TotalUsage            int    `json:"total_usage"`
	MovementCount         int    `json:"movement_count"`
	DaysSinceLastMovement int    `json:"days_since_last_movement"`
}

// TrendPoint is one calendar date of a product's usage series.
type TrendPoint struct {
	Date    time.Time `json:"date"`
	Added   int       `json:"added"`
	Removed int       `json:"removed"`
}

// MonthlyChange summarizes all ledger activity in one calendar month.
type MonthlyChange struct {
	Month            string `json:"month"` // YYYY-MM
	Added            int    `json:"added"`
	Removed          int    `json:"removed"`
	ProductsAffected int    `json:"products_affected"`
}
