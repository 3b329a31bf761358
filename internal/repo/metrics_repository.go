package repo

import "context"

type MostMovedProduct struct {
	Name          string `json:"name"`
	MovementCount int    `json:"movement_count"`
}

type Metrics struct {
	TotalProducts    int              `json:"total_products"`
	TotalMovements   int              `json:"total_movements"`
	LowStockCount    int              `json:"low_stock_count"`
	OutOfStockCount  int              `json:"out_of_stock_count"`
	TotalQuantity    int              `json:"total_quantity"`
	StockValue       float64          `json:"stock_value"`
	MostMovedProduct MostMovedProduct `json:"most_moved_product"`
	UnreadAlerts     int              `json:"unread_alerts"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}
