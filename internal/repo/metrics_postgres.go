package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var m Metrics

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE quantity <= min_stock_level),
			COUNT(*) FILTER (WHERE quantity = 0),
			COALESCE(SUM(quantity), 0),
			COALESCE(ROUND(SUM(price * quantity), 2), 0)
		FROM products
	`).Scan(&m.TotalProducts, &m.LowStockCount, &m.OutOfStockCount, &m.TotalQuantity, &m.StockValue)
	if err != nil {
		return m, fmt.Errorf("product totals: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&m.TotalMovements); err != nil {
		return m, fmt.Errorf("movement totals: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alerts WHERE NOT is_read`).Scan(&m.UnreadAlerts); err != nil {
		return m, fmt.Errorf("unread alerts: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT p.name, COUNT(*) AS cnt
		FROM stock_movements m
		JOIN products p ON m.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY cnt DESC, p.id ASC
		LIMIT 1
	`).Scan(&m.MostMovedProduct.Name, &m.MostMovedProduct.MovementCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return m, fmt.Errorf("most moved product: %w", err)
	}

	return m, nil
}
