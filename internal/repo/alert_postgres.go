package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

type PostgresAlertRepository struct {
	db *sql.DB
}

func NewPostgresAlertRepository(db *sql.DB) *PostgresAlertRepository {
	return &PostgresAlertRepository{db: db}
}

// GenerateLowStock inserts every missing alert in one statement.
func (r *PostgresAlertRepository) GenerateLowStock(ctx context.Context, at time.Time, loc *time.Location) (int, error) {
	day := DaysBack(dateOf(at, loc), 0)
	query := `
		INSERT INTO alerts (product_id, alert_type, message, created_at)
		SELECT p.id, 'low_stock',
			p.name || ' is running low. Current stock: ' || p.quantity || ' (Minimum: ' || p.min_stock_level || ')',
			$1::timestamptz
		FROM products p
		WHERE p.quantity <= p.min_stock_level
		AND NOT EXISTS (
			SELECT 1 FROM alerts a
			WHERE a.product_id = p.id
			AND a.alert_type = 'low_stock'
			AND NOT a.is_read
			AND a.created_at >= $2 AND a.created_at < $3
		)`

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, at, day.Since, day.Until)
	if err != nil {
		return 0, fmt.Errorf("generate low stock alerts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("generate low stock alerts: %w", err)
	}
	return int(n), nil
}

func (r *PostgresAlertRepository) GetAll(ctx context.Context, unreadOnly bool) ([]models.Alert, error) {
	query := `
		SELECT a.id, a.product_id, COALESCE(p.name, ''), a.alert_type, a.message, a.is_read, a.created_at
		FROM alerts a
		LEFT JOIN products p ON a.product_id = p.id`
	if unreadOnly {
		query += ` WHERE NOT a.is_read`
	}
	query += ` ORDER BY a.created_at DESC, a.id DESC`

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	alerts := []models.Alert{}
	for rows.Next() {
		var a models.Alert
		var alertType string
		if err := rows.Scan(&a.ID, &a.ProductID, &a.ProductName, &alertType, &a.Message, &a.IsRead, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		a.Type = models.AlertType(alertType)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *PostgresAlertRepository) MarkRead(ctx context.Context, id int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE alerts SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if n == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func (r *PostgresAlertRepository) MarkAllRead(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE alerts SET is_read = TRUE WHERE NOT is_read`)
	if err != nil {
		return 0, fmt.Errorf("mark all alerts read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark all alerts read: %w", err)
	}
	return int(n), nil
}

func (r *PostgresAlertRepository) UnreadCount(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alerts WHERE NOT is_read`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread alerts: %w", err)
	}
	return n, nil
}
