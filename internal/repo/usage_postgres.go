package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

const (
	usageExpr = `COALESCE(SUM(CASE WHEN m.action IN ('remove', 'sold') THEN ABS(m.delta) ELSE 0 END), 0)`
	addedExpr = `COALESCE(SUM(CASE WHEN m.action = 'add' THEN m.delta ELSE 0 END), 0)`
)

type PostgresUsageRepository struct {
	db *sql.DB
}

func NewPostgresUsageRepository(db *sql.DB) *PostgresUsageRepository {
	return &PostgresUsageRepository{db: db}
}

func (r *PostgresUsageRepository) UsageSummary(ctx context.Context, productID int, w Window) (models.UsageSummary, error) {
	query := `SELECT ` + usageExpr + `,
			COUNT(DISTINCT DATE(m.occurred_at AT TIME ZONE $4)),
			COUNT(*)
		FROM stock_movements m
		WHERE m.product_id = $1 AND m.occurred_at >= $2 AND m.occurred_at < $3`
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var s models.UsageSummary
	err := r.db.QueryRowContext(ctx, query, productID, w.Since, w.Until, w.Location().String()).
		Scan(&s.TotalRemoved, &s.ActiveDays, &s.MovementCount)
	if err != nil {
		return models.UsageSummary{}, fmt.Errorf("usage summary for product %d: %w", productID, err)
	}
	return s, nil
}

func (r *PostgresUsageRepository) FastMovers(ctx context.Context, w Window, limit int) ([]models.FastMover, error) {
	query := `SELECT p.id, p.name, p.quantity,
			` + usageExpr + ` AS total_usage,
			COUNT(DISTINCT DATE(m.occurred_at AT TIME ZONE $3)) AS active_days,
			COUNT(m.id) AS movement_count
		FROM products p
		JOIN stock_movements m ON m.product_id = p.id AND m.occurred_at >= $1 AND m.occurred_at < $2
		GROUP BY p.id, p.name, p.quantity
		HAVING ` + usageExpr + ` > 0
		ORDER BY total_usage DESC, movement_count DESC, p.id ASC
		LIMIT $4`
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, w.Since, w.Until, w.Location().String(), limit)
	if err != nil {
		return nil, fmt.Errorf("fast movers: %w", err)
	}
	defer rows.Close()

	out := []models.FastMover{}
	for rows.Next() {
		var f models.FastMover
		if err := rows.Scan(&f.ProductID, &f.Name, &f.Quantity, &f.TotalUsage, &f.ActiveDays, &f.MovementCount); err != nil {
			return nil, fmt.Errorf("fast movers: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *PostgresUsageRepository) SlowMovers(ctx context.Context, w Window, idleDays, limit int) ([]models.SlowMover, error) {
	query := `SELECT id, name, quantity, total_usage, movement_count, days_since_last_movement
		FROM (
			SELECT p.id, p.name, p.quantity,
				` + usageExpr + ` AS total_usage,
				COUNT(m.id) AS movement_count,
				$4::date - DATE(COALESCE(MAX(m.occurred_at), p.created_at) AT TIME ZONE $3) AS days_since_last_movement
			FROM products p
			LEFT JOIN stock_movements m ON m.product_id = p.id AND m.occurred_at >= $1 AND m.occurred_at < $2
			WHERE p.quantity > 0
			GROUP BY p.id, p.name, p.quantity, p.created_at
		) s
		WHERE total_usage = 0 OR days_since_last_movement > $5
		ORDER BY days_since_last_movement DESC, total_usage ASC, id ASC
		LIMIT $6`
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, w.Since, w.Until, w.Location().String(),
		w.Today().Format(time.DateOnly), idleDays, limit)
	if err != nil {
		return nil, fmt.Errorf("slow movers: %w", err)
	}
	defer rows.Close()

	out := []models.SlowMover{}
	for rows.Next() {
		var s models.SlowMover
		if err := rows.Scan(&s.ProductID, &s.Name, &s.Quantity, &s.TotalUsage, &s.MovementCount, &s.DaysSinceLastMovement); err != nil {
			return nil, fmt.Errorf("slow movers: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresUsageRepository) Trend(ctx context.Context, productID int, w Window) ([]models.TrendPoint, error) {
	query := `SELECT DATE(m.occurred_at AT TIME ZONE $4) AS day,
			` + addedExpr + `,
			` + usageExpr + `
		FROM stock_movements m
		WHERE m.product_id = $1 AND m.occurred_at >= $2 AND m.occurred_at < $3
		GROUP BY day
		ORDER BY day`
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	loc := w.Location()
	rows, err := r.db.QueryContext(ctx, query, productID, w.Since, w.Until, loc.String())
	if err != nil {
		return nil, fmt.Errorf("usage trend for product %d: %w", productID, err)
	}
	defer rows.Close()

	out := []models.TrendPoint{}
	for rows.Next() {
		var (
			tp  models.TrendPoint
			day time.Time
		)
		if err := rows.Scan(&day, &tp.Added, &tp.Removed); err != nil {
			return nil, fmt.Errorf("usage trend for product %d: %w", productID, err)
		}
		tp.Date = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
		out = append(out, tp)
	}
	return out, rows.Err()
}

func (r *PostgresUsageRepository) MonthlyChanges(ctx context.Context, w Window) ([]models.MonthlyChange, error) {
	query := `SELECT TO_CHAR(m.occurred_at AT TIME ZONE $3, 'YYYY-MM') AS month,
			` + addedExpr + `,
			` + usageExpr + `,
			COUNT(DISTINCT m.product_id)
		FROM stock_movements m
		WHERE m.occurred_at >= $1 AND m.occurred_at < $2
		GROUP BY month
		ORDER BY month`
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, w.Since, w.Until, w.Location().String())
	if err != nil {
		return nil, fmt.Errorf("monthly changes: %w", err)
	}
	defer rows.Close()

	out := []models.MonthlyChange{}
	for rows.Next() {
		var mc models.MonthlyChange
		if err := rows.Scan(&mc.Month, &mc.Added, &mc.Removed, &mc.ProductsAffected); err != nil {
			return nil, fmt.Errorf("monthly changes: %w", err)
		}
		out = append(out, mc)
	}
	return out, rows.Err()
}
