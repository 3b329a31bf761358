package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

// Log inserts a new stock movement
func (r *PostgresMovementRepository) Log(ctx context.Context, m models.Movement) (models.Movement, error) {
	query := `INSERT INTO stock_movements (product_id, action, delta, quantity_before, quantity_after, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if m.OccurredAt.IsZero() {
		m.OccurredAt = time.Now().UTC()
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, m.ProductID, string(m.Action), m.Delta, m.QuantityBefore, m.QuantityAfter, m.OccurredAt).Scan(&m.ID)
	if err != nil {
		return models.Movement{}, fmt.Errorf("failed to insert movement: %w", err)
	}
	return m, nil
}

// GetByProductID returns a page of a product's movements, newest first, plus the total match count
func (r *PostgresMovementRepository) GetByProductID(ctx context.Context, productID int, mf MovementFilter) ([]models.Movement, int, error) {
	if mf.Offset != nil && *mf.Offset < 0 {
		return nil, 0, fmt.Errorf("offset must be non-negative")
	}

	whereClause, args := r.buildWhereClause(productID, mf)

	total, err := r.getTotal(ctx, whereClause, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	if mf.Offset != nil && *mf.Offset >= total {
		return []models.Movement{}, total, nil
	}

	query, queryArgs := r.buildMainQuery(whereClause, args, mf)
	movements, err := r.executeQuery(ctx, query, queryArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return movements, total, nil
}

func (r *PostgresMovementRepository) buildWhereClause(productID int, mf MovementFilter) (string, []any) {
	args := []any{productID}
	whereClause := "WHERE product_id = $1"
	argIndex := 2

	if mf.Since != nil {
		whereClause += fmt.Sprintf(" AND occurred_at >= $%d", argIndex)
		args = append(args, *mf.Since)
		argIndex++
	}

	if mf.Until != nil {
		whereClause += fmt.Sprintf(" AND occurred_at < $%d", argIndex)
		args = append(args, *mf.Until)
	}

	return whereClause, args
}

func (r *PostgresMovementRepository) buildMainQuery(whereClause string, baseArgs []any, mf MovementFilter) (string, []any) {
	query := fmt.Sprintf(`SELECT id, product_id, action, delta, quantity_before, quantity_after, occurred_at
		FROM stock_movements %s ORDER BY occurred_at DESC, id DESC`, whereClause)
	args := make([]any, len(baseArgs))
	copy(args, baseArgs)
	argIndex := len(baseArgs) + 1

	limit := defaultLimit
	if mf.Limit != nil && *mf.Limit > 0 {
		limit = min(*mf.Limit, defaultLimit)
	}
	query += fmt.Sprintf(" LIMIT $%d", argIndex)
	args = append(args, limit)
	argIndex++

	if mf.Offset != nil && *mf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *mf.Offset)
	}

	return query, args
}

func (r *PostgresMovementRepository) getTotal(ctx context.Context, whereClause string, args []any) (int, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM stock_movements %s", whereClause)

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresMovementRepository) executeQuery(ctx context.Context, query string, args []any) ([]models.Movement, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		var (
			m      models.Movement
			action string
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &action, &m.Delta, &m.QuantityBefore, &m.QuantityAfter, &m.OccurredAt); err != nil {
			return nil, err
		}
		m.Action = models.Action(action)
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movements, nil
}
