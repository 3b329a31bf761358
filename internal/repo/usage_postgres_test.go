package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresUsageRepository_UsageSummary(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUsageRepository(db)
	w := DaysBack(today, 30)

	mock.ExpectQuery(`SELECT (.+) FROM stock_movements m WHERE m.product_id = \$1 AND m.occurred_at >= \$2 AND m.occurred_at < \$3`).
		WithArgs(4, w.Since, w.Until, "UTC").
		WillReturnRows(sqlmock.NewRows([]string{"total", "days", "count"}).AddRow(30, 6, 9))

	s, err := repo.UsageSummary(context.Background(), 4, w)
	require.NoError(t, err)
	assert.Equal(t, models.UsageSummary{TotalRemoved: 30, ActiveDays: 6, MovementCount: 9}, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUsageRepository_UsageSummaryStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUsageRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT (.+) FROM stock_movements m`).WillReturnError(boom)

	_, err := repo.UsageSummary(context.Background(), 4, DaysBack(today, 30))
	assert.ErrorIs(t, err, boom)
}

func TestPostgresUsageRepository_FastMovers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUsageRepository(db)
	w := DaysBack(today, 30)

	mock.ExpectQuery(`SELECT p.id, p.name, p.quantity, (.+) FROM products p JOIN stock_movements m (.+) HAVING (.+) ORDER BY total_usage DESC, movement_count DESC, p.id ASC LIMIT \$4`).
		WithArgs(w.Since, w.Until, "UTC", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "quantity", "total_usage", "active_days", "movement_count"}).
			AddRow(2, "B", 10, 40, 5, 8).
			AddRow(1, "A", 3, 12, 2, 2))

	rows, err := repo.FastMovers(context.Background(), w, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.FastMover{
		{ProductID: 2, Name: "B", Quantity: 10, TotalUsage: 40, ActiveDays: 5, MovementCount: 8},
		{ProductID: 1, Name: "A", Quantity: 3, TotalUsage: 12, ActiveDays: 2, MovementCount: 2},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUsageRepository_SlowMovers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUsageRepository(db)
	w := DaysBack(today, 90)

	mock.ExpectQuery(`LEFT JOIN stock_movements m (.+) WHERE p.quantity > 0 (.+) WHERE total_usage = 0 OR days_since_last_movement > \$5`).
		WithArgs(w.Since, w.Until, "UTC", "2024-06-15", 30, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "quantity", "total_usage", "movement_count", "days"}).
			AddRow(5, "Dusty", 12, 0, 0, 166))

	rows, err := repo.SlowMovers(context.Background(), w, 30, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.SlowMover{{ProductID: 5, Name: "Dusty", Quantity: 12, DaysSinceLastMovement: 166}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUsageRepository_Trend(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUsageRepository(db)
	w := DaysBack(today, 30)

	mock.ExpectQuery(`SELECT DATE\(m.occurred_at AT TIME ZONE \$4\) AS day`).
		WithArgs(1, w.Since, w.Until, "UTC").
		WillReturnRows(sqlmock.NewRows([]string{"day", "added", "removed"}).
			AddRow(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), 10, 1).
			AddRow(time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC), 0, 4))

	points, err := repo.Trend(context.Background(), 1, w)
	require.NoError(t, err)
	assert.Equal(t, []models.TrendPoint{
		{Date: day(time.June, 10, 0), Added: 10, Removed: 1},
		{Date: day(time.June, 12, 0), Added: 0, Removed: 4},
	}, points)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUsageRepository_MonthlyChanges(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUsageRepository(db)
	w := MonthsBack(today, 6)

	mock.ExpectQuery(`SELECT TO_CHAR\(m.occurred_at AT TIME ZONE \$3, 'YYYY-MM'\) AS month`).
		WithArgs(w.Since, w.Until, "UTC").
		WillReturnRows(sqlmock.NewRows([]string{"month", "added", "removed", "products"}).
			AddRow("2024-05", 5, 2, 2))

	rows, err := repo.MonthlyChanges(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, []models.MonthlyChange{{Month: "2024-05", Added: 5, Removed: 2, ProductsAffected: 2}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMetricsRepository_GetDashboardMetrics(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresMetricsRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\), (.+) FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "low", "out", "qty", "value"}).AddRow(3, 1, 1, 45, 120.5))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM stock_movements`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM alerts WHERE NOT is_read`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT p.name, COUNT\(\*\) AS cnt`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "cnt"}))

	m, err := repo.GetDashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Metrics{
		TotalProducts:   3,
		TotalMovements:  12,
		LowStockCount:   1,
		OutOfStockCount: 1,
		TotalQuantity:   45,
		StockValue:      120.5,
		UnreadAlerts:    2,
	}, m)
	assert.NoError(t, mock.ExpectationsWereMet())
}
