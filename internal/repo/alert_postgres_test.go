package repo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresAlertRepository_GenerateLowStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresAlertRepository(db)
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	at := time.Date(2025, time.June, 15, 2, 0, 0, 0, time.UTC)
	daySince := time.Date(2025, time.June, 14, 0, 0, 0, 0, ny)
	dayUntil := time.Date(2025, time.June, 15, 0, 0, 0, 0, ny)

	mock.ExpectExec(`INSERT INTO alerts (.+) SELECT (.+) FROM products p WHERE p.quantity <= p.min_stock_level AND NOT EXISTS`).
		WithArgs(at, daySince, dayUntil).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.GenerateLowStock(context.Background(), at, ny)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAlertRepository_GetAll(t *testing.T) {
	created := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	cols := []string{"id", "product_id", "name", "alert_type", "message", "is_read", "created_at"}

	t.Run("unread only", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresAlertRepository(db)
		mock.ExpectQuery(`FROM alerts a LEFT JOIN products p ON a.product_id = p.id WHERE NOT a.is_read ORDER BY a.created_at DESC, a.id DESC`).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(4, 1, "Widget", "low_stock", "Widget is running low.", false, created))

		alerts, err := repo.GetAll(context.Background(), true)
		require.NoError(t, err)
		assert.Equal(t, []models.Alert{{
			ID: 4, ProductID: 1, ProductName: "Widget", Type: models.AlertLowStock,
			Message: "Widget is running low.", CreatedAt: created,
		}}, alerts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresAlertRepository(db)
		mock.ExpectQuery(`FROM alerts a LEFT JOIN products p ON a.product_id = p.id ORDER BY`).
			WillReturnRows(sqlmock.NewRows(cols))

		alerts, err := repo.GetAll(context.Background(), false)
		require.NoError(t, err)
		assert.NotNil(t, alerts)
		assert.Empty(t, alerts)
	})
}

func TestPostgresAlertRepository_MarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresAlertRepository(db)

	mock.ExpectExec(`UPDATE alerts SET is_read = TRUE WHERE id = \$1`).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE alerts SET is_read = TRUE WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE alerts SET is_read = TRUE WHERE NOT is_read`).
		WillReturnResult(sqlmock.NewResult(0, 5))

	ctx := context.Background()
	require.NoError(t, repo.MarkRead(ctx, 4))
	assert.ErrorIs(t, repo.MarkRead(ctx, 99), ErrAlertNotFound)

	n, err := repo.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
