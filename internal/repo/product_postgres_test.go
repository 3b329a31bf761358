package repo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "name", "price", "quantity", "min_stock_level", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestPostgresProductRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db)
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(productCols).AddRow(1, "Widget", 9.5, 40, 10, created, created))

	p, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.Product{ID: 1, Name: "Widget", Price: 9.5, Quantity: 40, MinStockLevel: 10, CreatedAt: created, UpdatedAt: created}, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(productCols))

	_, err := repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_CreateDuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db)

	mock.ExpectQuery(`INSERT INTO products`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), models.Product{Name: "Widget"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_AdjustQuantity(t *testing.T) {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("applies the delta", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresProductRepository(db)
		mock.ExpectQuery(`UPDATE products SET quantity = quantity \+ \$1`).
			WithArgs(-3, sqlmock.AnyArg(), 1).
			WillReturnRows(sqlmock.NewRows(productCols).AddRow(1, "Widget", 9.5, 37, 10, created, created))

		p, err := repo.AdjustQuantity(context.Background(), 1, -3)
		require.NoError(t, err)
		assert.Equal(t, 37, p.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects going below zero", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresProductRepository(db)
		mock.ExpectQuery(`UPDATE products SET quantity = quantity \+ \$1`).
			WithArgs(-50, sqlmock.AnyArg(), 1).
			WillReturnRows(sqlmock.NewRows(productCols))
		mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \$1`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(productCols).AddRow(1, "Widget", 9.5, 40, 10, created, created))

		_, err := repo.AdjustQuantity(context.Background(), 1, -50)
		assert.ErrorIs(t, err, ErrInvalidQuantityChange)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown product", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresProductRepository(db)
		mock.ExpectQuery(`UPDATE products SET quantity = quantity \+ \$1`).
			WithArgs(5, sqlmock.AnyArg(), 9).
			WillReturnRows(sqlmock.NewRows(productCols))
		mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \$1`).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows(productCols))

		_, err := repo.AdjustQuantity(context.Background(), 9, 5)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresMovementRepository_Log(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresMovementRepository(db)
	at := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO stock_movements`).
		WithArgs(1, "sold", -2, 10, 8, at).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	m, err := repo.Log(context.Background(), models.Movement{
		ProductID: 1, Action: models.ActionSold, Delta: -2, QuantityBefore: 10, QuantityAfter: 8, OccurredAt: at,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMovementRepository_GetByProductID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresMovementRepository(db)
	at := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	limit := 1

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM stock_movements WHERE product_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT (.+) FROM stock_movements WHERE product_id = \$1 ORDER BY occurred_at DESC, id DESC LIMIT \$2`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "action", "delta", "quantity_before", "quantity_after", "occurred_at"}).
			AddRow(3, 1, "add", 5, 5, 10, at))

	movements, total, err := repo.GetByProductID(context.Background(), 1, MovementFilter{Limit: &limit})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, movements, 1)
	assert.Equal(t, models.ActionAdd, movements[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}
