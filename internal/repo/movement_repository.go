package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

// MovementRepository is the stock-change ledger. Entries are appended, never edited.
type MovementRepository interface {
	Log(ctx context.Context, m models.Movement) (models.Movement, error)
	GetByProductID(ctx context.Context, productID int, mf MovementFilter) ([]models.Movement, int, error)
}
