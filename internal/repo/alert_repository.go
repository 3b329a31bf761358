package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

var ErrAlertNotFound = errors.New("alert not found")

type AlertRepository interface {
	// GenerateLowStock raises a low_stock alert, stamped at, for every product at or below
	// its minimum stock level that has no unread low_stock alert created on the same
	// calendar day in loc. It returns the number of alerts created.
	GenerateLowStock(ctx context.Context, at time.Time, loc *time.Location) (int, error)
	// GetAll lists alerts newest first.
	GetAll(ctx context.Context, unreadOnly bool) ([]models.Alert, error)
	MarkRead(ctx context.Context, id int) error
	// MarkAllRead returns the number of alerts that were unread.
	MarkAllRead(ctx context.Context) (int, error)
	UnreadCount(ctx context.Context) (int, error)
}

func lowStockMessage(p models.Product) string {
	return fmt.Sprintf("%s is running low. Current stock: %d (Minimum: %d)", p.Name, p.Quantity, p.MinStockLevel)
}
