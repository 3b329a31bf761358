package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id int) error
	AdjustQuantity(ctx context.Context, productID int, delta int) (models.Product, error)
}

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuantityChange is returned when an adjustment would make the quantity negative.
	ErrInvalidQuantityChange = errors.New("quantity cannot be negative")
	// ErrDuplicatedValueUnique is returned when a unique column already holds the value.
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
)
