package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.RWMutex
	movements []models.Movement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

// Log appends a movement, stamping it with the current time when OccurredAt is unset.
func (r *InMemoryMovementRepository) Log(_ context.Context, m models.Movement) (models.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = len(r.movements) + 1
	if m.OccurredAt.IsZero() {
		m.OccurredAt = time.Now().UTC()
	}
	r.movements = append(r.movements, m)
	return m, nil
}

// GetByProductID returns a product's movements newest first, optionally filtered by date range and paginated.
func (r *InMemoryMovementRepository) GetByProductID(_ context.Context, productID int, mf MovementFilter) ([]models.Movement, int, error) {
	r.mu.RLock()
	filtered := []models.Movement{}
	for _, m := range r.movements {
		if m.ProductID != productID {
			continue
		}
		if (mf.Since != nil && m.OccurredAt.Before(*mf.Since)) ||
			(mf.Until != nil && !m.OccurredAt.Before(*mf.Until)) {
			continue
		}
		filtered = append(filtered, m)
	}
	r.mu.RUnlock()

	slices.SortFunc(filtered, func(a, b models.Movement) int {
		return cmp.Or(b.OccurredAt.Compare(a.OccurredAt), cmp.Compare(b.ID, a.ID))
	})

	if mf.Offset != nil && *mf.Offset > len(filtered) {
		return []models.Movement{}, len(filtered), nil
	}

	start := 0
	if mf.Offset != nil {
		start = clamp(*mf.Offset, 0, len(filtered))
	}

	limit := defaultLimit
	if mf.Limit != nil && *mf.Limit > 0 {
		limit = min(*mf.Limit, defaultLimit)
	}
	end := clamp(start+limit, start, len(filtered))

	return filtered[start:end], len(filtered), nil
}

// All returns a snapshot of the whole ledger in insertion order.
func (r *InMemoryMovementRepository) All() []models.Movement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.movements)
}

func (r *InMemoryMovementRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = []models.Movement{}
}
