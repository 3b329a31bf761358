package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

type InMemoryAlertRepository struct {
	mu          sync.RWMutex
	alerts      []models.Alert
	productRepo ProductRepository
}

func NewInMemoryAlertRepository() *InMemoryAlertRepository {
	return &InMemoryAlertRepository{alerts: []models.Alert{}}
}

func (r *InMemoryAlertRepository) SetRepositories(productRepo ProductRepository) {
	r.productRepo = productRepo
}

func (r *InMemoryAlertRepository) GenerateLowStock(ctx context.Context, at time.Time, loc *time.Location) (int, error) {
	products, err := r.productRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	day := DaysBack(dateOf(at, loc), 0)

	r.mu.Lock()
	defer r.mu.Unlock()

	created := 0
	for _, p := range products {
		if !p.LowStock() || r.hasUnreadLowStock(p.ID, day) {
			continue
		}
		r.alerts = append(r.alerts, models.Alert{
			ID:        len(r.alerts) + 1,
			ProductID: p.ID,
			Type:      models.AlertLowStock,
			Message:   lowStockMessage(p),
			CreatedAt: at,
		})
		created++
	}
	return created, nil
}

func (r *InMemoryAlertRepository) hasUnreadLowStock(productID int, day Window) bool {
	for _, a := range r.alerts {
		if a.ProductID == productID && a.Type == models.AlertLowStock && !a.IsRead && day.Contains(a.CreatedAt) {
			return true
		}
	}
	return false
}

func (r *InMemoryAlertRepository) GetAll(ctx context.Context, unreadOnly bool) ([]models.Alert, error) {
	r.mu.RLock()
	out := []models.Alert{}
	for _, a := range r.alerts {
		if unreadOnly && a.IsRead {
			continue
		}
		out = append(out, a)
	}
	r.mu.RUnlock()

	for i, a := range out {
		if p, err := r.productRepo.GetByID(ctx, a.ProductID); err == nil {
			out[i].ProductName = p.Name
		}
	}
	slices.SortFunc(out, func(a, b models.Alert) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}

func (r *InMemoryAlertRepository) MarkRead(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts[i].IsRead = true
			return nil
		}
	}
	return ErrAlertNotFound
}

func (r *InMemoryAlertRepository) MarkAllRead(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for i := range r.alerts {
		if !r.alerts[i].IsRead {
			r.alerts[i].IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *InMemoryAlertRepository) UnreadCount(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, a := range r.alerts {
		if !a.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryAlertRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = []models.Alert{}
}
