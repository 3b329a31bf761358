package repo

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

// InMemoryUsageRepository aggregates over the in-memory product and ledger stores.
type InMemoryUsageRepository struct {
	productRepo  ProductRepository
	movementRepo *InMemoryMovementRepository
}

func NewInMemoryUsageRepository() *InMemoryUsageRepository {
	return &InMemoryUsageRepository{}
}

func (r *InMemoryUsageRepository) SetRepositories(productRepo ProductRepository, movementRepo *InMemoryMovementRepository) {
	r.productRepo = productRepo
	r.movementRepo = movementRepo
}

type usageTally struct {
	added     int
	removed   int
	count     int
	days      map[time.Time]struct{}
	products  map[int]struct{}
	lastEvent time.Time
}

func newUsageTally() *usageTally {
	return &usageTally{days: map[time.Time]struct{}{}, products: map[int]struct{}{}}
}

func (t *usageTally) add(m models.Movement, loc *time.Location) {
	if m.Action == models.ActionAdd {
		t.added += m.Delta
	}
	t.removed += m.Usage()
	t.count++
	t.days[dateOf(m.OccurredAt, loc)] = struct{}{}
	t.products[m.ProductID] = struct{}{}
	if m.OccurredAt.After(t.lastEvent) {
		t.lastEvent = m.OccurredAt
	}
}

// tally groups the movements inside w by key; key returning false skips a movement.
func (r *InMemoryUsageRepository) tally(w Window, key func(models.Movement) (string, bool)) map[string]*usageTally {
	out := map[string]*usageTally{}
	for _, m := range r.movementRepo.All() {
		if !w.Contains(m.OccurredAt) {
			continue
		}
		k, ok := key(m)
		if !ok {
			continue
		}
		t, found := out[k]
		if !found {
			t = newUsageTally()
			out[k] = t
		}
		t.add(m, w.Location())
	}
	return out
}

func byProduct(m models.Movement) (string, bool) {
	return productKey(m.ProductID), true
}

func productKey(id int) string {
	return strconv.Itoa(id)
}

func (r *InMemoryUsageRepository) UsageSummary(_ context.Context, productID int, w Window) (models.UsageSummary, error) {
	t := r.tally(w, func(m models.Movement) (string, bool) {
		return "", m.ProductID == productID
	})[""]
	if t == nil {
		return models.UsageSummary{}, nil
	}
	return models.UsageSummary{TotalRemoved: t.removed, ActiveDays: len(t.days), MovementCount: t.count}, nil
}

func (r *InMemoryUsageRepository) FastMovers(ctx context.Context, w Window, limit int) ([]models.FastMover, error) {
	products, err := r.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	tallies := r.tally(w, byProduct)

	out := []models.FastMover{}
	for _, p := range products {
		t := tallies[productKey(p.ID)]
		if t == nil || t.removed <= 0 {
			continue
		}
		out = append(out, models.FastMover{
			ProductID:     p.ID,
			Name:          p.Name,
			Quantity:      p.Quantity,
			TotalUsage:    t.removed,
			ActiveDays:    len(t.days),
			MovementCount: t.count,
		})
	}

	slices.SortFunc(out, func(a, b models.FastMover) int {
		switch {
		case a.TotalUsage != b.TotalUsage:
			return b.TotalUsage - a.TotalUsage
		case a.MovementCount != b.MovementCount:
			return b.MovementCount - a.MovementCount
		}
		return a.ProductID - b.ProductID
	})
	return truncate(out, limit), nil
}

func (r *InMemoryUsageRepository) SlowMovers(ctx context.Context, w Window, idleDays, limit int) ([]models.SlowMover, error) {
	products, err := r.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	tallies := r.tally(w, byProduct)
	today := w.Today()

	out := []models.SlowMover{}
	for _, p := range products {
		if p.Quantity <= 0 {
			continue
		}
		row := models.SlowMover{ProductID: p.ID, Name: p.Name, Quantity: p.Quantity}
		last := p.CreatedAt
		if t := tallies[productKey(p.ID)]; t != nil {
			row.TotalUsage = t.removed
			row.MovementCount = t.count
			last = t.lastEvent
		}
		row.DaysSinceLastMovement = daysBetween(dateOf(last, w.Location()), today)
		if row.TotalUsage == 0 || row.DaysSinceLastMovement > idleDays {
			out = append(out, row)
		}
	}

	slices.SortFunc(out, func(a, b models.SlowMover) int {
		switch {
		case a.DaysSinceLastMovement != b.DaysSinceLastMovement:
			return b.DaysSinceLastMovement - a.DaysSinceLastMovement
		case a.TotalUsage != b.TotalUsage:
			return a.TotalUsage - b.TotalUsage
		}
		return a.ProductID - b.ProductID
	})
	return truncate(out, limit), nil
}

func (r *InMemoryUsageRepository) Trend(_ context.Context, productID int, w Window) ([]models.TrendPoint, error) {
	loc := w.Location()
	tallies := r.tally(w, func(m models.Movement) (string, bool) {
		return dateOf(m.OccurredAt, loc).Format(time.DateOnly), m.ProductID == productID
	})

	out := make([]models.TrendPoint, 0, len(tallies))
	for day, t := range tallies {
		d, _ := time.ParseInLocation(time.DateOnly, day, loc)
		out = append(out, models.TrendPoint{Date: d, Added: t.added, Removed: t.removed})
	}
	slices.SortFunc(out, func(a, b models.TrendPoint) int { return a.Date.Compare(b.Date) })
	return out, nil
}

func (r *InMemoryUsageRepository) MonthlyChanges(_ context.Context, w Window) ([]models.MonthlyChange, error) {
	loc := w.Location()
	tallies := r.tally(w, func(m models.Movement) (string, bool) {
		return m.OccurredAt.In(loc).Format("2006-01"), true
	})

	out := make([]models.MonthlyChange, 0, len(tallies))
	for month, t := range tallies {
		out = append(out, models.MonthlyChange{
			Month:            month,
			Added:            t.added,
			Removed:          t.removed,
			ProductsAffected: len(t.products),
		})
	}
	slices.SortFunc(out, func(a, b models.MonthlyChange) int { return cmp.Compare(a.Month, b.Month) })
	return out, nil
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
