package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

// Window is a half-open time range [Since, Until). Calendar dates inside it are
// bucketed in Since's location.
type Window struct {
	Since time.Time
	Until time.Time
}

// DaysBack covers the given number of whole days before today plus today itself.
// today must be a midnight in the reporting location.
func DaysBack(today time.Time, days int) Window {
	return Window{Since: today.AddDate(0, 0, -days), Until: today.AddDate(0, 0, 1)}
}

// MonthsBack covers the given number of calendar months before today plus today itself.
func MonthsBack(today time.Time, months int) Window {
	return Window{Since: today.AddDate(0, -months, 0), Until: today.AddDate(0, 0, 1)}
}

func (w Window) Location() *time.Location { return w.Since.Location() }

// Today is the last calendar date of the window.
func (w Window) Today() time.Time { return w.Until.AddDate(0, 0, -1) }

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Since) && t.Before(w.Until)
}

// UsageRepository runs the grouped, read-only ledger queries behind the analytics service.
type UsageRepository interface {
	// UsageSummary aggregates one product's ledger. An unknown product yields a zero summary.
	UsageSummary(ctx context.Context, productID int, w Window) (models.UsageSummary, error)
	// FastMovers lists products with positive usage, highest usage first.
	FastMovers(ctx context.Context, w Window, limit int) ([]models.FastMover, error)
	// SlowMovers lists stocked products that saw no usage or have been idle longer than idleDays.
	SlowMovers(ctx context.Context, w Window, idleDays, limit int) ([]models.SlowMover, error)
	// Trend returns one point per date with ledger activity, oldest first.
	Trend(ctx context.Context, productID int, w Window) ([]models.TrendPoint, error)
	// MonthlyChanges returns one row per calendar month with ledger activity, oldest first.
	MonthlyChanges(ctx context.Context, w Window) ([]models.MonthlyChange, error)
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// daysBetween counts calendar days from a to b, ignoring DST shifts.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
