package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MovementClass buckets a product by its average daily usage.
type MovementClass string

const (
	FastMoving MovementClass = "fast_moving"
	Normal     MovementClass = "normal"
	SlowMoving MovementClass = "slow_moving"
)

// Classify compares a usage rate against the configured fast-moving threshold.
func (s *Service) Classify(usage decimal.Decimal) MovementClass {
	switch {
	case usage.GreaterThan(decimal.NewFromFloat(s.cfg.FastMovingThreshold)):
		return FastMoving
	case usage.IsPositive():
		return Normal
	default:
		return SlowMoving
	}
}

// FastMoving ranks products by units consumed over the fast-moving window.
// A non-positive limit selects the configured default; larger limits are capped.
func (s *Service) FastMoving(ctx context.Context, limit int) ([]models.FastMover, error) {
	return s.fastMoving(ctx, s.cfg.ClampLimit(limit), false)
}

// SlowMoving lists stocked products that were not consumed, or have been idle longer
// than the configured idle period, over the slow-moving window.
func (s *Service) SlowMoving(ctx context.Context, limit int) ([]models.SlowMover, error) {
	return s.slowMoving(ctx, s.cfg.ClampLimit(limit), false)
}

func (s *Service) fastMoving(ctx context.Context, limit int, refresh bool) ([]models.FastMover, error) {
	today := s.Today()
	return cached(ctx, s, rankingKey("fast", limit, today), refresh, func() ([]models.FastMover, error) {
		return s.usage.FastMovers(ctx, repo.DaysBack(today, s.cfg.FastMovingWindowDays), limit)
	})
}

func (s *Service) slowMoving(ctx context.Context, limit int, refresh bool) ([]models.SlowMover, error) {
	today := s.Today()
	return cached(ctx, s, rankingKey("slow", limit, today), refresh, func() ([]models.SlowMover, error) {
		return s.usage.SlowMovers(ctx, repo.DaysBack(today, s.cfg.SlowMovingWindowDays), s.cfg.SlowMovingIdleDays, limit)
	})
}

// WarmRankings recomputes the default-limit rankings and stores them in the cache.
func (s *Service) WarmRankings(ctx context.Context) error {
	if !s.cacheEnabled() {
		return nil
	}
	limit := s.cfg.DefaultListLimit
	if _, err := s.fastMoving(ctx, limit, true); err != nil {
		return fmt.Errorf("warm fast-moving ranking: %w", err)
	}
	if _, err := s.slowMoving(ctx, limit, true); err != nil {
		return fmt.Errorf("warm slow-moving ranking: %w", err)
	}
	return nil
}

// UsageTrend returns one point per date with ledger activity over the last days, oldest first.
func (s *Service) UsageTrend(ctx context.Context, productID, days int) ([]models.TrendPoint, error) {
	if err := s.checkDays(days); err != nil {
		return nil, err
	}
	return s.usage.Trend(ctx, productID, repo.DaysBack(s.Today(), days))
}

// MonthlyChanges summarizes ledger activity per calendar month over the last months.
func (s *Service) MonthlyChanges(ctx context.Context, months int) ([]models.MonthlyChange, error) {
	if months < 1 || months > s.cfg.MaxWindowMonths {
		return nil, fmt.Errorf("%w: months must be between 1 and %d", ErrInvalidArgument, s.cfg.MaxWindowMonths)
	}
	return s.usage.MonthlyChanges(ctx, repo.MonthsBack(s.Today(), months))
}

func (s *Service) cacheEnabled() bool {
	return s.cache != nil && s.cfg.RankingCacheTTL > 0
}

func rankingKey(list string, limit int, today time.Time) string {
	return fmt.Sprintf("analytics:%s-moving:%s:%d", list, today.Format(time.DateOnly), limit)
}

// cached serves key from the cache when possible. Cache failures are logged and
// bypassed; load failures are returned as is.
func cached[T any](ctx context.Context, s *Service, key string, refresh bool, load func() (T, error)) (T, error) {
	if !s.cacheEnabled() {
		return load()
	}

	if !refresh {
		var hit T
		found, err := s.cache.GetJSON(ctx, key, &hit)
		switch {
		case err != nil:
			s.log.Warn("ranking cache read failed", zap.String("key", key), zap.Error(err))
		case found:
			return hit, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if err := s.cache.SetJSON(ctx, key, v, s.cfg.RankingCacheTTL); err != nil {
		s.log.Warn("ranking cache write failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}
