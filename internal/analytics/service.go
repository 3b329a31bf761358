// Package analytics derives usage rates, stockout projections, restock
// recommendations and movement rankings from the stock-change ledger.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/config"
	"github.com/rogerio-castellano/inventory-analytics/internal/logger"
	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
	"go.uber.org/zap"
)

// ErrInvalidArgument is returned for out-of-range windows, limits, lead times or percentages.
var ErrInvalidArgument = errors.New("invalid argument")

// ProductReader is the slice of the product store the analytics need.
type ProductReader interface {
	GetByID(ctx context.Context, id int) (models.Product, error)
}

// Cache stores JSON-encodable ranking results.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Service struct {
	products ProductReader
	usage    repo.UsageRepository
	cfg      config.AnalyticsConfig
	cache    Cache
	now      func() time.Time
	log      *zap.Logger
}

type Option func(*Service)

// WithCache enables ranking caching; a nil cache leaves it disabled.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = logger.Named(l, "analytics") }
}

func NewService(products ProductReader, usage repo.UsageRepository, cfg config.AnalyticsConfig, opts ...Option) *Service {
	s := &Service{
		products: products,
		usage:    usage,
		cfg:      cfg,
		now:      time.Now,
		log:      zap.NewNop(),
	}
	if s.cfg.Location == nil {
		s.cfg.Location = time.UTC
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config exposes the defaults callers fall back to when a parameter is omitted.
func (s *Service) Config() config.AnalyticsConfig {
	return s.cfg
}

// Today is the current calendar date at midnight in the reporting time zone.
func (s *Service) Today() time.Time {
	y, m, d := s.now().In(s.cfg.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.cfg.Location)
}

func (s *Service) checkDays(days int) error {
	if days < 1 || days > s.cfg.MaxWindowDays {
		return fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidArgument, s.cfg.MaxWindowDays)
	}
	return nil
}
