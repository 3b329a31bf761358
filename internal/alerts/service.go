// Package alerts raises and tracks low-stock notifications.
package alerts

import (
	"context"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/logger"
	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
	"go.uber.org/zap"
)

type Service struct {
	repo repo.AlertRepository
	loc  *time.Location
	now  func() time.Time
	log  *zap.Logger
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = logger.Named(l, "alerts") }
}

// NewService builds the alert service. loc decides where one calendar day ends
// for de-duplication; nil means UTC.
func NewService(r repo.AlertRepository, loc *time.Location, opts ...Option) *Service {
	if loc == nil {
		loc = time.UTC
	}
	s := &Service{repo: r, loc: loc, now: time.Now, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckAlerts raises a low-stock alert for every product at or below its minimum
// that has no unread one from today, and reports how many were created.
func (s *Service) CheckAlerts(ctx context.Context) (int, error) {
	n, err := s.repo.GenerateLowStock(ctx, s.now(), s.loc)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("low stock alerts raised", zap.Int("created", n))
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, unreadOnly bool) ([]models.Alert, error) {
	return s.repo.GetAll(ctx, unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, id int) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	return s.repo.MarkAllRead(ctx)
}
