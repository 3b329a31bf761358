package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RankingWarmer precomputes the cached movement rankings.
type RankingWarmer interface {
	WarmRankings(ctx context.Context) error
}

// AlertChecker raises low-stock alerts and reports how many were created.
type AlertChecker interface {
	CheckAlerts(ctx context.Context) (int, error)
}

// Scheduler runs the periodic ranking warm-up and, when registered, the
// low-stock alert check.
type Scheduler struct {
	cron          *cron.Cron
	warmer        RankingWarmer
	schedule      string
	checker       AlertChecker
	alertSchedule string
	timeout       time.Duration
	logger        *zap.Logger
}

func NewScheduler(schedule string, warmer RankingWarmer, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		warmer:   warmer,
		schedule: schedule,
		timeout:  2 * time.Minute,
		logger:   logger,
	}
}

// AddAlertCheck registers the low-stock alert job. Call it before Start.
func (s *Scheduler) AddAlertCheck(schedule string, checker AlertChecker) {
	s.alertSchedule = schedule
	s.checker = checker
}

// Start registers the jobs and starts the cron loop. The rankings are also
// warmed once immediately so the first requests after boot hit the cache.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.warmRankings); err != nil {
		return fmt.Errorf("schedule ranking warm-up %q: %w", s.schedule, err)
	}
	if s.checker != nil && s.alertSchedule != "" {
		if _, err := s.cron.AddFunc(s.alertSchedule, s.checkAlerts); err != nil {
			return fmt.Errorf("schedule alert check %q: %w", s.alertSchedule, err)
		}
	}
	s.logger.Info("starting scheduler",
		zap.String("warm_cache_schedule", s.schedule),
		zap.String("alert_check_schedule", s.alertSchedule),
	)
	s.cron.Start()
	go s.warmRankings()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) warmRankings() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.warmer.WarmRankings(ctx); err != nil {
		s.logger.Error("failed to warm rankings", zap.Error(err))
		return
	}
	s.logger.Info("rankings warmed", zap.Duration("took", time.Since(start)))
}

func (s *Scheduler) checkAlerts() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.checker.CheckAlerts(ctx)
	if err != nil {
		s.logger.Error("failed to check low stock alerts", zap.Error(err))
		return
	}
	s.logger.Debug("low stock alerts checked", zap.Int("created", n))
}
