package handlers

import (
	"github.com/rogerio-castellano/inventory-analytics/internal/alerts"
	"github.com/rogerio-castellano/inventory-analytics/internal/analytics"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
	"go.uber.org/zap"
)

var (
	productRepo  repo.ProductRepository
	movementRepo repo.MovementRepository
	metricsRepo  repo.MetricsRepository
	analyticsSvc *analytics.Service
	alertSvc     *alerts.Service

	logger = zap.NewNop()
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetAnalyticsService(s *analytics.Service) {
	analyticsSvc = s
}

func SetAlertService(s *alerts.Service) {
	alertSvc = s
}

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Named("http")
}
