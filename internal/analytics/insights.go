package analytics

import (
	"context"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// Insights gathers every per-product analytic computed with the configured defaults.
type Insights struct {
	Product                models.Product
	AverageDailyUsage      decimal.Decimal
	UsagePeriodDays        int
	StockoutPrediction     *StockoutPrediction
	RestockRecommendation  *RestockRecommendation
	UsageTrend             []models.TrendPoint
	MovementClassification MovementClass
}

func (s *Service) Insights(ctx context.Context, productID int) (*Insights, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	est, err := s.AverageDailyUsage(ctx, productID, s.cfg.UsageWindowDays)
	if err != nil {
		return nil, err
	}
	trend, err := s.UsageTrend(ctx, productID, s.cfg.UsageWindowDays)
	if err != nil {
		return nil, err
	}

	usage := est.AverageDailyUsage
	return &Insights{
		Product:                product,
		AverageDailyUsage:      usage,
		UsagePeriodDays:        est.PeriodDays,
		StockoutPrediction:     predictStockout(product, usage, s.Today()),
		RestockRecommendation:  recommendRestock(product, usage, s.cfg.DefaultLeadTimeDays, s.cfg.DefaultSafetyStockPercent),
		UsageTrend:             trend,
		MovementClassification: s.Classify(usage),
	}, nil
}
