package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
	"github.com/shopspring/decimal"
)

// UsageEstimate is a product's average daily consumption over a window.
type UsageEstimate struct {
	ProductID         int
	AverageDailyUsage decimal.Decimal
	PeriodDays        int
	TotalRemoved      int
	ActiveDays        int
}

// StockoutPrediction projects when current stock runs out at the current usage rate.
type StockoutPrediction struct {
	CurrentStock      int
	AverageDailyUsage decimal.Decimal
	DaysRemaining     int
	PredictedDate     time.Time
}

// RestockRecommendation is the quantity to order now to cover the lead time plus a safety buffer.
type RestockRecommendation struct {
	RecommendedQuantity int
	Reasoning           string
	AverageDailyUsage   decimal.Decimal
	LeadTimeDays        int
	SafetyStockPercent  int
}

// AverageDailyUsage divides units removed or sold in the last days (plus today) by the
// number of dates with any ledger activity. The product is not looked up; an unknown
// id yields zero.
func (s *Service) AverageDailyUsage(ctx context.Context, productID, days int) (UsageEstimate, error) {
	if err := s.checkDays(days); err != nil {
		return UsageEstimate{}, err
	}

	summary, err := s.usage.UsageSummary(ctx, productID, repo.DaysBack(s.Today(), days))
	if err != nil {
		return UsageEstimate{}, err
	}

	return UsageEstimate{
		ProductID:         productID,
		AverageDailyUsage: averageDailyUsage(summary),
		PeriodDays:        days,
		TotalRemoved:      summary.TotalRemoved,
		ActiveDays:        summary.ActiveDays,
	}, nil
}

func averageDailyUsage(s models.UsageSummary) decimal.Decimal {
	if s.TotalRemoved <= 0 {
		return decimal.Zero
	}
	days := max(s.ActiveDays, 1)
	return decimal.NewFromInt(int64(s.TotalRemoved)).Div(decimal.NewFromInt(int64(days))).Round(2)
}

// PredictStockout returns repo.ErrProductNotFound for an unknown product and a nil
// prediction without error when there is no usage signal.
func (s *Service) PredictStockout(ctx context.Context, productID int) (*StockoutPrediction, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	est, err := s.AverageDailyUsage(ctx, productID, s.cfg.UsageWindowDays)
	if err != nil {
		return nil, err
	}
	return predictStockout(product, est.AverageDailyUsage, s.Today()), nil
}

func predictStockout(p models.Product, usage decimal.Decimal, today time.Time) *StockoutPrediction {
	if !usage.IsPositive() {
		return nil
	}
	days := int(decimal.NewFromInt(int64(p.Quantity)).Div(usage).Floor().IntPart())
	return &StockoutPrediction{
		CurrentStock:      p.Quantity,
		AverageDailyUsage: usage,
		DaysRemaining:     days,
		PredictedDate:     today.AddDate(0, 0, days),
	}
}

// RecommendRestock sizes an order as lead-time usage plus a safety buffer, less stock
// on hand. The buffer is floored at the product's minimum stock level and the result is
// again floored at the shortfall to that level.
func (s *Service) RecommendRestock(ctx context.Context, productID, leadTimeDays, safetyStockPercent int) (*RestockRecommendation, error) {
	if leadTimeDays < 0 || safetyStockPercent < 0 {
		return nil, fmt.Errorf("%w: lead time and safety stock percent must not be negative", ErrInvalidArgument)
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	est, err := s.AverageDailyUsage(ctx, productID, s.cfg.UsageWindowDays)
	if err != nil {
		return nil, err
	}
	return recommendRestock(product, est.AverageDailyUsage, leadTimeDays, safetyStockPercent), nil
}

func recommendRestock(p models.Product, usage decimal.Decimal, leadTimeDays, safetyStockPercent int) *RestockRecommendation {
	leadUsage := usage.Mul(decimal.NewFromInt(int64(leadTimeDays)))
	minStock := decimal.NewFromInt(int64(p.MinStockLevel))
	safety := decimal.Max(
		leadUsage.Mul(decimal.NewFromInt(int64(safetyStockPercent))).Div(decimal.NewFromInt(100)),
		minStock,
	)
	raw := int(leadUsage.Add(safety).Sub(decimal.NewFromInt(int64(p.Quantity))).Ceil().IntPart())

	return &RestockRecommendation{
		RecommendedQuantity: max(raw, p.MinStockLevel-p.Quantity, 0),
		Reasoning: fmt.Sprintf("Based on average daily usage of %s units, %d-day lead time, and %d%% safety stock buffer.",
			usage.String(), leadTimeDays, safetyStockPercent),
		AverageDailyUsage:  usage,
		LeadTimeDays:       leadTimeDays,
		SafetyStockPercent: safetyStockPercent,
	}
}
