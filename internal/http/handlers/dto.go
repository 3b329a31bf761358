package handlers

import (
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/analytics"
	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

type ProductRequest struct {
	Id            int     `json:"id,omitempty"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	MinStockLevel int     `json:"min_stock_level"`
}

type ProductResponse struct {
	Id            int     `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	LowStock      bool    `json:"low_stock,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		LowStock:      p.LowStock(),
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type QuantityAdjustmentRequest struct {
	Delta  int    `json:"delta"`            // can be positive or negative
	Action string `json:"action,omitempty"` // add, remove, sold or update
}

type MovementResponse struct {
	ID             int    `json:"id"`
	ProductID      int    `json:"product_id"`
	Action         string `json:"action"`
	Delta          int    `json:"delta"`
	QuantityBefore int    `json:"quantity_before"`
	QuantityAfter  int    `json:"quantity_after"`
	OccurredAt     string `json:"occurred_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type DailyUsageResponse struct {
	ProductID         int     `json:"product_id"`
	AverageDailyUsage float64 `json:"average_daily_usage"`
	PeriodDays        int     `json:"period_days"`
}

type StockoutPrediction struct {
	DaysRemaining     int     `json:"days_remaining"`
	PredictedDate     string  `json:"predicted_date"`
	AverageDailyUsage float64 `json:"average_daily_usage"`
	CurrentStock      int     `json:"current_stock"`
}

func toStockoutPrediction(p *analytics.StockoutPrediction) *StockoutPrediction {
	if p == nil {
		return nil
	}
	return &StockoutPrediction{
		DaysRemaining:     p.DaysRemaining,
		PredictedDate:     p.PredictedDate.Format(time.DateOnly),
		AverageDailyUsage: p.AverageDailyUsage.InexactFloat64(),
		CurrentStock:      p.CurrentStock,
	}
}

type StockoutPredictionResponse struct {
	ProductID  int                 `json:"product_id"`
	Prediction *StockoutPrediction `json:"prediction"`
	Message    string              `json:"message,omitempty"`
}

type RestockRecommendation struct {
	RecommendedQuantity int    `json:"recommended_quantity"`
	Reasoning           string `json:"reasoning"`
}

func toRestockRecommendation(r *analytics.RestockRecommendation) *RestockRecommendation {
	if r == nil {
		return nil
	}
	return &RestockRecommendation{RecommendedQuantity: r.RecommendedQuantity, Reasoning: r.Reasoning}
}

type RestockParameters struct {
	LeadTimeDays          int `json:"lead_time_days"`
	SafetyStockPercentage int `json:"safety_stock_percentage"`
}

type RestockRecommendationResponse struct {
	ProductID      int                    `json:"product_id"`
	Recommendation *RestockRecommendation `json:"recommendation"`
	Parameters     RestockParameters      `json:"parameters"`
}

type TrendPoint struct {
	Date    string `json:"date"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
}

func toTrend(points []models.TrendPoint) []TrendPoint {
	out := make([]TrendPoint, len(points))
	for i, p := range points {
		out[i] = TrendPoint{Date: p.Date.Format(time.DateOnly), Added: p.Added, Removed: p.Removed}
	}
	return out
}

type UsageTrendResponse struct {
	ProductID  int          `json:"product_id"`
	Trend      []TrendPoint `json:"trend"`
	PeriodDays int          `json:"period_days"`
}

type InsightsResponse struct {
	Product                ProductResponse        `json:"product"`
	AverageDailyUsage      float64                `json:"average_daily_usage"`
	UsagePeriodDays        int                    `json:"usage_period_days"`
	StockoutPrediction     *StockoutPrediction    `json:"stockout_prediction"`
	RestockRecommendation  *RestockRecommendation `json:"restock_recommendation"`
	UsageTrend             []TrendPoint           `json:"usage_trend"`
	MovementClassification string                 `json:"movement_classification"`
}

type AlertResponse struct {
	ID          int    `json:"id"`
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	AlertType   string `json:"alert_type"`
	Message     string `json:"message"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
}

func toAlertResponse(a models.Alert) AlertResponse {
	return AlertResponse{
		ID:          a.ID,
		ProductID:   a.ProductID,
		ProductName: a.ProductName,
		AlertType:   string(a.Type),
		Message:     a.Message,
		IsRead:      a.IsRead,
		CreatedAt:   formatTime(a.CreatedAt),
	}
}

type AlertsResponse struct {
	Data []AlertResponse `json:"data"`
	Meta Meta            `json:"meta"`
}

type AlertCheckResponse struct {
	Created int `json:"created"`
}

type AlertsReadResponse struct {
	Updated int `json:"updated"`
}
