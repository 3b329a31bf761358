package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/inventory-analytics/internal/analytics"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
)

const insufficientDataMessage = "Insufficient usage data to predict stockout"

// analyticsError maps service errors onto responses.
func analyticsError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.Is(err, analytics.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		serverError(w, r, msg, err)
	}
}

// positiveQuery reads an optional query parameter that must be at least 1 when present.
func positiveQuery(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	v, err := queryInt(r, name, def)
	if err != nil || v < 1 {
		http.Error(w, name+" must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func nonNegativeQuery(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	v, err := queryInt(r, name, def)
	if err != nil || v < 0 {
		http.Error(w, name+" must be a non-negative integer", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

// GetDailyUsageHandler godoc
// @Summary Average daily usage of a product
// @Description Units removed or sold over the window divided by the number of days with any stock movement.
// @Tags analytics
// @Produce json
// @Param id path int true "Product ID"
// @Param days query int false "Window in days" default(30)
// @Success 200 {object} DailyUsageResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/products/{id}/daily-usage [get]
func GetDailyUsageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	days, ok := positiveQuery(w, r, "days", analyticsSvc.Config().UsageWindowDays)
	if !ok {
		return
	}

	est, err := analyticsSvc.AverageDailyUsage(r.Context(), id, days)
	if err != nil {
		analyticsError(w, r, "could not compute daily usage", err)
		return
	}
	respond(w, r, http.StatusOK, DailyUsageResponse{
		ProductID:         id,
		AverageDailyUsage: est.AverageDailyUsage.InexactFloat64(),
		PeriodDays:        est.PeriodDays,
	})
}

// GetStockoutPredictionHandler godoc
// @Summary Predict when a product runs out of stock
// @Description The prediction is null, with a message, when the product has no recent usage.
// @Tags analytics
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} StockoutPredictionResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/products/{id}/stockout-prediction [get]
func GetStockoutPredictionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	prediction, err := analyticsSvc.PredictStockout(r.Context(), id)
	if err != nil {
		analyticsError(w, r, "could not predict stockout", err)
		return
	}

	resp := StockoutPredictionResponse{ProductID: id, Prediction: toStockoutPrediction(prediction)}
	if prediction == nil {
		resp.Message = insufficientDataMessage
	}
	respond(w, r, http.StatusOK, resp)
}

// GetRestockRecommendationHandler godoc
// @Summary Recommend a restock quantity
// @Tags analytics
// @Produce json
// @Param id path int true "Product ID"
// @Param lead_time query int false "Supplier lead time in days" default(7)
// @Param safety_stock_percent query int false "Safety stock as a percentage of lead-time usage" default(20)
// @Success 200 {object} RestockRecommendationResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/products/{id}/restock-recommendation [get]
func GetRestockRecommendationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	cfg := analyticsSvc.Config()
	leadTime, ok := nonNegativeQuery(w, r, "lead_time", cfg.DefaultLeadTimeDays)
	if !ok {
		return
	}
	safety, ok := nonNegativeQuery(w, r, "safety_stock_percent", cfg.DefaultSafetyStockPercent)
	if !ok {
		return
	}

	rec, err := analyticsSvc.RecommendRestock(r.Context(), id, leadTime, safety)
	if err != nil {
		analyticsError(w, r, "could not compute restock recommendation", err)
		return
	}
	respond(w, r, http.StatusOK, RestockRecommendationResponse{
		ProductID:      id,
		Recommendation: toRestockRecommendation(rec),
		Parameters:     RestockParameters{LeadTimeDays: leadTime, SafetyStockPercentage: safety},
	})
}

// GetProductInsightsHandler godoc
// @Summary All usage analytics for a product
// @Tags analytics
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} InsightsResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/products/{id}/insights [get]
func GetProductInsightsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	in, err := analyticsSvc.Insights(r.Context(), id)
	if err != nil {
		analyticsError(w, r, "could not compute product insights", err)
		return
	}
	respond(w, r, http.StatusOK, InsightsResponse{
		Product:                toProductResponse(in.Product),
		AverageDailyUsage:      in.AverageDailyUsage.InexactFloat64(),
		UsagePeriodDays:        in.UsagePeriodDays,
		StockoutPrediction:     toStockoutPrediction(in.StockoutPrediction),
		RestockRecommendation:  toRestockRecommendation(in.RestockRecommendation),
		UsageTrend:             toTrend(in.UsageTrend),
		MovementClassification: string(in.MovementClassification),
	})
}

// GetUsageTrendHandler godoc
// @Summary Daily added and removed units for a product
// @Description Only dates with at least one stock movement are returned.
// @Tags analytics
// @Produce json
// @Param id path int true "Product ID"
// @Param days query int false "Window in days" default(30)
// @Success 200 {object} UsageTrendResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/products/{id}/usage-trend [get]
func GetUsageTrendHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	days, ok := positiveQuery(w, r, "days", analyticsSvc.Config().UsageWindowDays)
	if !ok {
		return
	}

	trend, err := analyticsSvc.UsageTrend(r.Context(), id, days)
	if err != nil {
		analyticsError(w, r, "could not compute usage trend", err)
		return
	}
	respond(w, r, http.StatusOK, UsageTrendResponse{ProductID: id, Trend: toTrend(trend), PeriodDays: days})
}

// GetFastMovingHandler godoc
// @Summary Products with the highest usage over the last 30 days
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} models.FastMover
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/fast-moving [get]
func GetFastMovingHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := positiveQuery(w, r, "limit", analyticsSvc.Config().DefaultListLimit)
	if !ok {
		return
	}
	rows, err := analyticsSvc.FastMoving(r.Context(), limit)
	if err != nil {
		analyticsError(w, r, "could not rank fast-moving products", err)
		return
	}
	respond(w, r, http.StatusOK, rows)
}

// GetSlowMovingHandler godoc
// @Summary Stocked products with no or stale usage over the last 90 days
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} models.SlowMover
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/slow-moving [get]
func GetSlowMovingHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := positiveQuery(w, r, "limit", analyticsSvc.Config().DefaultListLimit)
	if !ok {
		return
	}
	rows, err := analyticsSvc.SlowMoving(r.Context(), limit)
	if err != nil {
		analyticsError(w, r, "could not rank slow-moving products", err)
		return
	}
	respond(w, r, http.StatusOK, rows)
}

// GetMonthlyChangesHandler godoc
// @Summary Units added and removed per calendar month
// @Tags analytics
// @Produce json
// @Param months query int false "Number of months back" default(6)
// @Success 200 {array} models.MonthlyChange
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/monthly-changes [get]
func GetMonthlyChangesHandler(w http.ResponseWriter, r *http.Request) {
	months, ok := positiveQuery(w, r, "months", analyticsSvc.Config().MonthlyChangesMonths)
	if !ok {
		return
	}
	rows, err := analyticsSvc.MonthlyChanges(r.Context(), months)
	if err != nil {
		analyticsError(w, r, "could not compute monthly changes", err)
		return
	}
	respond(w, r, http.StatusOK, rows)
}
