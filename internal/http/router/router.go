package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/inventory-analytics/docs"
	"github.com/rogerio-castellano/inventory-analytics/internal/http/handlers"
	mw "github.com/rogerio-castellano/inventory-analytics/internal/http/middleware"
	rl "github.com/rogerio-castellano/inventory-analytics/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Config carries the optional collaborators of the router.
type Config struct {
	Logger  *zap.Logger
	Limiter *rl.Limiter // nil disables rate limiting
}

func NewRouter(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(logger.Named("http")))
	if cfg.Limiter != nil {
		r.Use(mw.RateLimit(cfg.Limiter))
	}
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/products", func(r chi.Router) {
		r.Post("/", handlers.CreateProductHandler)
		r.Get("/", handlers.GetProductsHandler)
		r.Get("/{id}", handlers.GetProductByIDHandler)
		r.Put("/{id}", handlers.UpdateProductHandler)
		r.Delete("/{id}", handlers.DeleteProductHandler)
		r.Post("/{id}/adjust", handlers.AdjustQuantityHandler)
		r.Get("/{id}/movements", handlers.GetMovementsHandler)
	})

	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	r.Route("/alerts", func(r chi.Router) {
		r.Get("/", handlers.GetAlertsHandler)
		r.Post("/check", handlers.CheckAlertsHandler)
		r.Put("/read-all", handlers.MarkAllAlertsReadHandler)
		r.Put("/{id}/read", handlers.MarkAlertReadHandler)
	})

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/products/{id}/daily-usage", handlers.GetDailyUsageHandler)
		r.Get("/products/{id}/stockout-prediction", handlers.GetStockoutPredictionHandler)
		r.Get("/products/{id}/restock-recommendation", handlers.GetRestockRecommendationHandler)
		r.Get("/products/{id}/insights", handlers.GetProductInsightsHandler)
		r.Get("/products/{id}/usage-trend", handlers.GetUsageTrendHandler)
		r.Get("/fast-moving", handlers.GetFastMovingHandler)
		r.Get("/slow-moving", handlers.GetSlowMovingHandler)
		r.Get("/monthly-changes", handlers.GetMonthlyChangesHandler)
	})

	return r
}
