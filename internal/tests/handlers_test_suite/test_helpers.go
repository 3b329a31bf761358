package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/alerts"
	"github.com/rogerio-castellano/inventory-analytics/internal/analytics"
	"github.com/rogerio-castellano/inventory-analytics/internal/config"
	handler "github.com/rogerio-castellano/inventory-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-analytics/internal/http/router"
	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
)

var (
	productRepo  *repo.InMemoryProductRepository
	movementRepo *repo.InMemoryMovementRepository
	alertRepo    *repo.InMemoryAlertRepository

	// today is the analytics clock's calendar date.
	today = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	movementRepo = repo.NewInMemoryMovementRepository()
	handler.SetMovementRepo(movementRepo)

	metricsRepo := repo.NewInMemoryMetricsRepository()
	handler.SetMetricsRepo(metricsRepo)
	metricsRepo.SetRepositories(productRepo, movementRepo)

	alertRepo = repo.NewInMemoryAlertRepository()
	alertRepo.SetRepositories(productRepo)
	metricsRepo.SetAlertRepository(alertRepo)

	usageRepo := repo.NewInMemoryUsageRepository()
	usageRepo.SetRepositories(productRepo, movementRepo)

	clock := func() time.Time { return today.Add(14 * time.Hour) }
	handler.SetAnalyticsService(analytics.NewService(productRepo, usageRepo, config.Default().Analytics, analytics.WithClock(clock)))
	handler.SetAlertService(alerts.NewService(alertRepo, time.UTC, alerts.WithClock(clock)))
}

func newRouter() http.Handler {
	return router.NewRouter(router.Config{})
}

func clearAllProducts() {
	productRepo.Clear()
	movementRepo.Clear()
	alertRepo.Clear()
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adjustProduct(r http.Handler, productID int, adj handler.QuantityAdjustmentRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(adj)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/products/%d/adjust", productID), bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	return send(r, http.MethodGet, path)
}

func send(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// seedProduct stores a product directly, bypassing the ledger entry the create handler writes.
func seedProduct(name string, quantity, minStock int, createdAt time.Time) models.Product {
	p, err := productRepo.Create(context.Background(), models.Product{
		Name:          name,
		Price:         10,
		Quantity:      quantity,
		MinStockLevel: minStock,
		CreatedAt:     createdAt,
	})
	if err != nil {
		panic(fmt.Sprintf("error seeding product: %v", err))
	}
	return p
}

// addMovement records a ledger entry daysAgo days before today, at the given hour.
func addMovement(productID int, action models.Action, delta, daysAgo, hour int) {
	_, err := movementRepo.Log(context.Background(), models.Movement{
		ProductID:  productID,
		Action:     action,
		Delta:      delta,
		OccurredAt: today.AddDate(0, 0, -daysAgo).Add(time.Duration(hour) * time.Hour),
	})
	if err != nil {
		panic(fmt.Sprintf("error adding movement: %v", err))
	}
}
