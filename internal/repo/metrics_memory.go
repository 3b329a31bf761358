package repo

import (
	"context"
	"math"
)

type InMemoryMetricsRepository struct {
	productRepo  ProductRepository
	movementRepo MovementRepository
	alertRepo    AlertRepository
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	m := Metrics{}

	products, err := i.productRepo.GetAll(ctx)
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)

	for _, product := range products {
		_, count, err := i.movementRepo.GetByProductID(ctx, product.ID, MovementFilter{})
		if err != nil {
			return m, err
		}
		m.TotalMovements += count
		if count > m.MostMovedProduct.MovementCount {
			m.MostMovedProduct.Name = product.Name
			m.MostMovedProduct.MovementCount = count
		}

		if product.LowStock() {
			m.LowStockCount++
		}
		if product.Quantity == 0 {
			m.OutOfStockCount++
		}
		m.TotalQuantity += product.Quantity
		m.StockValue += product.Price * float64(product.Quantity)
	}
	m.StockValue = math.Round(m.StockValue*100) / 100

	if i.alertRepo != nil {
		if m.UnreadAlerts, err = i.alertRepo.UnreadCount(ctx); err != nil {
			return m, err
		}
	}

	return m, nil
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo ProductRepository,
	movementRepo MovementRepository,
) {
	i.productRepo = productRepo
	i.movementRepo = movementRepo
}

// SetAlertRepository enables the unread alert count; without it the count stays zero.
func (i *InMemoryMetricsRepository) SetAlertRepository(alertRepo AlertRepository) {
	i.alertRepo = alertRepo
}
