package alerts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var now = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T, opts ...Option) (*Service, *repo.InMemoryProductRepository) {
	t.Helper()
	products := repo.NewInMemoryProductRepository()
	alertRepo := repo.NewInMemoryAlertRepository()
	alertRepo.SetRepositories(products)

	for _, p := range []models.Product{
		{Name: "Widget", Quantity: 3, MinStockLevel: 5},
		{Name: "Gadget", Quantity: 50, MinStockLevel: 5},
	} {
		_, err := products.Create(context.Background(), p)
		require.NoError(t, err)
	}

	opts = append([]Option{WithClock(func() time.Time { return now })}, opts...)
	return NewService(alertRepo, nil, opts...), products
}

func TestCheckAlerts(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc, _ := newService(t, WithLogger(zap.New(core)))
	ctx := context.Background()

	n, err := svc.CheckAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.CheckAlerts(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	entries := logs.FilterMessage("low stock alerts raised").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "alerts", entries[0].LoggerName)
	assert.Equal(t, int64(1), entries[0].ContextMap()["created"])

	list, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Widget", list[0].ProductName)
	assert.Equal(t, now, list[0].CreatedAt)
}

func TestMarkRead(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, err := svc.CheckAlerts(ctx)
	require.NoError(t, err)

	assert.True(t, errors.Is(svc.MarkRead(ctx, 42), repo.ErrAlertNotFound))
	require.NoError(t, svc.MarkRead(ctx, 1))

	unread, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsRead)
}

func TestMarkAllRead(t *testing.T) {
	svc, products := newService(t)
	ctx := context.Background()
	_, err := products.AdjustQuantity(ctx, 2, -48)
	require.NoError(t, err)

	n, err := svc.CheckAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
