package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ec-shop/storefront-api/internal/domain"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

func seedOrder(orders *mockOrderRepo, id string, status domain.OrderStatus, finalTotal int64, createdAt time.Time, items ...domain.OrderItem) {
	_ = orders.Create(context.Background(), &domain.Order{
		ID:         id,
		Status:     status,
		FinalTotal: decimal.NewFromInt(finalTotal),
		Items:      items,
		CreatedAt:  createdAt,
	})
}

func TestSummarize_InvalidPeriod(t *testing.T) {
	svc := NewFinancialService(newMockOrderRepo(), nil, nil)

	_, err := svc.Summarize(context.Background(), "year")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestSummarize_EmptyStore(t *testing.T) {
	svc := NewFinancialService(newMockOrderRepo(), nil, nil)

	summary, err := svc.Summarize(context.Background(), PeriodAll)
	require.NoError(t, err)

	assert.True(t, summary.TotalRevenue.IsZero())
	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, map[string]int{"pending": 0, "prepared": 0, "shipped": 0}, summary.OrdersByStatus)
	assert.Empty(t, summary.TopProducts)
}

func TestSummarize_Aggregates(t *testing.T) {
	orders := newMockOrderRepo()
	now := time.Now()
	seedOrder(orders, "order-1", domain.OrderStatusPending, 110, now,
		domain.OrderItem{ProductID: "prod-1", ProductName: "TV", Quantity: 1, TotalPrice: decimal.NewFromInt(100)})
	seedOrder(orders, "order-2", domain.OrderStatusShipped, 260, now,
		domain.OrderItem{ProductID: "prod-1", ProductName: "TV", Quantity: 1, TotalPrice: decimal.NewFromInt(100)},
		domain.OrderItem{ProductID: "prod-2", ProductName: "Fridge", Quantity: 1, TotalPrice: decimal.NewFromInt(150)})
	svc := NewFinancialService(orders, nil, nil)

	summary, err := svc.Summarize(context.Background(), PeriodAll)
	require.NoError(t, err)

	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(370)))
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 1, summary.OrdersByStatus["pending"])
	assert.Equal(t, 1, summary.OrdersByStatus["shipped"])
	assert.Equal(t, 0, summary.OrdersByStatus["prepared"])

	// Per-product rollup across orders, ordered by revenue.
	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, "TV", summary.TopProducts[0].Name)
	assert.Equal(t, 2, summary.TopProducts[0].Quantity)
	assert.True(t, summary.TopProducts[0].Revenue.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "Fridge", summary.TopProducts[1].Name)
}

func TestSummarize_TopProductsCappedAtFive(t *testing.T) {
	orders := newMockOrderRepo()
	items := make([]domain.OrderItem, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, domain.OrderItem{
			ProductID:   fmt.Sprintf("prod-%d", i),
			ProductName: fmt.Sprintf("Product %d", i),
			Quantity:    1,
			TotalPrice:  decimal.NewFromInt(int64(10 * (i + 1))),
		})
	}
	seedOrder(orders, "order-1", domain.OrderStatusPending, 280, time.Now(), items...)
	svc := NewFinancialService(orders, nil, nil)

	summary, err := svc.Summarize(context.Background(), PeriodAll)
	require.NoError(t, err)

	require.Len(t, summary.TopProducts, 5)
	// Highest revenue first.
	assert.Equal(t, "Product 6", summary.TopProducts[0].Name)
	assert.Equal(t, "Product 2", summary.TopProducts[4].Name)
}

func TestSummarize_PeriodFiltering(t *testing.T) {
	orders := newMockOrderRepo()
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	seedOrder(orders, "recent", domain.OrderStatusPending, 100, base.AddDate(0, 0, -2))
	seedOrder(orders, "last-month", domain.OrderStatusPending, 200, base.AddDate(0, 0, -20))
	seedOrder(orders, "ancient", domain.OrderStatusPending, 300, base.AddDate(0, -3, 0))

	svc := NewFinancialService(orders, nil, nil)
	svc.now = func() time.Time { return base }

	week, err := svc.Summarize(context.Background(), PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, 1, week.TotalOrders)
	assert.True(t, week.TotalRevenue.Equal(decimal.NewFromInt(100)))

	month, err := svc.Summarize(context.Background(), PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, 2, month.TotalOrders)
	assert.True(t, month.TotalRevenue.Equal(decimal.NewFromInt(300)))

	all, err := svc.Summarize(context.Background(), PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalOrders)
	assert.True(t, all.TotalRevenue.Equal(decimal.NewFromInt(600)))
}
