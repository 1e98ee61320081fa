package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ec-shop/storefront-api/internal/domain"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

func seedCustomer(users *mockUserRepo) *domain.User {
	customer := &domain.User{
		ID:        "cust-1",
		FirstName: "Ana",
		LastName:  "Garcia",
		Email:     "ana@example.com",
		Role:      domain.RoleCustomer,
	}
	_ = users.Create(context.Background(), customer)
	return customer
}

func seedProduct(products *mockProductRepo, id string, stock int) *domain.Product {
	product := &domain.Product{
		ID:    id,
		Name:  "Samsung TV",
		Price: decimal.NewFromInt(500),
		Stock: stock,
	}
	_ = products.Create(context.Background(), product)
	return product
}

func orderInput(productID string, qty int) PlaceOrderInput {
	unit := decimal.NewFromInt(500)
	total := unit.Mul(decimal.NewFromInt(int64(qty)))
	return PlaceOrderInput{
		Items: []domain.OrderItem{{
			ProductID:   productID,
			ProductName: "Samsung TV",
			Quantity:    qty,
			UnitPrice:   unit,
			TotalPrice:  total,
		}},
		TotalAmount:      total,
		RequiresShipping: true,
		ShippingCost:     decimal.NewFromInt(10),
		FinalTotal:       total.Add(decimal.NewFromInt(10)),
	}
}

func TestPlaceOrder_EmptyItems(t *testing.T) {
	orders, products, users := newMockOrderRepo(), newMockProductRepo(), newMockUserRepo()
	svc := NewOrderService(orders, products, users, nil)

	_, err := svc.PlaceOrder(context.Background(), "cust-1", PlaceOrderInput{})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	orders, products, users := newMockOrderRepo(), newMockProductRepo(), newMockUserRepo()
	seedCustomer(users)
	seedProduct(products, "prod-1", 2)
	svc := NewOrderService(orders, products, users, nil)

	_, err := svc.PlaceOrder(context.Background(), "cust-1", orderInput("prod-1", 3))
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Contains(t, domainErr.Message, "Samsung TV")

	// No partial effects: stock untouched, nothing persisted.
	assert.Equal(t, 2, products.stockOf("prod-1"))
	all, _ := orders.ListAll(context.Background())
	assert.Empty(t, all)
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	orders, products, users := newMockOrderRepo(), newMockProductRepo(), newMockUserRepo()
	seedCustomer(users)
	svc := NewOrderService(orders, products, users, nil)

	_, err := svc.PlaceOrder(context.Background(), "cust-1", orderInput("missing", 1))
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestPlaceOrder_Success(t *testing.T) {
	orders, products, users := newMockOrderRepo(), newMockProductRepo(), newMockUserRepo()
	seedCustomer(users)
	seedProduct(products, "prod-1", 5)
	svc := NewOrderService(orders, products, users, nil)

	input := orderInput("prod-1", 2)
	orderID, err := svc.PlaceOrder(context.Background(), "cust-1", input)
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	order, err := orders.GetByID(context.Background(), orderID)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 3, products.stockOf("prod-1"))

	// Identity fields come from the account, not the payload.
	assert.Equal(t, "Ana Garcia", order.CustomerName)
	assert.Equal(t, "ana@example.com", order.CustomerEmail)

	// Accepted orders satisfy finalTotal == totalAmount + shippingCost.
	assert.True(t, order.FinalTotal.Equal(order.TotalAmount.Add(order.ShippingCost)))
}

func TestPlaceOrder_ClientSuppliedTotalsStoredAsIs(t *testing.T) {
	orders, products, users := newMockOrderRepo(), newMockProductRepo(), newMockUserRepo()
	seedCustomer(users)
	seedProduct(products, "prod-1", 5)
	svc := NewOrderService(orders, products, users, nil)

	// A lying client: totals bear no relation to the line items. The
	// current design stores them without recomputation.
	input := orderInput("prod-1", 2)
	input.TotalAmount = decimal.NewFromInt(1)
	input.FinalTotal = decimal.NewFromInt(2)

	orderID, err := svc.PlaceOrder(context.Background(), "cust-1", input)
	require.NoError(t, err)

	order, _ := orders.GetByID(context.Background(), orderID)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(1)))
	assert.True(t, order.FinalTotal.Equal(decimal.NewFromInt(2)))
}

// TestPlaceOrder_ConcurrentOversell pins down the known race between the
// stock pre-check and the decrement: two concurrent orders for the last unit
// both pass the pre-check, both orders persist, and only one decrement
// lands. The oversell is a documented limitation of the two-phase design,
// not correct behavior.
func TestPlaceOrder_ConcurrentOversell(t *testing.T) {
	orders, products, users := newMockOrderRepo(), newMockProductRepo(), newMockUserRepo()
	seedCustomer(users)
	seedProduct(products, "prod-1", 1)
	svc := NewOrderService(orders, products, users, nil)

	// Hold both goroutines at their first stock read until each has read
	// the pre-decrement value.
	ready := make(chan struct{})
	var arrived int32
	products.onGetByID = func(string) {
		if atomic.AddInt32(&arrived, 1) == 2 {
			close(ready)
		}
		<-ready
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.PlaceOrder(context.Background(), "cust-1", orderInput("prod-1", 1))
		}(i)
	}
	wg.Wait()

	require.NoError(t, results[0])
	require.NoError(t, results[1])

	// Both orders were accepted against a single unit of stock.
	all, _ := orders.ListAll(context.Background())
	assert.Len(t, all, 2)
	// The skip-if-insufficient decrement keeps stock non-negative even
	// though demand exceeded supply.
	assert.Equal(t, 0, products.stockOf("prod-1"))
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	orders := newMockOrderRepo()
	svc := NewOrderService(orders, newMockProductRepo(), newMockUserRepo(), nil)

	_, err := svc.UpdateStatus(context.Background(), "admin-1", "order-1", "cancelled")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo(), newMockProductRepo(), newMockUserRepo(), nil)

	_, err := svc.UpdateStatus(context.Background(), "admin-1", "missing", domain.OrderStatusPrepared)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}

func TestUpdateStatus_DirectJumpAllowed(t *testing.T) {
	orders := newMockOrderRepo()
	_ = orders.Create(context.Background(), &domain.Order{ID: "order-1", Status: domain.OrderStatusPending})
	svc := NewOrderService(orders, newMockProductRepo(), newMockUserRepo(), nil)

	// The endpoint performs no transition-validity check: pending can jump
	// straight to shipped.
	order, err := svc.UpdateStatus(context.Background(), "admin-1", "order-1", domain.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, order.Status)

	// And backwards is equally accepted by the current logic.
	order, err = svc.UpdateStatus(context.Background(), "admin-1", "order-1", domain.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}
