package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ec-shop/storefront-api/internal/domain"
	"github.com/ec-shop/storefront-api/internal/events"
	"github.com/ec-shop/storefront-api/internal/repository"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

// PlaceOrderInput is the checkout payload. Totals are taken as the client
// sent them; the server stores them without recomputation. Customer name and
// email are NOT part of the input: they are resolved from the account.
type PlaceOrderInput struct {
	Items            []domain.OrderItem
	TotalAmount      decimal.Decimal
	RequiresShipping bool
	ShippingCost     decimal.Decimal
	FinalTotal       decimal.Decimal
	ShippingAddress  domain.Address
}

// OrderService turns cart payloads into durable orders and manages status
// transitions.
type OrderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, users repository.UserRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, products: products, users: users, dispatcher: dispatcher}
}

// PlaceOrder validates stock, persists the order and decrements inventory.
//
// The stock pre-check and the later decrement are independent read-then-write
// sequences per product. Between the check and the decrement another request
// can consume the same units, so concurrent orders for the same product can
// oversell. The decrement pass skips a product silently when the second read
// shows insufficient stock; nothing compensates the already-persisted order.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID string, input PlaceOrderInput) (string, error) {
	if len(input.Items) == 0 {
		return "", apperrors.NewValidationError("order must contain at least one item", nil)
	}

	// Pre-check pass: every line must be satisfiable before any write.
	for _, item := range input.Items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", apperrors.NewValidationError(
					fmt.Sprintf("product %s does not exist", item.ProductID), nil)
			}
			return "", apperrors.NewInternalError(err)
		}
		if product.Stock < item.Quantity {
			return "", apperrors.NewValidationError(
				fmt.Sprintf("insufficient stock for %s: %d available, %d requested",
					product.Name, product.Stock, item.Quantity), nil)
		}
	}

	// Name and email come from the account, never from the client payload.
	customer, err := s.users.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewUnauthorized("unknown account")
		}
		return "", apperrors.NewInternalError(err)
	}

	order := &domain.Order{
		ID:               uuid.NewString(),
		CustomerID:       customer.ID,
		CustomerName:     customer.FullName(),
		CustomerEmail:    customer.Email,
		ShippingAddress:  input.ShippingAddress,
		Items:            input.Items,
		TotalAmount:      input.TotalAmount,
		RequiresShipping: input.RequiresShipping,
		ShippingCost:     input.ShippingCost,
		FinalTotal:       input.FinalTotal,
		Status:           domain.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return "", apperrors.NewInternalError(err)
	}

	// Decrement pass: re-read each product and write the reduced stock.
	// A line that became unsatisfiable since the pre-check is skipped.
	for _, item := range order.Items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		if product.Stock < item.Quantity {
			continue
		}
		_ = s.products.UpdateStock(ctx, product.ID, product.Stock-item.Quantity)
	}

	s.publish(ctx, events.Event{
		ID:      uuid.NewString(),
		Type:    events.EventOrderCreated,
		OrderID: order.ID,
		ActorID: customer.ID,
		Payload: events.OrderCreatedPayload{
			CustomerID: customer.ID,
			ItemCount:  len(order.Items),
			FinalTotal: order.FinalTotal,
		},
	})

	return order.ID, nil
}

// UpdateStatus sets an order's fulfillment status. The target must be a known
// status; beyond that the update is unconditional, so a pending order can be
// marked shipped directly.
func (s *OrderService) UpdateStatus(ctx context.Context, actorID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": "must be one of pending, prepared, shipped"})
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order")
		}
		return nil, apperrors.NewInternalError(err)
	}

	oldStatus := order.Status
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order")
		}
		return nil, apperrors.NewInternalError(err)
	}
	order.Status = status

	s.publish(ctx, events.Event{
		ID:      uuid.NewString(),
		Type:    events.EventOrderStatusChanged,
		OrderID: order.ID,
		ActorID: actorID,
		Payload: events.OrderStatusChangedPayload{OldStatus: oldStatus, NewStatus: status},
	})

	return order, nil
}

// ListAll returns every order, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return orders, nil
}

// ListByCustomer returns the caller's own orders, newest first.
func (s *OrderService) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	orders, err := s.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return orders, nil
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
