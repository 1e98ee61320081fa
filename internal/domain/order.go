package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates fulfillment states. Transitions are driven by staff
// through the status endpoint; the endpoint does not enforce forward-only
// ordering.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPrepared OrderStatus = "prepared"
	OrderStatusShipped  OrderStatus = "shipped"
)

// ValidOrderStatus reports whether s is a known status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPrepared, OrderStatusShipped:
		return true
	}
	return false
}

// OrderItem is a line snapshotted at order-creation time; it is decoupled
// from the live product's price and name.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// Order is the aggregate produced by checkout. Customer name and email are
// resolved from the account at creation time, never taken from the client.
type Order struct {
	ID               string
	CustomerID       string
	CustomerName     string
	CustomerEmail    string
	ShippingAddress  Address
	Items            []OrderItem
	TotalAmount      decimal.Decimal
	RequiresShipping bool
	ShippingCost     decimal.Decimal
	FinalTotal       decimal.Decimal
	Status           OrderStatus
	CreatedAt        time.Time
}
