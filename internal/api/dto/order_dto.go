package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ec-shop/storefront-api/internal/domain"
)

// OrderItemPayload is one checkout line as sent by the client.
type OrderItemPayload struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// CreateOrderRequest is the checkout payload. Totals arrive from the client
// and are stored as-is.
type CreateOrderRequest struct {
	Items            []OrderItemPayload `json:"items"`
	TotalAmount      decimal.Decimal    `json:"totalAmount"`
	RequiresShipping bool               `json:"requiresShipping"`
	ShippingCost     decimal.Decimal    `json:"shippingCost"`
	FinalTotal       decimal.Decimal    `json:"finalTotal"`
	ShippingAddress  AddressPayload     `json:"shippingAddress"`
}

// Validate returns field-level errors, or nil when the payload is valid.
func (r CreateOrderRequest) Validate() map[string]any {
	details := map[string]any{}
	if len(r.Items) == 0 {
		details["items"] = "order must contain at least one item"
	}
	for i, item := range r.Items {
		key := fmt.Sprintf("items.%d", i)
		if item.ProductID == "" {
			details[key+".productId"] = "product id is required"
		}
		if item.Quantity < 1 {
			details[key+".quantity"] = "quantity must be at least 1"
		}
		if !item.UnitPrice.IsPositive() {
			details[key+".unitPrice"] = "unit price must be greater than zero"
		}
		if !item.TotalPrice.IsPositive() {
			details[key+".totalPrice"] = "total price must be greater than zero"
		}
	}
	if !r.TotalAmount.IsPositive() {
		details["totalAmount"] = "total amount must be greater than zero"
	}
	if r.ShippingCost.IsNegative() {
		details["shippingCost"] = "shipping cost cannot be negative"
	}
	if !r.FinalTotal.IsPositive() {
		details["finalTotal"] = "final total must be greater than zero"
	}
	r.ShippingAddress.Validate("shippingAddress.", details)
	if len(details) == 0 {
		return nil
	}
	return details
}

// ToItems converts the payload lines into domain order items.
func (r CreateOrderRequest) ToItems() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	return items
}

// OrderStatusRequest carries the target status for PUT /orders/{id}/status.
type OrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// OrderResponse is the order projection returned by list and status
// endpoints.
type OrderResponse struct {
	ID               string             `json:"id"`
	CustomerID       string             `json:"customerId"`
	CustomerName     string             `json:"customerName"`
	CustomerEmail    string             `json:"customerEmail"`
	ShippingAddress  AddressPayload     `json:"shippingAddress"`
	Items            []domain.OrderItem `json:"items"`
	TotalAmount      decimal.Decimal    `json:"totalAmount"`
	RequiresShipping bool               `json:"requiresShipping"`
	ShippingCost     decimal.Decimal    `json:"shippingCost"`
	FinalTotal       decimal.Decimal    `json:"finalTotal"`
	Status           domain.OrderStatus `json:"status"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		ShippingAddress: AddressPayload{
			Street:       o.ShippingAddress.Street,
			Number:       o.ShippingAddress.Number,
			Between:      o.ShippingAddress.Between,
			Neighborhood: o.ShippingAddress.Neighborhood,
			Municipality: o.ShippingAddress.Municipality,
			Province:     o.ShippingAddress.Province,
		},
		Items:            o.Items,
		TotalAmount:      o.TotalAmount,
		RequiresShipping: o.RequiresShipping,
		ShippingCost:     o.ShippingCost,
		FinalTotal:       o.FinalTotal,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
	}
}
