package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ec-shop/storefront-api/internal/api/dto"
	"github.com/ec-shop/storefront-api/internal/auth"
	"github.com/ec-shop/storefront-api/internal/domain"
	"github.com/ec-shop/storefront-api/internal/service"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

// OrdersHandler exposes checkout and order management.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Create handles POST /api/orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := req.Validate(); details != nil {
		return apperrors.NewValidationError("invalid order data", details)
	}

	orderID, err := h.orders.PlaceOrder(c.Context(), principal.ID, service.PlaceOrderInput{
		Items:            req.ToItems(),
		TotalAmount:      req.TotalAmount,
		RequiresShipping: req.RequiresShipping,
		ShippingCost:     req.ShippingCost,
		FinalTotal:       req.FinalTotal,
		ShippingAddress:  req.ShippingAddress.ToDomain(),
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "order created",
		"orderId": orderID,
	})
}

// ListAll handles GET /api/orders.
func (h *OrdersHandler) ListAll(c *fiber.Ctx) error {
	orders, err := h.orders.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(toOrderResponses(orders))
}

// ListMine handles GET /api/orders/me.
func (h *OrdersHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	orders, err := h.orders.ListByCustomer(c.Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(toOrderResponses(orders))
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	order, err := h.orders.UpdateStatus(c.Context(), principal.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderResponse(order))
}

func toOrderResponses(orders []domain.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.NewOrderResponse(&orders[i]))
	}
	return out
}
