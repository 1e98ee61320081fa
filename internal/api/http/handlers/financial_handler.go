package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ec-shop/storefront-api/internal/service"
)

// FinancialHandler exposes the admin revenue summary.
type FinancialHandler struct {
	financial *service.FinancialService
}

// NewFinancialHandler constructs handler.
func NewFinancialHandler(financial *service.FinancialService) *FinancialHandler {
	return &FinancialHandler{financial: financial}
}

// Summary handles GET /api/financial/summary?period=all|week|month.
func (h *FinancialHandler) Summary(c *fiber.Ctx) error {
	period := service.SummaryPeriod(c.Query("period", string(service.PeriodAll)))

	summary, err := h.financial.Summarize(c.Context(), period)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
