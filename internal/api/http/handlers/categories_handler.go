package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ec-shop/storefront-api/internal/api/dto"
	"github.com/ec-shop/storefront-api/internal/service"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

// CategoriesHandler exposes category CRUD.
type CategoriesHandler struct {
	catalog *service.CatalogService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(catalog *service.CatalogService) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalog}
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, dto.NewCategoryResponse(&categories[i]))
	}
	return c.JSON(out)
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	req, err := parseCategory(c)
	if err != nil {
		return err
	}

	category, err := h.catalog.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCategoryResponse(category))
}

// Update handles PUT /api/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	req, err := parseCategory(c)
	if err != nil {
		return err
	}

	category, err := h.catalog.UpdateCategory(c.Context(), c.Params("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCategoryResponse(category))
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "category deleted"})
}

func parseCategory(c *fiber.Ctx) (dto.CategoryRequest, error) {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewValidationError("invalid payload", nil)
	}
	if details := req.Validate(); details != nil {
		return req, apperrors.NewValidationError("invalid category data", details)
	}
	return req, nil
}
