package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ec-shop/storefront-api/internal/domain"
)

// ProductRequest payload for product create and update.
type ProductRequest struct {
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"categoryId"`
	Stock       int             `json:"stock"`
}

// Validate returns field-level errors, or nil when the payload is valid.
func (r ProductRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Name == "" {
		details["name"] = "name is required"
	}
	if !r.Price.IsPositive() {
		details["price"] = "price must be greater than zero"
	}
	if r.CategoryID == "" {
		details["categoryId"] = "category is required"
	}
	if r.Stock < 0 {
		details["stock"] = "stock cannot be negative"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// ProductResponse is the catalog projection.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"categoryId"`
	Stock       int             `json:"stock"`
}

// NewProductResponse maps a domain product.
func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Image:       p.Image,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Stock:       p.Stock,
	}
}

// CategoryRequest payload for category create and update.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Validate returns field-level errors, or nil when the payload is valid.
func (r CategoryRequest) Validate() map[string]any {
	if len(r.Name) < 2 {
		return map[string]any{"name": "name must be at least 2 characters"}
	}
	return nil
}

// CategoryResponse is the category projection.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewCategoryResponse maps a domain category.
func NewCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}
