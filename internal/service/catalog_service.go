package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ec-shop/storefront-api/internal/domain"
	"github.com/ec-shop/storefront-api/internal/repository"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

// ProductInput carries validated product data for create and update.
type ProductInput struct {
	Name        string
	Image       string
	Description string
	Price       decimal.Decimal
	CategoryID  string
	Stock       int
}

// CatalogService manages products and categories.
type CatalogService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	cats     repository.CategoryRepository
}

// NewCatalogService builds the service.
func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository, orders repository.OrderRepository) *CatalogService {
	return &CatalogService{products: products, cats: categories, orders: orders}
}

// ListProducts returns the full catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return products, nil
}

// CreateProduct adds a catalog entry under an existing category.
func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if _, err := s.cats.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("unknown category", map[string]any{"categoryId": "category does not exist"})
		}
		return nil, apperrors.NewInternalError(err)
	}

	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Image:       input.Image,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Stock:       input.Stock,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return product, nil
}

// UpdateProduct overwrites a product's fields.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product")
		}
		return nil, apperrors.NewInternalError(err)
	}

	product.Name = input.Name
	product.Image = input.Image
	product.Description = input.Description
	product.Price = input.Price
	product.CategoryID = input.CategoryID
	product.Stock = input.Stock

	if err := s.products.Update(ctx, product); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return product, nil
}

// DeleteProduct removes a product unless any order line still references it.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	count, err := s.orders.CountByProduct(ctx, id)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if count > 0 {
		return apperrors.NewValidationError("cannot delete a product referenced by orders", nil)
	}

	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("product")
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}

// ListCategories returns every category.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.cats.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return categories, nil
}

// CreateCategory adds a category.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	category := &domain.Category{ID: uuid.NewString(), Name: name}
	if err := s.cats.Create(ctx, category); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return category, nil
}

// UpdateCategory renames a category.
func (s *CatalogService) UpdateCategory(ctx context.Context, id, name string) (*domain.Category, error) {
	category, err := s.cats.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("category")
		}
		return nil, apperrors.NewInternalError(err)
	}

	category.Name = name
	if err := s.cats.Update(ctx, category); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return category, nil
}

// DeleteCategory removes a category unless any product still references it.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	count, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if count > 0 {
		return apperrors.NewValidationError("cannot delete a category with associated products", nil)
	}

	if err := s.cats.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("category")
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}
