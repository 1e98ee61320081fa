package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock is the only numeric field mutated after
// creation; all changes go through single-row updates by id.
type Product struct {
	ID          string
	Name        string
	Image       string
	Description string
	Price       decimal.Decimal
	CategoryID  string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category groups products. A category cannot be deleted while any product
// still references it.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
