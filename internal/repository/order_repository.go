package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ec-shop/storefront-api/internal/domain"
)

// OrderRepository defines persistence access for orders and their line items.
// Order and item writes are separate statements; there is no multi-row
// transaction around order creation.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	CountByProduct(ctx context.Context, productID string) (int, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `
        id, customer_id, customer_name, customer_email,
        shipping_street, shipping_number, shipping_between1, shipping_between2,
        shipping_neighborhood, shipping_municipality, shipping_province,
        total_amount, requires_shipping, shipping_cost, final_total, status, created_at`

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const orderQuery = `
        INSERT INTO orders (
            id, customer_id, customer_name, customer_email,
            shipping_street, shipping_number, shipping_between1, shipping_between2,
            shipping_neighborhood, shipping_municipality, shipping_province,
            total_amount, requires_shipping, shipping_cost, final_total, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING created_at`

	if err := r.pool.QueryRow(ctx, orderQuery,
		order.ID,
		order.CustomerID,
		order.CustomerName,
		order.CustomerEmail,
		order.ShippingAddress.Street,
		order.ShippingAddress.Number,
		order.ShippingAddress.Between[0],
		order.ShippingAddress.Between[1],
		order.ShippingAddress.Neighborhood,
		order.ShippingAddress.Municipality,
		order.ShippingAddress.Province,
		order.TotalAmount,
		order.RequiresShipping,
		order.ShippingCost,
		order.FinalTotal,
		order.Status,
	).Scan(&order.CreatedAt); err != nil {
		return err
	}

	const itemQuery = `
        INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, total_price)
        VALUES ($1,$2,$3,$4,$5,$6)`

	for _, item := range order.Items {
		if _, err := r.pool.Exec(ctx, itemQuery,
			order.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.ShippingAddress.Street,
		&o.ShippingAddress.Number,
		&o.ShippingAddress.Between[0],
		&o.ShippingAddress.Between[1],
		&o.ShippingAddress.Neighborhood,
		&o.ShippingAddress.Municipality,
		&o.ShippingAddress.Province,
		&o.TotalAmount,
		&o.RequiresShipping,
		&o.ShippingCost,
		&o.FinalTotal,
		&o.Status,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	rows, err := r.pool.Query(ctx, `
        SELECT product_id, product_name, quantity, unit_price, total_price
        FROM order_items WHERE order_id=$1 ORDER BY id`, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := r.scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`, customerID)
}

func (r *orderRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE created_at >= $1 ORDER BY created_at DESC`, since)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) CountByProduct(ctx context.Context, productID string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM order_items WHERE product_id=$1`, productID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
