package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ec-shop/storefront-api/internal/domain"
)

// In-memory repository doubles implementing the persistence interfaces.

type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[user.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Phone = user.Phone
	existing.Address = user.Address
	return nil
}

func (m *mockUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.Role = role
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepo) ExistsByEmailOrCI(_ context.Context, email, ci string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email || user.CI == ci {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.User
	for _, user := range m.users {
		out = append(out, *user)
	}
	return out, nil
}

type mockProductRepo struct {
	mu       sync.Mutex
	products map[string]*domain.Product
	// onGetByID, when set, runs after the value for each read has been
	// snapshotted (outside the lock, before GetByID returns); tests use it
	// to force interleavings between concurrent order placements.
	onGetByID func(id string)
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[string]*domain.Product)}
}

func (m *mockProductRepo) Create(_ context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *product
	m.products[product.ID] = &clone
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *product
	m.products[product.ID] = &clone
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	m.mu.Lock()
	product, ok := m.products[id]
	var clone domain.Product
	if ok {
		clone = *product
	}
	m.mu.Unlock()
	if m.onGetByID != nil {
		m.onGetByID(id)
	}
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &clone, nil
}

func (m *mockProductRepo) List(_ context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Product
	for _, product := range m.products {
		out = append(out, *product)
	}
	return out, nil
}

func (m *mockProductRepo) UpdateStock(_ context.Context, id string, stock int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products[id]
	if !ok {
		return pgx.ErrNoRows
	}
	product.Stock = stock
	return nil
}

func (m *mockProductRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, product := range m.products {
		if product.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *mockProductRepo) stockOf(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if product, ok := m.products[id]; ok {
		return product.Stock
	}
	return -1
}

type mockCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*domain.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (m *mockCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *category
	m.categories[category.ID] = &clone
	return nil
}

func (m *mockCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *category
	m.categories[category.ID] = &clone
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	category, ok := m.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *category
	return &clone, nil
}

func (m *mockCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Category
	for _, category := range m.categories {
		out = append(out, *category)
	}
	return out, nil
}

type mockOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	seq    []string
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*domain.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	clone := *order
	m.orders[order.ID] = &clone
	m.seq = append(m.seq, order.ID)
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *order
	return &clone, nil
}

func (m *mockOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Order, 0, len(m.seq))
	for i := len(m.seq) - 1; i >= 0; i-- {
		out = append(out, *m.orders[m.seq[i]])
	}
	return out, nil
}

func (m *mockOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	all, _ := m.ListAll(ctx)
	var out []domain.Order
	for _, order := range all {
		if order.CustomerID == customerID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error) {
	all, _ := m.ListAll(ctx)
	var out []domain.Order
	for _, order := range all {
		if !order.CreatedAt.Before(since) {
			out = append(out, order)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.Status = status
	return nil
}

func (m *mockOrderRepo) CountByProduct(_ context.Context, productID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, order := range m.orders {
		for _, item := range order.Items {
			if item.ProductID == productID {
				count++
			}
		}
	}
	return count, nil
}
