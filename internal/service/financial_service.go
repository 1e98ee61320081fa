package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ec-shop/storefront-api/internal/domain"
	"github.com/ec-shop/storefront-api/internal/repository"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

const summaryCacheTTL = 60 * time.Second

// SummaryPeriod selects the aggregation window.
type SummaryPeriod string

const (
	PeriodAll   SummaryPeriod = "all"
	PeriodWeek  SummaryPeriod = "week"
	PeriodMonth SummaryPeriod = "month"
)

// ValidPeriod reports whether p is a known period.
func ValidPeriod(p SummaryPeriod) bool {
	return p == PeriodAll || p == PeriodWeek || p == PeriodMonth
}

// ProductSales aggregates revenue per product for the top-sellers list.
type ProductSales struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// Summary is the admin financial dashboard payload.
type Summary struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalOrders    int             `json:"totalOrders"`
	OrdersByStatus map[string]int  `json:"ordersByStatus"`
	TopProducts    []ProductSales  `json:"topProducts"`
	Growth         decimal.Decimal `json:"growth"`
	Period         SummaryPeriod   `json:"period"`
}

// FinancialService computes revenue aggregates over orders. Results are
// cached briefly in Redis per period; cache failures fall through to a fresh
// computation.
type FinancialService struct {
	orders repository.OrderRepository
	cache  *redis.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewFinancialService builds the service. The cache client may be nil.
func NewFinancialService(orders repository.OrderRepository, cache *redis.Client, logger *zap.Logger) *FinancialService {
	return &FinancialService{orders: orders, cache: cache, logger: logger, now: time.Now}
}

// Summarize aggregates orders for the requested period.
func (s *FinancialService) Summarize(ctx context.Context, period SummaryPeriod) (*Summary, error) {
	if !ValidPeriod(period) {
		return nil, apperrors.NewValidationError("invalid period", map[string]any{"period": "must be one of all, week, month"})
	}

	if cached := s.fromCache(ctx, period); cached != nil {
		return cached, nil
	}

	orders, err := s.ordersForPeriod(ctx, period)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	summary := &Summary{
		TotalRevenue:   decimal.Zero,
		TotalOrders:    len(orders),
		OrdersByStatus: map[string]int{"pending": 0, "prepared": 0, "shipped": 0},
		Growth:         decimal.Zero,
		Period:         period,
	}

	sales := make(map[string]*ProductSales)
	for _, order := range orders {
		summary.TotalRevenue = summary.TotalRevenue.Add(order.FinalTotal)
		summary.OrdersByStatus[string(order.Status)]++
		for _, item := range order.Items {
			if existing, ok := sales[item.ProductID]; ok {
				existing.Quantity += item.Quantity
				existing.Revenue = existing.Revenue.Add(item.TotalPrice)
			} else {
				sales[item.ProductID] = &ProductSales{
					Name:     item.ProductName,
					Quantity: item.Quantity,
					Revenue:  item.TotalPrice,
				}
			}
		}
	}

	top := make([]ProductSales, 0, len(sales))
	for _, ps := range sales {
		top = append(top, *ps)
	}
	sort.Slice(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})
	if len(top) > 5 {
		top = top[:5]
	}
	summary.TopProducts = top

	s.toCache(ctx, period, summary)
	return summary, nil
}

func (s *FinancialService) ordersForPeriod(ctx context.Context, period SummaryPeriod) ([]domain.Order, error) {
	switch period {
	case PeriodWeek:
		return s.orders.ListCreatedSince(ctx, s.now().AddDate(0, 0, -7))
	case PeriodMonth:
		return s.orders.ListCreatedSince(ctx, s.now().AddDate(0, -1, 0))
	default:
		return s.orders.ListAll(ctx)
	}
}

func cacheKey(period SummaryPeriod) string {
	return "financial_summary:" + string(period)
}

func (s *FinancialService) fromCache(ctx context.Context, period SummaryPeriod) *Summary {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, cacheKey(period)).Bytes()
	if err != nil {
		return nil
	}
	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *FinancialService) toCache(ctx context.Context, period SummaryPeriod, summary *Summary) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(period), raw, summaryCacheTTL).Err(); err != nil && s.logger != nil {
		s.logger.Debug("summary cache write failed", zap.Error(err))
	}
}
