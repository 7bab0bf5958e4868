package query

import (
	"fmt"
	"time"

	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/sale/domain"
)

// Analytics periods
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// SalesAnalyticsQuery aggregates sales per product over a trailing period.
type SalesAnalyticsQuery struct {
	Period string
}

// ProductSalesStats holds the per-product aggregates for the period.
type ProductSalesStats struct {
	ProductID         uint    `json:"product_id"`
	ProductName       string  `json:"product_name"`
	TotalQuantity     int     `json:"total_quantity"`
	TotalRevenue      float64 `json:"total_revenue"`
	SalesCount        int     `json:"sales_count"`
	AverageDailySales float64 `json:"average_daily_sales"`
}

// SalesAnalytics is the full analytics response.
type SalesAnalytics struct {
	Period    string              `json:"period"`
	StartDate time.Time           `json:"start_date"`
	EndDate   time.Time           `json:"end_date"`
	Analytics []ProductSalesStats `json:"analytics"`
}

// SalesAnalyticsHandler handles the sales analytics query
type SalesAnalyticsHandler struct {
	sales    domain.SaleRepository
	products productdomain.ProductRepository
}

// NewSalesAnalyticsHandler creates a new sales analytics handler
func NewSalesAnalyticsHandler(sales domain.SaleRepository, products productdomain.ProductRepository) *SalesAnalyticsHandler {
	return &SalesAnalyticsHandler{sales: sales, products: products}
}

// Handle executes the sales analytics query
func (h *SalesAnalyticsHandler) Handle(query SalesAnalyticsQuery) (*SalesAnalytics, error) {
	now := time.Now()

	var days int
	switch query.Period {
	case PeriodMonth:
		days = 30
	case PeriodYear:
		days = 365
	case PeriodWeek, "":
		query.Period = PeriodWeek
		days = 7
	default:
		query.Period = PeriodWeek
		days = 7
	}
	start := now.AddDate(0, 0, -days)

	sales, err := h.sales.FindSince(start)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	names, err := h.productNames()
	if err != nil {
		return nil, err
	}

	byProduct := map[uint]*ProductSalesStats{}
	order := []uint{}
	for _, s := range sales {
		stats, ok := byProduct[s.ProductID]
		if !ok {
			stats = &ProductSalesStats{
				ProductID:   s.ProductID,
				ProductName: names[s.ProductID],
			}
			byProduct[s.ProductID] = stats
			order = append(order, s.ProductID)
		}
		stats.TotalQuantity += s.Quantity
		stats.TotalRevenue += s.Total
		stats.SalesCount++
	}

	analytics := make([]ProductSalesStats, 0, len(order))
	for _, id := range order {
		stats := byProduct[id]
		stats.AverageDailySales = float64(stats.TotalQuantity) / float64(days)
		analytics = append(analytics, *stats)
	}

	return &SalesAnalytics{
		Period:    query.Period,
		StartDate: start,
		EndDate:   now,
		Analytics: analytics,
	}, nil
}

func (h *SalesAnalyticsHandler) productNames() (map[uint]string, error) {
	products, err := h.products.FindAll(0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	names := make(map[uint]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}
