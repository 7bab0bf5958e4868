package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/sale/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

type fakeProductRepo struct {
	products []productdomain.Product
}

func (r *fakeProductRepo) Create(p *productdomain.Product) error { return nil }

func (r *fakeProductRepo) FindByID(id uint) (*productdomain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeProductRepo) FindByBarcode(barcode string) (*productdomain.Product, error) {
	return nil, apperrors.ErrNotFound
}

func (r *fakeProductRepo) FindAll(limit, offset int) ([]productdomain.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) Update(p *productdomain.Product) error { return nil }
func (r *fakeProductRepo) Delete(id uint) error                  { return nil }
func (r *fakeProductRepo) Count() (int64, error)                 { return int64(len(r.products)), nil }

type fakeSaleRepo struct {
	sales []domain.Sale
}

func (r *fakeSaleRepo) Settle(ctx context.Context, settlement *domain.Settlement) error {
	return nil
}

func (r *fakeSaleRepo) FindByID(id uint) (*domain.Sale, error) {
	return nil, apperrors.ErrNotFound
}

func (r *fakeSaleRepo) FindAll(limit, offset int) ([]domain.Sale, error) {
	return r.sales, nil
}

func (r *fakeSaleRepo) FindSince(since time.Time) ([]domain.Sale, error) {
	var out []domain.Sale
	for _, s := range r.sales {
		if !s.CreatedAt.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Count() (int64, error) {
	return int64(len(r.sales)), nil
}

func TestSalesAnalytics_AggregatesPerProduct(t *testing.T) {
	now := time.Now()
	products := &fakeProductRepo{products: []productdomain.Product{
		{ID: 1, Name: "Coffee"},
		{ID: 2, Name: "Tea"},
	}}
	sales := &fakeSaleRepo{sales: []domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 3, Total: 30, CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 2, ProductID: 1, Quantity: 4, Total: 40, CreatedAt: now.AddDate(0, 0, -2)},
		{ID: 3, ProductID: 2, Quantity: 1, Total: 5, CreatedAt: now.AddDate(0, 0, -3)},
	}}

	handler := NewSalesAnalyticsHandler(sales, products)

	result, err := handler.Handle(SalesAnalyticsQuery{Period: PeriodWeek})
	require.NoError(t, err)

	assert.Equal(t, PeriodWeek, result.Period)
	require.Len(t, result.Analytics, 2)

	coffee := result.Analytics[0]
	assert.Equal(t, "Coffee", coffee.ProductName)
	assert.Equal(t, 7, coffee.TotalQuantity)
	assert.Equal(t, 70.0, coffee.TotalRevenue)
	assert.Equal(t, 2, coffee.SalesCount)
	assert.InDelta(t, 1.0, coffee.AverageDailySales, 0.001)

	tea := result.Analytics[1]
	assert.Equal(t, "Tea", tea.ProductName)
	assert.Equal(t, 1, tea.TotalQuantity)
}

func TestSalesAnalytics_ExcludesSalesOutsidePeriod(t *testing.T) {
	now := time.Now()
	products := &fakeProductRepo{products: []productdomain.Product{{ID: 1, Name: "Coffee"}}}
	sales := &fakeSaleRepo{sales: []domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 2, Total: 20, CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 2, ProductID: 1, Quantity: 9, Total: 90, CreatedAt: now.AddDate(0, 0, -30)},
	}}

	handler := NewSalesAnalyticsHandler(sales, products)

	result, err := handler.Handle(SalesAnalyticsQuery{Period: PeriodWeek})
	require.NoError(t, err)

	require.Len(t, result.Analytics, 1)
	assert.Equal(t, 2, result.Analytics[0].TotalQuantity)
}

func TestSalesAnalytics_UnknownPeriodFallsBackToWeek(t *testing.T) {
	handler := NewSalesAnalyticsHandler(&fakeSaleRepo{}, &fakeProductRepo{})

	result, err := handler.Handle(SalesAnalyticsQuery{Period: "decade"})
	require.NoError(t, err)
	assert.Equal(t, PeriodWeek, result.Period)
	assert.Empty(t, result.Analytics)
}
