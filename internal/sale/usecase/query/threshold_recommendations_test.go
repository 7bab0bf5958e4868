package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/sale/domain"
)

func TestThresholdRecommendations_FloorsForSlowMovers(t *testing.T) {
	products := &fakeProductRepo{products: []productdomain.Product{{ID: 1, Name: "Dusty"}}}
	handler := NewThresholdRecommendationsHandler(&fakeSaleRepo{}, products)

	result, err := handler.Handle()
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	rec := result.Products[0]
	assert.Equal(t, 1, rec.RecommendedLow)
	assert.Equal(t, 5, rec.RecommendedModerate)
	assert.Equal(t, 10, rec.RecommendedHigh)
	assert.Zero(t, rec.AverageDailySales)
	assert.Zero(t, rec.TotalSold)
}

func TestThresholdRecommendations_ScalesWithVelocity(t *testing.T) {
	now := time.Now()
	products := &fakeProductRepo{products: []productdomain.Product{{ID: 1, Name: "Coffee", Quantity: 9}}}

	// 2 units per day; the past week has sales, so velocity comes from the
	// 7-day window.
	var sales []domain.Sale
	for day := 0; day < 30; day++ {
		sales = append(sales, domain.Sale{
			ProductID: 1,
			Quantity:  2,
			CreatedAt: now.AddDate(0, 0, -day),
		})
	}
	handler := NewThresholdRecommendationsHandler(&fakeSaleRepo{sales: sales}, products)

	result, err := handler.Handle()
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	rec := result.Products[0]
	assert.InDelta(t, 2.0, rec.AverageDailySales, 0.001)
	assert.Equal(t, 9, rec.CurrentQuantity)
	assert.Equal(t, 14, rec.TotalSold)           // 7 days x 2 units
	assert.Equal(t, 6, rec.RecommendedLow)       // 3 days of cover
	assert.Equal(t, 14, rec.RecommendedModerate) // 7 days of cover
	assert.Equal(t, 28, rec.RecommendedHigh)     // 14 days of cover
}

func TestThresholdRecommendations_FallsBackToOlderWindows(t *testing.T) {
	now := time.Now()

	t.Run("month window when the week is empty", func(t *testing.T) {
		products := &fakeProductRepo{products: []productdomain.Product{{ID: 1, Name: "Coffee"}}}

		// 60 units sold 20 days ago and nothing since: the month window
		// still averages 2 per day.
		sales := []domain.Sale{{ProductID: 1, Quantity: 60, CreatedAt: now.AddDate(0, 0, -20)}}
		handler := NewThresholdRecommendationsHandler(&fakeSaleRepo{sales: sales}, products)

		result, err := handler.Handle()
		require.NoError(t, err)

		require.Len(t, result.Products, 1)
		rec := result.Products[0]
		assert.InDelta(t, 2.0, rec.AverageDailySales, 0.001)
		assert.Equal(t, 60, rec.TotalSold)
		assert.Equal(t, 6, rec.RecommendedLow)
		assert.Equal(t, 14, rec.RecommendedModerate)
		assert.Equal(t, 28, rec.RecommendedHigh)
	})

	t.Run("year window when week and month are empty", func(t *testing.T) {
		products := &fakeProductRepo{products: []productdomain.Product{{ID: 1, Name: "Coffee"}}}

		sales := []domain.Sale{{ProductID: 1, Quantity: 73, CreatedAt: now.AddDate(0, 0, -100)}}
		handler := NewThresholdRecommendationsHandler(&fakeSaleRepo{sales: sales}, products)

		result, err := handler.Handle()
		require.NoError(t, err)

		require.Len(t, result.Products, 1)
		rec := result.Products[0]
		assert.InDelta(t, 0.2, rec.AverageDailySales, 0.001)
		assert.Equal(t, 73, rec.TotalSold)
		assert.Equal(t, 1, rec.RecommendedLow)      // ceil(0.6)
		assert.Equal(t, 5, rec.RecommendedModerate) // floor wins over ceil(1.4)
		assert.Equal(t, 10, rec.RecommendedHigh)    // floor wins over ceil(2.8)
	})
}

func TestThresholdRecommendations_OverallAverages(t *testing.T) {
	now := time.Now()
	products := &fakeProductRepo{products: []productdomain.Product{
		{ID: 1, Name: "Fast"},
		{ID: 2, Name: "Slow"},
	}}

	var sales []domain.Sale
	for day := 0; day < 30; day++ {
		sales = append(sales, domain.Sale{
			ProductID: 1,
			Quantity:  2,
			CreatedAt: now.AddDate(0, 0, -day),
		})
	}
	handler := NewThresholdRecommendationsHandler(&fakeSaleRepo{sales: sales}, products)

	result, err := handler.Handle()
	require.NoError(t, err)

	// Fast: 6/14/28, Slow floors: 1/5/10 -> averages round half up
	assert.Equal(t, 4, result.AverageLow)
	assert.Equal(t, 10, result.AverageModerate)
	assert.Equal(t, 19, result.AverageHigh)
}

func TestThresholdRecommendations_NoProducts(t *testing.T) {
	handler := NewThresholdRecommendationsHandler(&fakeSaleRepo{}, &fakeProductRepo{})

	result, err := handler.Handle()
	require.NoError(t, err)

	assert.Empty(t, result.Products)
	assert.Zero(t, result.AverageLow)
	assert.Zero(t, result.AverageModerate)
	assert.Zero(t, result.AverageHigh)
}
