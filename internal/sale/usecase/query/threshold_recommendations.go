package query

import (
	"fmt"
	"math"
	"time"

	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/sale/domain"
)

// Sampling windows for estimating sales velocity. The most recent window
// with any sales wins, so a product that stopped selling last week is still
// judged on its recent pace rather than diluted across a year.
const (
	weekWindowDays  = 7
	monthWindowDays = 30
	yearWindowDays  = 365
)

// Days of cover each threshold should provide, with floors so slow movers
// still get sane thresholds.
const (
	lowCoverDays      = 3
	moderateCoverDays = 7
	highCoverDays     = 14

	minLowThreshold      = 1
	minModerateThreshold = 5
	minHighThreshold     = 10
)

// ProductThresholdRecommendation is the per-product suggestion. TotalSold is
// the quantity sold inside the window the velocity was derived from.
type ProductThresholdRecommendation struct {
	ProductID           uint    `json:"product_id"`
	ProductName         string  `json:"product_name"`
	CurrentQuantity     int     `json:"current_quantity"`
	TotalSold           int     `json:"total_sold"`
	AverageDailySales   float64 `json:"average_daily_sales"`
	RecommendedLow      int     `json:"recommended_low"`
	RecommendedModerate int     `json:"recommended_moderate"`
	RecommendedHigh     int     `json:"recommended_high"`
}

// ThresholdRecommendations carries per-product suggestions plus the overall
// averages a caller can apply as global settings.
type ThresholdRecommendations struct {
	Products        []ProductThresholdRecommendation `json:"products"`
	AverageLow      int                              `json:"average_low"`
	AverageModerate int                              `json:"average_moderate"`
	AverageHigh     int                              `json:"average_high"`
}

// ThresholdRecommendationsHandler handles the threshold recommendations query
type ThresholdRecommendationsHandler struct {
	sales    domain.SaleRepository
	products productdomain.ProductRepository
}

// NewThresholdRecommendationsHandler creates a new threshold recommendations handler
func NewThresholdRecommendationsHandler(sales domain.SaleRepository, products productdomain.ProductRepository) *ThresholdRecommendationsHandler {
	return &ThresholdRecommendationsHandler{sales: sales, products: products}
}

// soldWindows accumulates a product's sold quantity per sampling window.
type soldWindows struct {
	week  int
	month int
	year  int
}

// Handle computes recommended stock thresholds from recent sales velocity:
// enough stock to cover 3, 7 and 14 days of average daily sales, derived
// from the past week when it has sales, else the past month, else the past
// year.
func (h *ThresholdRecommendationsHandler) Handle() (*ThresholdRecommendations, error) {
	products, err := h.products.FindAll(0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	now := time.Now()
	sales, err := h.sales.FindSince(now.AddDate(0, 0, -yearWindowDays))
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	weekStart := now.AddDate(0, 0, -weekWindowDays)
	monthStart := now.AddDate(0, 0, -monthWindowDays)

	sold := make(map[uint]*soldWindows, len(products))
	for _, s := range sales {
		w := sold[s.ProductID]
		if w == nil {
			w = &soldWindows{}
			sold[s.ProductID] = w
		}
		w.year += s.Quantity
		if !s.CreatedAt.Before(monthStart) {
			w.month += s.Quantity
		}
		if !s.CreatedAt.Before(weekStart) {
			w.week += s.Quantity
		}
	}

	recommendations := make([]ProductThresholdRecommendation, 0, len(products))
	var sumLow, sumModerate, sumHigh int
	for _, p := range products {
		avgDaily, totalSold := salesVelocity(sold[p.ID])

		rec := ProductThresholdRecommendation{
			ProductID:           p.ID,
			ProductName:         p.Name,
			CurrentQuantity:     p.Quantity,
			TotalSold:           totalSold,
			AverageDailySales:   avgDaily,
			RecommendedLow:      coverThreshold(avgDaily, lowCoverDays, minLowThreshold),
			RecommendedModerate: coverThreshold(avgDaily, moderateCoverDays, minModerateThreshold),
			RecommendedHigh:     coverThreshold(avgDaily, highCoverDays, minHighThreshold),
		}
		recommendations = append(recommendations, rec)

		sumLow += rec.RecommendedLow
		sumModerate += rec.RecommendedModerate
		sumHigh += rec.RecommendedHigh
	}

	result := &ThresholdRecommendations{Products: recommendations}
	if n := len(recommendations); n > 0 {
		result.AverageLow = int(math.Round(float64(sumLow) / float64(n)))
		result.AverageModerate = int(math.Round(float64(sumModerate) / float64(n)))
		result.AverageHigh = int(math.Round(float64(sumHigh) / float64(n)))
	}
	return result, nil
}

// salesVelocity derives average daily sales from the most recent sampling
// window with any sales. Products with nothing sold all year report zero.
func salesVelocity(w *soldWindows) (avgDaily float64, totalSold int) {
	if w == nil {
		return 0, 0
	}
	switch {
	case w.week > 0:
		return float64(w.week) / weekWindowDays, w.week
	case w.month > 0:
		return float64(w.month) / monthWindowDays, w.month
	case w.year > 0:
		return float64(w.year) / yearWindowDays, w.year
	}
	return 0, 0
}

// coverThreshold converts a sales velocity into a threshold covering the
// given number of days, never below the floor.
func coverThreshold(avgDaily float64, coverDays, floor int) int {
	threshold := int(math.Ceil(avgDaily * float64(coverDays)))
	if threshold < floor {
		return floor
	}
	return threshold
}
