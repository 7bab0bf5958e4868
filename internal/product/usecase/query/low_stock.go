package query

import (
	"fmt"

	"github.com/parpy69/pos-backend/internal/product/domain"
	settingsdomain "github.com/parpy69/pos-backend/internal/settings/domain"
)

// LowStockQuery represents the query for products needing restock attention
type LowStockQuery struct{}

// StockAlert flags a product that is out of stock or below the low threshold
type StockAlert struct {
	ProductID   uint              `json:"product_id"`
	ProductName string            `json:"product_name"`
	Quantity    int               `json:"quantity"`
	Level       domain.StockLevel `json:"level"`
}

// LowStockHandler handles the low stock query
type LowStockHandler struct {
	products domain.ProductRepository
	settings settingsdomain.SettingsRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(products domain.ProductRepository, settings settingsdomain.SettingsRepository) *LowStockHandler {
	return &LowStockHandler{products: products, settings: settings}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(query LowStockQuery) ([]StockAlert, error) {
	cfg, err := h.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	products, err := h.products.FindAll(0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	alerts := []StockAlert{}
	for _, p := range products {
		level := domain.ClassifyStock(p.Quantity, cfg.LowStockThreshold, cfg.ModerateStockThreshold, cfg.HighStockThreshold)
		if level == domain.StockOut || level == domain.StockLow {
			alerts = append(alerts, StockAlert{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    p.Quantity,
				Level:       level,
			})
		}
	}

	return alerts, nil
}
