package command

import (
	"fmt"
	"time"

	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// UpsertSupplierProductCommand links a supplier to a product at a unit price
type UpsertSupplierProductCommand struct {
	SupplierID uint
	ProductID  uint
	Price      float64
}

// UpsertSupplierProductHandler handles supplier-product link writes
type UpsertSupplierProductHandler struct {
	links     domain.SupplierProductRepository
	suppliers domain.SupplierRepository
	products  productdomain.ProductRepository
}

// NewUpsertSupplierProductHandler creates a new upsert supplier product handler
func NewUpsertSupplierProductHandler(
	links domain.SupplierProductRepository,
	suppliers domain.SupplierRepository,
	products productdomain.ProductRepository,
) *UpsertSupplierProductHandler {
	return &UpsertSupplierProductHandler{links: links, suppliers: suppliers, products: products}
}

// Handle executes the upsert supplier product command
func (h *UpsertSupplierProductHandler) Handle(cmd UpsertSupplierProductCommand) (*domain.SupplierProduct, error) {
	if cmd.Price <= 0 {
		return nil, apperrors.InvalidInput("price must be greater than zero")
	}

	if _, err := h.suppliers.FindByID(cmd.SupplierID); err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}
	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	link := &domain.SupplierProduct{
		SupplierID: cmd.SupplierID,
		ProductID:  cmd.ProductID,
		Price:      cmd.Price,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.links.Upsert(link); err != nil {
		return nil, fmt.Errorf("failed to save supplier product: %w", err)
	}

	return link, nil
}
