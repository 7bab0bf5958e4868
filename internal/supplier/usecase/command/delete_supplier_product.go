package command

import (
	"fmt"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
)

// DeleteSupplierProductCommand removes a supplier-product link by pair
type DeleteSupplierProductCommand struct {
	SupplierID uint
	ProductID  uint
}

// DeleteSupplierProductHandler handles supplier-product link deletion
type DeleteSupplierProductHandler struct {
	links domain.SupplierProductRepository
}

// NewDeleteSupplierProductHandler creates a new delete supplier product handler
func NewDeleteSupplierProductHandler(links domain.SupplierProductRepository) *DeleteSupplierProductHandler {
	return &DeleteSupplierProductHandler{links: links}
}

// Handle executes the delete supplier product command
func (h *DeleteSupplierProductHandler) Handle(cmd DeleteSupplierProductCommand) error {
	if err := h.links.DeleteByPair(cmd.SupplierID, cmd.ProductID); err != nil {
		return fmt.Errorf("failed to delete supplier product: %w", err)
	}
	return nil
}
