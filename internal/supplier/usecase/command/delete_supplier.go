package command

import (
	"fmt"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
)

// DeleteSupplierCommand represents the command to delete a supplier
type DeleteSupplierCommand struct {
	ID uint
}

// DeleteSupplierHandler handles supplier deletion command
type DeleteSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewDeleteSupplierHandler creates a new delete supplier handler
func NewDeleteSupplierHandler(repo domain.SupplierRepository) *DeleteSupplierHandler {
	return &DeleteSupplierHandler{repo: repo}
}

// Handle executes the delete supplier command
func (h *DeleteSupplierHandler) Handle(cmd DeleteSupplierCommand) error {
	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return fmt.Errorf("supplier not found: %w", err)
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	return nil
}
