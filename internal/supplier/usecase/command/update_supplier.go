package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// UpdateSupplierCommand represents the command to update an existing supplier
type UpdateSupplierCommand struct {
	ID          uint
	Name        string
	Email       string
	Phone       string
	Address     string
	ContactName string
}

// UpdateSupplierHandler handles supplier update command
type UpdateSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewUpdateSupplierHandler creates a new update supplier handler
func NewUpdateSupplierHandler(repo domain.SupplierRepository) *UpdateSupplierHandler {
	return &UpdateSupplierHandler{repo: repo}
}

// Handle executes the update supplier command
func (h *UpdateSupplierHandler) Handle(cmd UpdateSupplierCommand) (*domain.Supplier, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)
	if name == "" {
		return nil, apperrors.InvalidInput("supplier name is required")
	}
	if email == "" {
		return nil, apperrors.InvalidInput("supplier email is required")
	}

	supplier, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	supplier.Name = name
	supplier.Email = email
	supplier.Phone = strings.TrimSpace(cmd.Phone)
	supplier.Address = strings.TrimSpace(cmd.Address)
	supplier.ContactName = strings.TrimSpace(cmd.ContactName)
	supplier.UpdatedAt = time.Now()

	if err := h.repo.Update(supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return supplier, nil
}
