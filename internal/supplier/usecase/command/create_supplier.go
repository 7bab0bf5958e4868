package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// CreateSupplierCommand represents the command to create a new supplier
type CreateSupplierCommand struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	ContactName string
}

// CreateSupplierHandler handles supplier creation command
type CreateSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewCreateSupplierHandler creates a new create supplier handler
func NewCreateSupplierHandler(repo domain.SupplierRepository) *CreateSupplierHandler {
	return &CreateSupplierHandler{repo: repo}
}

// Handle executes the create supplier command
func (h *CreateSupplierHandler) Handle(cmd CreateSupplierCommand) (*domain.Supplier, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)
	if name == "" {
		return nil, apperrors.InvalidInput("supplier name is required")
	}
	if email == "" {
		return nil, apperrors.InvalidInput("supplier email is required")
	}

	supplier := &domain.Supplier{
		Name:        name,
		Email:       email,
		Phone:       strings.TrimSpace(cmd.Phone),
		Address:     strings.TrimSpace(cmd.Address),
		ContactName: strings.TrimSpace(cmd.ContactName),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.Create(supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	return supplier, nil
}
