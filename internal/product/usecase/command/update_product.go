package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// UpdateProductCommand represents the command to update an existing product
type UpdateProductCommand struct {
	ID       uint
	Name     string
	Price    float64
	Quantity int
	Barcode  string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, apperrors.InvalidInput("invalid product id")
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if cmd.Price < 0 {
		return nil, apperrors.InvalidInput("price cannot be negative")
	}
	if cmd.Quantity < 0 {
		return nil, apperrors.InvalidInput("quantity cannot be negative")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	product.Name = name
	product.Price = cmd.Price
	product.Quantity = cmd.Quantity
	product.Barcode = normalizeBarcode(cmd.Barcode)
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
