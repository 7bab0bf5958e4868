package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name     string
	Price    float64
	Quantity int
	Barcode  string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
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

	product := &domain.Product{
		Name:      name,
		Price:     cmd.Price,
		Quantity:  cmd.Quantity,
		Barcode:   normalizeBarcode(cmd.Barcode),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// normalizeBarcode returns nil for blank barcodes so the unique index only
// applies to real values.
func normalizeBarcode(barcode string) *string {
	b := strings.TrimSpace(barcode)
	if b == "" {
		return nil
	}
	return &b
}
