package query

import (
	"github.com/parpy69/pos-backend/internal/supplier/domain"
)

// GetSupplierQuery represents the query to fetch a single supplier
type GetSupplierQuery struct {
	ID uint
}

// GetSupplierHandler handles the get supplier query
type GetSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewGetSupplierHandler creates a new get supplier handler
func NewGetSupplierHandler(repo domain.SupplierRepository) *GetSupplierHandler {
	return &GetSupplierHandler{repo: repo}
}

// Handle executes the get supplier query
func (h *GetSupplierHandler) Handle(query GetSupplierQuery) (*domain.Supplier, error) {
	return h.repo.FindByID(query.ID)
}
