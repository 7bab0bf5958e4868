package query

import (
	"github.com/parpy69/pos-backend/internal/supplier/domain"
)

// ListSuppliersQuery represents the query to list suppliers
type ListSuppliersQuery struct {
	Limit  int
	Offset int
}

// ListSuppliersHandler handles the list suppliers query
type ListSuppliersHandler struct {
	repo domain.SupplierRepository
}

// NewListSuppliersHandler creates a new list suppliers handler
func NewListSuppliersHandler(repo domain.SupplierRepository) *ListSuppliersHandler {
	return &ListSuppliersHandler{repo: repo}
}

// Handle executes the list suppliers query
func (h *ListSuppliersHandler) Handle(query ListSuppliersQuery) ([]domain.Supplier, error) {
	return h.repo.FindAll(query.Limit, query.Offset)
}
