package query

import (
	"github.com/parpy69/pos-backend/internal/supplier/domain"
)

// ListSupplierProductsQuery lists the products a supplier can deliver,
// optionally narrowed to a single product.
type ListSupplierProductsQuery struct {
	SupplierID uint
	ProductID  *uint
}

// ListSupplierProductsHandler handles the list supplier products query
type ListSupplierProductsHandler struct {
	links domain.SupplierProductRepository
}

// NewListSupplierProductsHandler creates a new list supplier products handler
func NewListSupplierProductsHandler(links domain.SupplierProductRepository) *ListSupplierProductsHandler {
	return &ListSupplierProductsHandler{links: links}
}

// Handle executes the list supplier products query
func (h *ListSupplierProductsHandler) Handle(query ListSupplierProductsQuery) ([]domain.SupplierProduct, error) {
	return h.links.FindBySupplier(query.SupplierID, query.ProductID)
}
