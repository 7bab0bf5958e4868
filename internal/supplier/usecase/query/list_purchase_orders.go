package query

import (
	"github.com/parpy69/pos-backend/internal/supplier/domain"
)

// ListPurchaseOrdersQuery represents the query to list purchase orders
type ListPurchaseOrdersQuery struct {
	Limit  int
	Offset int
}

// ListPurchaseOrdersHandler handles the list purchase orders query
type ListPurchaseOrdersHandler struct {
	orders domain.PurchaseOrderRepository
}

// NewListPurchaseOrdersHandler creates a new list purchase orders handler
func NewListPurchaseOrdersHandler(orders domain.PurchaseOrderRepository) *ListPurchaseOrdersHandler {
	return &ListPurchaseOrdersHandler{orders: orders}
}

// Handle executes the list purchase orders query. Orders come back newest
// first.
func (h *ListPurchaseOrdersHandler) Handle(query ListPurchaseOrdersQuery) ([]domain.PurchaseOrder, error) {
	return h.orders.FindAll(query.Limit, query.Offset)
}
