package query

import (
	"encoding/json"
	"fmt"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// PurchaseOrderDocumentQuery fetches everything needed to render a printable
// purchase order.
type PurchaseOrderDocumentQuery struct {
	ID uint
}

// PurchaseOrderDocument is the assembled order: the record, its supplier and
// the decoded line items.
type PurchaseOrderDocument struct {
	Order    *domain.PurchaseOrder
	Supplier *domain.Supplier
	Items    []domain.OrderItem
}

// PurchaseOrderDocumentHandler handles the purchase order document query
type PurchaseOrderDocumentHandler struct {
	orders    domain.PurchaseOrderRepository
	suppliers domain.SupplierRepository
}

// NewPurchaseOrderDocumentHandler creates a new purchase order document handler
func NewPurchaseOrderDocumentHandler(
	orders domain.PurchaseOrderRepository,
	suppliers domain.SupplierRepository,
) *PurchaseOrderDocumentHandler {
	return &PurchaseOrderDocumentHandler{orders: orders, suppliers: suppliers}
}

// Handle executes the purchase order document query
func (h *PurchaseOrderDocumentHandler) Handle(query PurchaseOrderDocumentQuery) (*PurchaseOrderDocument, error) {
	order, err := h.orders.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("purchase order not found: %w", err)
	}

	supplier, err := h.suppliers.FindByID(order.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	var items []domain.OrderItem
	if err := json.Unmarshal([]byte(order.Items), &items); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to decode order items: %w", err))
	}

	return &PurchaseOrderDocument{
		Order:    order,
		Supplier: supplier,
		Items:    items,
	}, nil
}
