package command

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// CreatePurchaseOrderCommand represents the command to create a purchase order
type CreatePurchaseOrderCommand struct {
	SupplierID          uint
	Items               []domain.OrderItem
	Notes               string
	ExpectedArrivalDate *time.Time
}

// CreatePurchaseOrderHandler handles purchase order creation command
type CreatePurchaseOrderHandler struct {
	orders    domain.PurchaseOrderRepository
	suppliers domain.SupplierRepository
}

// NewCreatePurchaseOrderHandler creates a new create purchase order handler
func NewCreatePurchaseOrderHandler(
	orders domain.PurchaseOrderRepository,
	suppliers domain.SupplierRepository,
) *CreatePurchaseOrderHandler {
	return &CreatePurchaseOrderHandler{orders: orders, suppliers: suppliers}
}

// Handle executes the create purchase order command
func (h *CreatePurchaseOrderHandler) Handle(cmd CreatePurchaseOrderCommand) (*domain.PurchaseOrder, error) {
	if cmd.SupplierID == 0 {
		return nil, apperrors.InvalidInput("supplier id is required")
	}
	if len(cmd.Items) == 0 {
		return nil, apperrors.InvalidInput("order must contain at least one item")
	}

	var total float64
	for _, item := range cmd.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.InvalidInput("item quantity must be a positive integer")
		}
		if item.UnitPrice < 0 {
			return nil, apperrors.InvalidInput("item unit price cannot be negative")
		}
		total += item.UnitPrice * float64(item.Quantity)
	}

	if _, err := h.suppliers.FindByID(cmd.SupplierID); err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	encoded, err := json.Marshal(cmd.Items)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to encode order items: %w", err))
	}

	order := &domain.PurchaseOrder{
		SupplierID:          cmd.SupplierID,
		OrderNumber:         newOrderNumber(),
		Items:               string(encoded),
		TotalAmount:         total,
		Status:              domain.OrderStatusPending,
		Notes:               strings.TrimSpace(cmd.Notes),
		ExpectedArrivalDate: cmd.ExpectedArrivalDate,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if err := h.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create purchase order: %w", err)
	}

	return order, nil
}

// newOrderNumber generates a short unique order number with the PO- prefix
func newOrderNumber() string {
	return "PO-" + strings.ToUpper(uuid.New().String()[:8])
}
