package command

import (
	"fmt"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// UpdateOrderStatusCommand represents the command to move an order through
// its lifecycle
type UpdateOrderStatusCommand struct {
	ID     uint
	Status string
}

// UpdateOrderStatusHandler handles purchase order status updates
type UpdateOrderStatusHandler struct {
	orders domain.PurchaseOrderRepository
}

// NewUpdateOrderStatusHandler creates a new update order status handler
func NewUpdateOrderStatusHandler(orders domain.PurchaseOrderRepository) *UpdateOrderStatusHandler {
	return &UpdateOrderStatusHandler{orders: orders}
}

// Handle executes the update order status command
func (h *UpdateOrderStatusHandler) Handle(cmd UpdateOrderStatusCommand) (*domain.PurchaseOrder, error) {
	switch cmd.Status {
	case domain.OrderStatusPending, domain.OrderStatusOrdered,
		domain.OrderStatusReceived, domain.OrderStatusCancelled:
	default:
		return nil, apperrors.InvalidInput("unknown order status %q", cmd.Status)
	}

	if err := h.orders.UpdateStatus(cmd.ID, cmd.Status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return h.orders.FindByID(cmd.ID)
}
