package command

import (
	"fmt"

	"github.com/parpy69/pos-backend/internal/customer/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// DeleteCustomerCommand represents the command to delete a customer
type DeleteCustomerCommand struct {
	ID uint
}

// DeleteCustomerHandler handles customer deletion command
type DeleteCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewDeleteCustomerHandler creates a new delete customer handler
func NewDeleteCustomerHandler(repo domain.CustomerRepository) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{repo: repo}
}

// Handle executes the delete customer command
func (h *DeleteCustomerHandler) Handle(cmd DeleteCustomerCommand) error {
	if cmd.ID == 0 {
		return apperrors.InvalidInput("invalid customer id")
	}

	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return fmt.Errorf("customer not found: %w", err)
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
