package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parpy69/pos-backend/internal/customer/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// UpdateCustomerCommand represents a partial customer update. Nil fields are
// left unchanged.
type UpdateCustomerCommand struct {
	ID            uint
	Name          *string
	CardNumber    *string
	LoyaltyPoints *float64
	TotalSpent    *float64
}

// UpdateCustomerHandler handles customer update command
type UpdateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo}
}

// Handle executes the update customer command
func (h *UpdateCustomerHandler) Handle(cmd UpdateCustomerCommand) (*domain.Customer, error) {
	if cmd.ID == 0 {
		return nil, apperrors.InvalidInput("invalid customer id")
	}

	customer, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return nil, apperrors.InvalidInput("customer name cannot be empty")
		}
		customer.Name = name
	}

	if cmd.CardNumber != nil {
		card := normalizeCard(*cmd.CardNumber)
		if card != nil && (customer.CardNumber == nil || *customer.CardNumber != *card) {
			if existing, err := h.repo.FindByCardNumber(*card); err == nil && existing != nil && existing.ID != cmd.ID {
				return nil, apperrors.Conflict("card number already exists")
			} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to check card number: %w", err)
			}
		}
		customer.CardNumber = card
	}

	if cmd.LoyaltyPoints != nil {
		if *cmd.LoyaltyPoints < 0 {
			return nil, apperrors.InvalidInput("loyalty points cannot be negative")
		}
		customer.LoyaltyPoints = *cmd.LoyaltyPoints
	}

	if cmd.TotalSpent != nil {
		if *cmd.TotalSpent < 0 {
			return nil, apperrors.InvalidInput("total spent cannot be negative")
		}
		customer.TotalSpent = *cmd.TotalSpent
	}

	customer.UpdatedAt = time.Now()
	if err := h.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}
