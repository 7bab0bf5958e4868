package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parpy69/pos-backend/internal/customer/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// CreateCustomerCommand represents the command to create a new customer
type CreateCustomerCommand struct {
	Name       string
	CardNumber string
}

// CreateCustomerHandler handles customer creation command
type CreateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewCreateCustomerHandler creates a new create customer handler
func NewCreateCustomerHandler(repo domain.CustomerRepository) *CreateCustomerHandler {
	return &CreateCustomerHandler{repo: repo}
}

// Handle executes the create customer command
func (h *CreateCustomerHandler) Handle(cmd CreateCustomerCommand) (*domain.Customer, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, apperrors.InvalidInput("customer name is required")
	}

	card := normalizeCard(cmd.CardNumber)
	if card != nil {
		if existing, err := h.repo.FindByCardNumber(*card); err == nil && existing != nil {
			return nil, apperrors.Conflict("card number already exists")
		} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check card number: %w", err)
		}
	}

	customer := &domain.Customer{
		Name:          name,
		CardNumber:    card,
		LoyaltyPoints: 0,
		TotalSpent:    0,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// normalizeCard returns nil for blank card numbers so the unique index only
// applies to real values.
func normalizeCard(cardNumber string) *string {
	c := strings.TrimSpace(cardNumber)
	if c == "" {
		return nil
	}
	return &c
}
