package query

import (
	"fmt"

	"github.com/parpy69/pos-backend/internal/customer/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// GetCustomerQuery represents the query to get a customer by ID
type GetCustomerQuery struct {
	ID uint
}

// GetCustomerHandler handles get customer query
type GetCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(repo domain.CustomerRepository) *GetCustomerHandler {
	return &GetCustomerHandler{repo: repo}
}

// Handle executes the get customer query
func (h *GetCustomerHandler) Handle(query GetCustomerQuery) (*domain.Customer, error) {
	if query.ID == 0 {
		return nil, apperrors.InvalidInput("invalid customer id")
	}

	customer, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	return customer, nil
}
