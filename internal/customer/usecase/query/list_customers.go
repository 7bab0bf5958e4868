package query

import (
	"errors"
	"fmt"

	"github.com/parpy69/pos-backend/internal/customer/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// searchLimit caps name-substring search results, matching the lookup widget
// on the sales page.
const searchLimit = 10

// ListCustomersQuery lists customers, optionally filtered by a name
// substring or an exact card number.
type ListCustomersQuery struct {
	Search     string
	CardNumber string
	Limit      int
	Offset     int
}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo}
}

// Handle executes the list customers query
func (h *ListCustomersHandler) Handle(query ListCustomersQuery) ([]domain.Customer, error) {
	if query.CardNumber != "" {
		customer, err := h.repo.FindByCardNumber(query.CardNumber)
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Customer{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up card number: %w", err)
		}
		return []domain.Customer{*customer}, nil
	}

	if query.Search != "" {
		customers, err := h.repo.SearchByName(query.Search, searchLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to search customers: %w", err)
		}
		return customers, nil
	}

	customers, err := h.repo.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
