package query

import (
	"fmt"

	"github.com/parpy69/pos-backend/internal/settings/domain"
)

// GetSettingsQuery represents the query to fetch the settings singleton
type GetSettingsQuery struct{}

// GetSettingsHandler handles get settings query
type GetSettingsHandler struct {
	repo domain.SettingsRepository
}

// NewGetSettingsHandler creates a new get settings handler
func NewGetSettingsHandler(repo domain.SettingsRepository) *GetSettingsHandler {
	return &GetSettingsHandler{repo: repo}
}

// Handle executes the get settings query
func (h *GetSettingsHandler) Handle(query GetSettingsQuery) (*domain.Settings, error) {
	settings, err := h.repo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}
