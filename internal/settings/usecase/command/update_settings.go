package command

import (
	"fmt"
	"time"

	"github.com/parpy69/pos-backend/internal/settings/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// UpdateSettingsCommand represents the command to update the settings
// singleton. All three thresholds are required; loyalty fields are optional
// and keep their stored values when omitted.
type UpdateSettingsCommand struct {
	LowStockThreshold      *int
	ModerateStockThreshold *int
	HighStockThreshold     *int
	LoyaltyPointsEnabled   *bool
	LoyaltyPointsPerDollar *float64
}

// UpdateSettingsHandler handles settings update command
type UpdateSettingsHandler struct {
	repo domain.SettingsRepository
}

// NewUpdateSettingsHandler creates a new update settings handler
func NewUpdateSettingsHandler(repo domain.SettingsRepository) *UpdateSettingsHandler {
	return &UpdateSettingsHandler{repo: repo}
}

// Handle executes the update settings command
func (h *UpdateSettingsHandler) Handle(cmd UpdateSettingsCommand) (*domain.Settings, error) {
	if cmd.LowStockThreshold == nil || cmd.ModerateStockThreshold == nil || cmd.HighStockThreshold == nil {
		return nil, apperrors.InvalidInput("all thresholds are required")
	}

	settings, err := h.repo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings.LowStockThreshold = *cmd.LowStockThreshold
	settings.ModerateStockThreshold = *cmd.ModerateStockThreshold
	settings.HighStockThreshold = *cmd.HighStockThreshold
	if cmd.LoyaltyPointsEnabled != nil {
		settings.LoyaltyPointsEnabled = *cmd.LoyaltyPointsEnabled
	}
	if cmd.LoyaltyPointsPerDollar != nil {
		settings.LoyaltyPointsPerDollar = *cmd.LoyaltyPointsPerDollar
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	settings.UpdatedAt = time.Now()
	if err := h.repo.Update(settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return settings, nil
}
