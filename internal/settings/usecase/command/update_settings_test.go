package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parpy69/pos-backend/internal/settings/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

type fakeSettingsRepo struct {
	settings *domain.Settings
}

func (r *fakeSettingsRepo) Get() (*domain.Settings, error) {
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Update(s *domain.Settings) error {
	r.settings = s
	return nil
}

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestUpdateSettings_AppliesAllFields(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.DefaultSettings()}
	handler := NewUpdateSettingsHandler(repo)

	updated, err := handler.Handle(UpdateSettingsCommand{
		LowStockThreshold:      intPtr(3),
		ModerateStockThreshold: intPtr(8),
		HighStockThreshold:     intPtr(15),
		LoyaltyPointsEnabled:   boolPtr(true),
		LoyaltyPointsPerDollar: floatPtr(2.5),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, updated.LowStockThreshold)
	assert.Equal(t, 8, updated.ModerateStockThreshold)
	assert.Equal(t, 15, updated.HighStockThreshold)
	assert.True(t, updated.LoyaltyPointsEnabled)
	assert.Equal(t, 2.5, updated.LoyaltyPointsPerDollar)
	assert.Equal(t, updated, repo.settings)
}

func TestUpdateSettings_RequiresAllThresholds(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.DefaultSettings()}
	handler := NewUpdateSettingsHandler(repo)

	_, err := handler.Handle(UpdateSettingsCommand{
		LowStockThreshold:      intPtr(3),
		ModerateStockThreshold: intPtr(8),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUpdateSettings_RejectsDescendingThresholds(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.DefaultSettings()}
	handler := NewUpdateSettingsHandler(repo)

	_, err := handler.Handle(UpdateSettingsCommand{
		LowStockThreshold:      intPtr(10),
		ModerateStockThreshold: intPtr(5),
		HighStockThreshold:     intPtr(20),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	// stored settings untouched
	assert.Equal(t, 5, repo.settings.LowStockThreshold)
}

func TestUpdateSettings_KeepsLoyaltyFieldsWhenOmitted(t *testing.T) {
	stored := domain.DefaultSettings()
	stored.LoyaltyPointsEnabled = true
	stored.LoyaltyPointsPerDollar = 3.0
	repo := &fakeSettingsRepo{settings: stored}
	handler := NewUpdateSettingsHandler(repo)

	updated, err := handler.Handle(UpdateSettingsCommand{
		LowStockThreshold:      intPtr(4),
		ModerateStockThreshold: intPtr(9),
		HighStockThreshold:     intPtr(18),
	})
	require.NoError(t, err)

	assert.True(t, updated.LoyaltyPointsEnabled)
	assert.Equal(t, 3.0, updated.LoyaltyPointsPerDollar)
}

func TestUpdateSettings_RejectsLowLoyaltyRate(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.DefaultSettings()}
	handler := NewUpdateSettingsHandler(repo)

	_, err := handler.Handle(UpdateSettingsCommand{
		LowStockThreshold:      intPtr(5),
		ModerateStockThreshold: intPtr(10),
		HighStockThreshold:     intPtr(20),
		LoyaltyPointsPerDollar: floatPtr(0.01),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
