package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parpy69/pos-backend/pkg/apperrors"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, uint(1), s.ID)
	assert.Equal(t, 5, s.LowStockThreshold)
	assert.Equal(t, 10, s.ModerateStockThreshold)
	assert.Equal(t, 20, s.HighStockThreshold)
	assert.False(t, s.LoyaltyPointsEnabled)
	assert.Equal(t, 1.0, s.LoyaltyPointsPerDollar)

	require.NoError(t, s.Validate())
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults are valid", func(s *Settings) {}, false},
		{"low above moderate", func(s *Settings) { s.LowStockThreshold = 15 }, true},
		{"low equals moderate", func(s *Settings) { s.ModerateStockThreshold = s.LowStockThreshold }, true},
		{"moderate above high", func(s *Settings) { s.ModerateStockThreshold = 25 }, true},
		{"rate below minimum", func(s *Settings) { s.LoyaltyPointsPerDollar = 0.05 }, true},
		{"rate at minimum", func(s *Settings) { s.LoyaltyPointsPerDollar = MinLoyaltyRate }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)

			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
