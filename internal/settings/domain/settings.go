package domain

import (
	"time"

	"github.com/parpy69/pos-backend/pkg/apperrors"
)

// Settings is the singleton configuration row. Exactly one record exists; it
// is created with defaults the first time it is read.
type Settings struct {
	ID                     uint      `json:"id" gorm:"primaryKey"`
	LowStockThreshold      int       `json:"low_stock_threshold" gorm:"not null;default:5"`
	ModerateStockThreshold int       `json:"moderate_stock_threshold" gorm:"not null;default:10"`
	HighStockThreshold     int       `json:"high_stock_threshold" gorm:"not null;default:20"`
	LoyaltyPointsEnabled   bool      `json:"loyalty_points_enabled" gorm:"not null;default:false"`
	LoyaltyPointsPerDollar float64   `json:"loyalty_points_per_dollar" gorm:"not null;default:1.0"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Settings) TableName() string {
	return "settings"
}

// MinLoyaltyRate is the lowest accepted points-per-dollar rate.
const MinLoyaltyRate = 0.1

// DefaultSettings returns the values used when no settings row exists yet.
// The ID is pinned to 1 so concurrent first accesses collide on the primary
// key instead of inserting a second row.
func DefaultSettings() *Settings {
	return &Settings{
		ID:                     1,
		LowStockThreshold:      5,
		ModerateStockThreshold: 10,
		HighStockThreshold:     20,
		LoyaltyPointsEnabled:   false,
		LoyaltyPointsPerDollar: 1.0,
	}
}

// Validate checks the threshold ordering and loyalty rate invariants.
func (s *Settings) Validate() error {
	if s.LowStockThreshold >= s.ModerateStockThreshold || s.ModerateStockThreshold >= s.HighStockThreshold {
		return apperrors.InvalidInput("thresholds must be in ascending order: low < moderate < high")
	}
	if s.LoyaltyPointsPerDollar < MinLoyaltyRate {
		return apperrors.InvalidInput("loyalty points per dollar must be at least %.1f", MinLoyaltyRate)
	}
	return nil
}

// SettingsRepository defines the contract for settings data access
type SettingsRepository interface {
	// Get returns the singleton settings row, creating it with defaults
	// when absent.
	Get() (*Settings, error)
	Update(settings *Settings) error
}
