package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/parpy69/pos-backend/internal/settings/domain"
)

type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Settings{})
}

// Get returns the singleton row, creating it with defaults on first access.
func (r *GormSettingsRepository) Get() (*domain.Settings, error) {
	var settings domain.Settings
	err := r.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := domain.DefaultSettings()
	if err := r.db.Create(defaults).Error; err != nil {
		// Defaults carry the fixed singleton ID, so a concurrent first
		// access that won the insert surfaces here as a duplicate key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := r.db.First(&settings).Error; err == nil {
				return &settings, nil
			}
		}
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	return defaults, nil
}

func (r *GormSettingsRepository) Update(settings *domain.Settings) error {
	return r.db.Save(settings).Error
}
