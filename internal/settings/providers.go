package settings

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/parpy69/pos-backend/internal/settings/domain"
	"github.com/parpy69/pos-backend/internal/settings/repository"
)

// ProvideSettingsRepository provides the settings repository with a Redis
// read-through cache layered over the gorm store. redisClient may be nil.
func ProvideSettingsRepository(db *gorm.DB, redisClient *redis.Client) domain.SettingsRepository {
	return repository.NewCachedSettingsRepository(repository.NewGormSettingsRepository(db), redisClient)
}
