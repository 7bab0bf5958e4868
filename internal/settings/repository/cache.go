package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parpy69/pos-backend/internal/settings/domain"
	"github.com/parpy69/pos-backend/pkg/logger"
)

const (
	settingsCacheKey = "pos:settings"
	settingsCacheTTL = 5 * time.Minute
)

// CachedSettingsRepository is a read-through Redis cache in front of another
// settings repository. Settings are read on every settlement, so the cache
// keeps the hot path off the database. A nil Redis client disables caching.
type CachedSettingsRepository struct {
	inner domain.SettingsRepository
	redis *redis.Client
}

func NewCachedSettingsRepository(inner domain.SettingsRepository, redisClient *redis.Client) *CachedSettingsRepository {
	return &CachedSettingsRepository{inner: inner, redis: redisClient}
}

func (r *CachedSettingsRepository) Get() (*domain.Settings, error) {
	if r.redis == nil {
		return r.inner.Get()
	}

	ctx := context.Background()
	if cached, err := r.redis.Get(ctx, settingsCacheKey).Bytes(); err == nil && len(cached) > 0 {
		var settings domain.Settings
		if err := json.Unmarshal(cached, &settings); err == nil {
			return &settings, nil
		}
		// Corrupt entry, fall through and refresh
		r.redis.Del(ctx, settingsCacheKey)
	}

	settings, err := r.inner.Get()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(settings); err == nil {
		if err := r.redis.Set(ctx, settingsCacheKey, payload, settingsCacheTTL).Err(); err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("cache_key", settingsCacheKey).
				Msg("Failed to cache settings")
		}
	}

	return settings, nil
}

func (r *CachedSettingsRepository) Update(settings *domain.Settings) error {
	if err := r.inner.Update(settings); err != nil {
		return err
	}

	if r.redis != nil {
		if err := r.redis.Del(context.Background(), settingsCacheKey).Err(); err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("cache_key", settingsCacheKey).
				Msg("Failed to invalidate settings cache")
		}
	}

	return nil
}
