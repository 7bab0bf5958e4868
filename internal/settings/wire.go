//go:build wireinject
// +build wireinject

package settings

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/parpy69/pos-backend/internal/settings/delivery/http"
	"github.com/parpy69/pos-backend/internal/settings/usecase/command"
	"github.com/parpy69/pos-backend/internal/settings/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSettingsRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, redisClient *redis.Client) (*http.SettingsHandler, error) {
	wire.Build(
		RepositorySet,
		query.NewGetSettingsHandler,
		command.NewUpdateSettingsHandler,
		http.NewSettingsHandler,
	)
	return nil, nil
}
