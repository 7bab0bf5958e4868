//go:build wireinject
// +build wireinject

package product

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/parpy69/pos-backend/internal/product/delivery/http"
	"github.com/parpy69/pos-backend/internal/product/usecase/command"
	"github.com/parpy69/pos-backend/internal/product/usecase/query"
	settingsdomain "github.com/parpy69/pos-backend/internal/settings/domain"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, settingsRepo settingsdomain.SettingsRepository) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewCreateProductHandler,
		command.NewUpdateProductHandler,
		command.NewDeleteProductHandler,
		query.NewGetProductHandler,
		query.NewListProductsHandler,
		query.NewLowStockHandler,
		http.NewProductHandler,
	)
	return nil, nil
}
