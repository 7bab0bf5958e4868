//go:build wireinject
// +build wireinject

package sale

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	customerdomain "github.com/parpy69/pos-backend/internal/customer/domain"
	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/sale/delivery/http"
	"github.com/parpy69/pos-backend/internal/sale/usecase/command"
	"github.com/parpy69/pos-backend/internal/sale/usecase/query"
	settingsdomain "github.com/parpy69/pos-backend/internal/settings/domain"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSaleRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	products productdomain.ProductRepository,
	customers customerdomain.CustomerRepository,
	settings settingsdomain.SettingsRepository,
	policy command.MissingCustomerPolicy,
	publisher command.EventPublisher,
) (*http.SaleHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewRecordSaleHandler,
		query.NewSalesAnalyticsHandler,
		query.NewThresholdRecommendationsHandler,
		http.NewSaleHandler,
	)
	return nil, nil
}
