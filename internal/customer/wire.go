//go:build wireinject
// +build wireinject

package customer

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/parpy69/pos-backend/internal/customer/delivery/http"
	"github.com/parpy69/pos-backend/internal/customer/usecase/command"
	"github.com/parpy69/pos-backend/internal/customer/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCustomerRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CustomerHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewCreateCustomerHandler,
		command.NewUpdateCustomerHandler,
		command.NewDeleteCustomerHandler,
		query.NewGetCustomerHandler,
		query.NewListCustomersHandler,
		http.NewCustomerHandler,
	)
	return nil, nil
}
