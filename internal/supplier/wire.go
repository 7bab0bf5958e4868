//go:build wireinject
// +build wireinject

package supplier

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/supplier/delivery/http"
	"github.com/parpy69/pos-backend/internal/supplier/usecase/command"
	"github.com/parpy69/pos-backend/internal/supplier/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSupplierRepository,
	ProvideSupplierProductRepository,
	ProvidePurchaseOrderRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, products productdomain.ProductRepository) (*http.SupplierHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewCreateSupplierHandler,
		command.NewUpdateSupplierHandler,
		command.NewDeleteSupplierHandler,
		command.NewUpsertSupplierProductHandler,
		command.NewDeleteSupplierProductHandler,
		command.NewCreatePurchaseOrderHandler,
		command.NewUpdateOrderStatusHandler,
		query.NewGetSupplierHandler,
		query.NewListSuppliersHandler,
		query.NewListSupplierProductsHandler,
		query.NewListPurchaseOrdersHandler,
		query.NewPurchaseOrderDocumentHandler,
		http.NewSupplierHandler,
	)
	return nil, nil
}
