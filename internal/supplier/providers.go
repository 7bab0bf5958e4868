package supplier

import (
	"gorm.io/gorm"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/internal/supplier/repository"
)

// ProvideSupplierRepository provides the supplier repository
func ProvideSupplierRepository(db *gorm.DB) domain.SupplierRepository {
	return repository.NewGormSupplierRepository(db)
}

// ProvideSupplierProductRepository provides the supplier-product link repository
func ProvideSupplierProductRepository(db *gorm.DB) domain.SupplierProductRepository {
	return repository.NewGormSupplierProductRepository(db)
}

// ProvidePurchaseOrderRepository provides the purchase order repository
func ProvidePurchaseOrderRepository(db *gorm.DB) domain.PurchaseOrderRepository {
	return repository.NewGormPurchaseOrderRepository(db)
}
