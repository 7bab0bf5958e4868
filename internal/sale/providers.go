package sale

import (
	"gorm.io/gorm"

	"github.com/parpy69/pos-backend/internal/sale/domain"
	"github.com/parpy69/pos-backend/internal/sale/repository"
)

// ProvideSaleRepository provides the sale repository
func ProvideSaleRepository(db *gorm.DB) domain.SaleRepository {
	return repository.NewGormSaleRepository(db)
}
