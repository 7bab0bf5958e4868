package product

import (
	"gorm.io/gorm"

	"github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/product/repository"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}
