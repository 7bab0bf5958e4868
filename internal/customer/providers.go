package customer

import (
	"gorm.io/gorm"

	"github.com/parpy69/pos-backend/internal/customer/domain"
	"github.com/parpy69/pos-backend/internal/customer/repository"
)

// ProvideCustomerRepository provides the customer repository
func ProvideCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return repository.NewGormCustomerRepository(db)
}
