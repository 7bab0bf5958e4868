package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/parpy69/pos-backend/internal/customer/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Customer{})
}

func (r *GormCustomerRepository) Create(customer *domain.Customer) error {
	return translate(r.db.Create(customer).Error)
}

func (r *GormCustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindByCardNumber(cardNumber string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.Where("card_number = ?", cardNumber).First(&customer).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FirstByNameFold(name string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.Where("LOWER(name) = LOWER(?)", name).
		Order("id ASC").
		First(&customer).Error
	if err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *GormCustomerRepository) SearchByName(name string, limit int) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.Where("name ILIKE ?", "%"+name+"%").
		Order("name ASC").
		Limit(limit).
		Find(&customers).Error
	return customers, err
}

func (r *GormCustomerRepository) FindAll(limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	tx := r.db.Order("name ASC")
	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}
	err := tx.Find(&customers).Error
	return customers, err
}

func (r *GormCustomerRepository) Update(customer *domain.Customer) error {
	return translate(r.db.Save(customer).Error)
}

func (r *GormCustomerRepository) Delete(id uint) error {
	return translate(r.db.Delete(&domain.Customer{}, id).Error)
}

// translate maps gorm errors onto the service error kinds
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrConflict
	default:
		return err
	}
}
