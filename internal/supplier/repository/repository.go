package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

type GormSupplierRepository struct {
	db *gorm.DB
}

func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

func (r *GormSupplierRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Supplier{})
}

func (r *GormSupplierRepository) Create(supplier *domain.Supplier) error {
	return translate(r.db.Create(supplier).Error)
}

func (r *GormSupplierRepository) FindByID(id uint) (*domain.Supplier, error) {
	var supplier domain.Supplier
	if err := r.db.First(&supplier, id).Error; err != nil {
		return nil, translate(err)
	}
	return &supplier, nil
}

func (r *GormSupplierRepository) FindAll(limit, offset int) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	tx := r.db.Order("name ASC")
	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}
	err := tx.Find(&suppliers).Error
	return suppliers, err
}

func (r *GormSupplierRepository) Update(supplier *domain.Supplier) error {
	return translate(r.db.Save(supplier).Error)
}

func (r *GormSupplierRepository) Delete(id uint) error {
	return translate(r.db.Delete(&domain.Supplier{}, id).Error)
}

func (r *GormSupplierRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Supplier{}).Count(&count).Error
	return count, err
}

type GormSupplierProductRepository struct {
	db *gorm.DB
}

func NewGormSupplierProductRepository(db *gorm.DB) *GormSupplierProductRepository {
	return &GormSupplierProductRepository{db: db}
}

func (r *GormSupplierProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.SupplierProduct{})
}

// Upsert inserts the link or, when the (supplier, product) pair already
// exists, updates its price in place.
func (r *GormSupplierProductRepository) Upsert(link *domain.SupplierProduct) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "supplier_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).Create(link).Error
	return translate(err)
}

func (r *GormSupplierProductRepository) FindBySupplier(supplierID uint, productID *uint) ([]domain.SupplierProduct, error) {
	var links []domain.SupplierProduct
	tx := r.db.Where("supplier_id = ?", supplierID)
	if productID != nil {
		tx = tx.Where("product_id = ?", *productID)
	}
	err := tx.Order("product_id ASC").Find(&links).Error
	return links, err
}

func (r *GormSupplierProductRepository) DeleteByPair(supplierID, productID uint) error {
	res := r.db.Where("supplier_id = ? AND product_id = ?", supplierID, productID).
		Delete(&domain.SupplierProduct{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

func (r *GormPurchaseOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.PurchaseOrder{})
}

func (r *GormPurchaseOrderRepository) Create(order *domain.PurchaseOrder) error {
	return translate(r.db.Create(order).Error)
}

func (r *GormPurchaseOrderRepository) FindByID(id uint) (*domain.PurchaseOrder, error) {
	var order domain.PurchaseOrder
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *GormPurchaseOrderRepository) FindAll(limit, offset int) ([]domain.PurchaseOrder, error) {
	var orders []domain.PurchaseOrder
	tx := r.db.Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}
	err := tx.Find(&orders).Error
	return orders, err
}

func (r *GormPurchaseOrderRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&domain.PurchaseOrder{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
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
