package repository

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	customerdomain "github.com/parpy69/pos-backend/internal/customer/domain"
	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/sale/domain"
	"github.com/parpy69/pos-backend/pkg/apperrors"
)

var tracer = otel.Tracer("sale-repository")

type GormSaleRepository struct {
	db *gorm.DB
}

func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

func (r *GormSaleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Sale{})
}

// Settle applies the sale insert, stock decrement, optional customer create
// and optional loyalty accrual in a single transaction. The decrement is
// guarded by a
// compare-and-decrement condition so concurrent settlements against the same
// product can never drive on-hand quantity negative; the loser observes zero
// affected rows and the whole transaction rolls back with
// ErrInsufficientStock.
func (r *GormSaleRepository) Settle(ctx context.Context, settlement *domain.Settlement) error {
	ctx, span := tracer.Start(ctx, "repository.Settle",
		trace.WithAttributes(
			attribute.Int64("product.id", int64(settlement.Sale.ProductID)),
			attribute.Int("sale.quantity", settlement.Sale.Quantity),
		),
	)
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sale := settlement.Sale

		res := tx.Model(&productdomain.Product{}).
			Where("id = ? AND quantity >= ?", sale.ProductID, sale.Quantity).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", sale.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Either the product vanished or stock no longer covers the
			// sale; distinguish so callers can report the right kind.
			var count int64
			if err := tx.Model(&productdomain.Product{}).Where("id = ?", sale.ProductID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return apperrors.ErrNotFound
			}
			return apperrors.ErrInsufficientStock
		}

		// A first-time loyalty customer is created in the same transaction
		// as the sale, so a failed settlement leaves no orphan customer.
		if nc := settlement.NewCustomer; nc != nil {
			if err := tx.Create(nc).Error; err != nil {
				return err
			}
			id := nc.ID
			sale.CustomerID = &id
			if settlement.Accrual != nil {
				settlement.Accrual.CustomerID = nc.ID
			}
		}

		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		if accrual := settlement.Accrual; accrual != nil {
			res := tx.Model(&customerdomain.Customer{}).
				Where("id = ?", accrual.CustomerID).
				Updates(map[string]interface{}{
					"loyalty_points": gorm.Expr("loyalty_points + ?", accrual.Points),
					"total_spent":    gorm.Expr("total_spent + ?", accrual.Spent),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperrors.ErrNotFound
			}
		}

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int64("sale.id", int64(settlement.Sale.ID)))
	return nil
}

func (r *GormSaleRepository) FindByID(id uint) (*domain.Sale, error) {
	var sale domain.Sale
	if err := r.db.First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

func (r *GormSaleRepository) FindAll(limit, offset int) ([]domain.Sale, error) {
	var sales []domain.Sale
	tx := r.db.Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}
	err := tx.Find(&sales).Error
	return sales, err
}

func (r *GormSaleRepository) FindSince(since time.Time) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *GormSaleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Sale{}).Count(&count).Error
	return count, err
}
