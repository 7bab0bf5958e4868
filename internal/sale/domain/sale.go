package domain

import (
	"context"
	"time"

	customerdomain "github.com/parpy69/pos-backend/internal/customer/domain"
)

// Sale is an append-only transaction record. Price and total are captured
// from the product at the moment of settlement and never change afterwards.
type Sale struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProductID  uint      `json:"product_id" gorm:"not null;index"`
	CustomerID *uint     `json:"customer_id" gorm:"index"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	Price      float64   `json:"price" gorm:"not null"`
	Total      float64   `json:"total" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Sale) TableName() string {
	return "sales"
}

// LoyaltyAccrual describes the customer ledger increments applied together
// with a sale.
type LoyaltyAccrual struct {
	CustomerID uint
	Points     float64
	Spent      float64
}

// Settlement bundles the writes that must commit as one unit: the sale
// insert, the stock decrement for Sale.Quantity, and the optional loyalty
// accrual. NewCustomer, when set, is an unsaved loyalty customer created in
// the same transaction; the sale's customer id and the accrual target are
// filled in from the created record, and a failed settlement leaves no
// customer behind.
type Settlement struct {
	Sale        *Sale
	Accrual     *LoyaltyAccrual
	NewCustomer *customerdomain.Customer
}

// SaleRepository defines the contract for sale data access. Settle applies
// the settlement triad atomically: all three writes commit or none do, and
// the stock decrement only succeeds while on-hand quantity covers the sale.
type SaleRepository interface {
	Settle(ctx context.Context, settlement *Settlement) error
	FindByID(id uint) (*Sale, error)
	FindAll(limit, offset int) ([]Sale, error)
	FindSince(since time.Time) ([]Sale, error)
	Count() (int64, error)
}
