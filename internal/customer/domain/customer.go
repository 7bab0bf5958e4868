package domain

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents the loyalty ledger entry for a shopper. Points and
// lifetime spend are only ever increased by sale settlement or adjusted by an
// explicit edit.
type Customer struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null;index"`
	CardNumber    *string        `json:"card_number" gorm:"uniqueIndex"`
	LoyaltyPoints float64        `json:"loyalty_points" gorm:"not null;default:0"`
	TotalSpent    float64        `json:"total_spent" gorm:"not null;default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id uint) (*Customer, error)
	FindByCardNumber(cardNumber string) (*Customer, error)
	// FirstByNameFold returns the case-insensitive exact name match with the
	// lowest ID. Duplicate names resolve to the oldest record.
	FirstByNameFold(name string) (*Customer, error)
	SearchByName(name string, limit int) ([]Customer, error)
	FindAll(limit, offset int) ([]Customer, error)
	Update(customer *Customer) error
	Delete(id uint) error
}
