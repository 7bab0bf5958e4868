package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product represents the product entity
type Product struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Price     float64        `json:"price" gorm:"not null"`
	Quantity  int            `json:"quantity" gorm:"not null;default:0"`
	Barcode   *string        `json:"barcode" gorm:"uniqueIndex"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// InStock checks whether the requested quantity can be fulfilled
func (p *Product) InStock(quantity int) bool {
	return p.Quantity >= quantity
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindByBarcode(barcode string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
}
