package domain

import (
	"time"

	"gorm.io/gorm"
)

// Supplier represents a vendor products are purchased from.
type Supplier struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Email       string         `json:"email" gorm:"not null"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	ContactName string         `json:"contact_name"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Supplier) TableName() string {
	return "suppliers"
}

// SupplierProduct links a supplier to a product it can deliver at a given
// unit price. The (supplier, product) pair is unique; writes are upserts.
type SupplierProduct struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SupplierID uint      `json:"supplier_id" gorm:"not null;uniqueIndex:idx_supplier_product"`
	ProductID  uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_supplier_product"`
	Price      float64   `json:"price" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (SupplierProduct) TableName() string {
	return "supplier_products"
}

// Purchase order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusOrdered   = "ordered"
	OrderStatusReceived  = "received"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is one line of a purchase order. Items are stored JSON-encoded
// on the order record.
type OrderItem struct {
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	SupplierID          uint       `json:"supplier_id" gorm:"not null;index"`
	OrderNumber         string     `json:"order_number" gorm:"uniqueIndex;not null"`
	Items               string     `json:"items" gorm:"type:text;not null"`
	TotalAmount         float64    `json:"total_amount" gorm:"not null"`
	Status              string     `json:"status" gorm:"not null;default:pending"`
	Notes               string     `json:"notes"`
	ExpectedArrivalDate *time.Time `json:"expected_arrival_date"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TableName specifies the table name
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// SupplierRepository defines the contract for supplier data access
type SupplierRepository interface {
	Create(supplier *Supplier) error
	FindByID(id uint) (*Supplier, error)
	FindAll(limit, offset int) ([]Supplier, error)
	Update(supplier *Supplier) error
	Delete(id uint) error
	Count() (int64, error)
}

// SupplierProductRepository defines the contract for supplier-product links
type SupplierProductRepository interface {
	Upsert(link *SupplierProduct) error
	FindBySupplier(supplierID uint, productID *uint) ([]SupplierProduct, error)
	DeleteByPair(supplierID, productID uint) error
}

// PurchaseOrderRepository defines the contract for purchase order data access
type PurchaseOrderRepository interface {
	Create(order *PurchaseOrder) error
	FindByID(id uint) (*PurchaseOrder, error)
	FindAll(limit, offset int) ([]PurchaseOrder, error)
	UpdateStatus(id uint, status string) error
}
