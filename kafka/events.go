package kafka

import "time"

// SaleRecordedEvent is emitted after a sale settles successfully.
type SaleRecordedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	SaleID     uint      `json:"sale_id"`
	ProductID  uint      `json:"product_id"`
	CustomerID *uint     `json:"customer_id,omitempty"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	Total      float64   `json:"total"`
	Timestamp  time.Time `json:"timestamp"`
}

// StockLowEvent is emitted when a settlement drops a product below the
// configured low-stock threshold.
type StockLowEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	ProductID   uint      `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Threshold   int       `json:"threshold"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeSaleRecorded = "sale.recorded"
	EventTypeStockLow     = "stock.low"
)

// Kafka topics
const (
	TopicSaleRecorded = "pos.sale.recorded"
	TopicStockLow     = "pos.stock.low"
)
