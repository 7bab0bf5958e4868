package domain

// StockLevel classifies on-hand quantity against the configured thresholds.
type StockLevel string

const (
	StockOut      StockLevel = "out"
	StockLow      StockLevel = "low"
	StockModerate StockLevel = "moderate"
	StockHigh     StockLevel = "high"
	StockFull     StockLevel = "full"
)

// ClassifyStock maps a quantity into a stock level band. Thresholds are the
// strictly ascending low < moderate < high values from settings.
func ClassifyStock(quantity, low, moderate, high int) StockLevel {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity < low:
		return StockLow
	case quantity < moderate:
		return StockModerate
	case quantity < high:
		return StockHigh
	default:
		return StockFull
	}
}
