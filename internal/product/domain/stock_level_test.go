package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	// thresholds: low 5, moderate 10, high 20
	tests := []struct {
		name     string
		quantity int
		want     StockLevel
	}{
		{"zero is out", 0, StockOut},
		{"negative is out", -3, StockOut},
		{"below low", 4, StockLow},
		{"at low is moderate band", 5, StockModerate},
		{"below moderate", 9, StockModerate},
		{"at moderate is high band", 10, StockHigh},
		{"below high", 19, StockHigh},
		{"at high is full", 20, StockFull},
		{"well stocked", 100, StockFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStock(tt.quantity, 5, 10, 20))
		})
	}
}
