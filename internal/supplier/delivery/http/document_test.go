package http

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/internal/supplier/usecase/query"
)

func TestRenderDocument(t *testing.T) {
	arrival := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	doc := &query.PurchaseOrderDocument{
		Order: &domain.PurchaseOrder{
			ID:                  1,
			SupplierID:          1,
			OrderNumber:         "PO-A1B2C3D4",
			TotalAmount:         55,
			Status:              domain.OrderStatusPending,
			Notes:               "rush order",
			ExpectedArrivalDate: &arrival,
			CreatedAt:           time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		},
		Supplier: &domain.Supplier{
			ID:    1,
			Name:  "Acme Wholesale",
			Email: "orders@acme.example",
			Phone: "555-0100",
		},
		Items: []domain.OrderItem{
			{ProductID: 1, ProductName: "Coffee", Quantity: 10, UnitPrice: 4.5},
			{ProductID: 2, ProductName: "Tea", Quantity: 5, UnitPrice: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderDocument(&buf, doc))

	html := buf.String()
	assert.Contains(t, html, "PO-A1B2C3D4")
	assert.Contains(t, html, "Acme Wholesale")
	assert.Contains(t, html, "orders@acme.example")
	assert.Contains(t, html, "Coffee")
	assert.Contains(t, html, "$4.50")
	assert.Contains(t, html, "$45.00")
	assert.Contains(t, html, "$55.00")
	assert.Contains(t, html, "Sep 15, 2026")
	assert.Contains(t, html, "rush order")
}

func TestRenderDocument_EscapesSupplierFields(t *testing.T) {
	doc := &query.PurchaseOrderDocument{
		Order: &domain.PurchaseOrder{
			OrderNumber: "PO-00000000",
			Status:      domain.OrderStatusPending,
			CreatedAt:   time.Now(),
		},
		Supplier: &domain.Supplier{
			Name:  "<script>alert(1)</script>",
			Email: "x@example.com",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderDocument(&buf, doc))

	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}
