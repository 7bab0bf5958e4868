package http

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/internal/supplier/usecase/query"
)

// documentTemplate renders the printable purchase order. Kept self-contained
// so the endpoint works without static assets.
var documentTemplate = template.Must(template.New("purchase-order").Funcs(template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
	"date": func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	},
	"lineTotal": func(item domain.OrderItem) float64 {
		return item.UnitPrice * float64(item.Quantity)
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Purchase Order {{.Order.OrderNumber}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; margin: 40px; color: #222; }
  h1 { border-bottom: 2px solid #222; padding-bottom: 8px; }
  .meta { margin: 16px 0; }
  .meta div { margin: 2px 0; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th, td { border: 1px solid #999; padding: 6px 10px; text-align: left; }
  th { background: #eee; }
  td.num, th.num { text-align: right; }
  .total { font-weight: bold; }
  .notes { margin-top: 24px; font-style: italic; }
</style>
</head>
<body>
<h1>Purchase Order {{.Order.OrderNumber}}</h1>
<div class="meta">
  <div><strong>Supplier:</strong> {{.Supplier.Name}}</div>
  <div><strong>Email:</strong> {{.Supplier.Email}}</div>
  {{if .Supplier.Phone}}<div><strong>Phone:</strong> {{.Supplier.Phone}}</div>{{end}}
  {{if .Supplier.Address}}<div><strong>Address:</strong> {{.Supplier.Address}}</div>{{end}}
  {{if .Supplier.ContactName}}<div><strong>Contact:</strong> {{.Supplier.ContactName}}</div>{{end}}
  <div><strong>Status:</strong> {{.Order.Status}}</div>
  <div><strong>Created:</strong> {{date .Order.CreatedAt}}</div>
  {{with .Order.ExpectedArrivalDate}}<div><strong>Expected arrival:</strong> {{date .}}</div>{{end}}
</div>
<table>
  <tr><th>Product</th><th class="num">Quantity</th><th class="num">Unit price</th><th class="num">Line total</th></tr>
  {{range .Items}}
  <tr>
    <td>{{.ProductName}}</td>
    <td class="num">{{.Quantity}}</td>
    <td class="num">{{money .UnitPrice}}</td>
    <td class="num">{{money (lineTotal .)}}</td>
  </tr>
  {{end}}
  <tr class="total"><td colspan="3">Total</td><td class="num">{{money .Order.TotalAmount}}</td></tr>
</table>
{{if .Order.Notes}}<p class="notes">{{.Order.Notes}}</p>{{end}}
</body>
</html>
`))

// renderDocument writes the HTML purchase order to w.
func renderDocument(w io.Writer, doc *query.PurchaseOrderDocument) error {
	return documentTemplate.Execute(w, doc)
}
