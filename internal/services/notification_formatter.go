package services

import (
	"bytes"
	"fmt"
	"html/template"

	"partsstore/internal/models"

	"github.com/shopspring/decimal"
)

const notificationTemplates = `
{{define "items"}}
<table border="1" cellpadding="5" cellspacing="0" style="border-collapse: collapse; width: 100%;">
  <thead>
    <tr>
      <th>Item</th>
      <th>Qty</th>
      <th>Price ({{.Currency}})</th>
    </tr>
  </thead>
  <tbody>
{{- range .Order.OrderItems}}
    <tr class="item">
      <td>{{.Name}}</td>
      <td>{{.Quantity}}</td>
      <td>{{money .Price}}</td>
    </tr>
{{- end}}
  </tbody>
</table>
<p><b>Subtotal:</b> {{.Currency}} {{money .Order.Subtotal}}</p>
<p><b>Shipping:</b> {{.Currency}} {{money .Order.Shipping}}</p>
<p><b>Total:</b> {{.Currency}} {{money .Order.Total}}</p>
{{end}}

{{define "admin"}}
<h2>📦 New Order Received</h2>
<p><b>Name:</b> {{.Order.Name}}</p>
<p><b>Email:</b> {{.Order.Email}}</p>
<p><b>Phone:</b> {{if .Order.Phone}}{{.Order.Phone}}{{else}}not provided{{end}}</p>
<p><b>Address:</b> {{.Order.Address}}</p>
{{template "items" .}}
{{end}}

{{define "customer"}}
<h2>✅ Thank you for your order, {{.Order.Name}}!</h2>
<p>We have received your order. Here are the details:</p>
{{template "items" .}}
<p>📦 Your order is being processed. We’ll notify you once it’s shipped!</p>
<p>{{.Shop}}</p>
{{end}}
`

// FormatMoney renders an amount with exactly two decimals, rounding half away from zero.
func FormatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// NotificationFormatter renders order notifications. User-supplied fields are HTML-escaped.
type NotificationFormatter struct {
	shop     string
	currency string
	tmpl     *template.Template
}

// NewNotificationFormatter creates a formatter that labels amounts with currency.
func NewNotificationFormatter(shop, currency string) *NotificationFormatter {
	tmpl := template.Must(template.New("notifications").
		Funcs(template.FuncMap{"money": FormatMoney}).
		Parse(notificationTemplates))

	return &NotificationFormatter{
		shop:     shop,
		currency: currency,
		tmpl:     tmpl,
	}
}

type notificationData struct {
	Shop     string
	Currency string
	Order    models.Order
}

// Render returns the admin and customer documents for order.
func (f *NotificationFormatter) Render(order models.Order) (adminHTML, customerHTML string, err error) {
	data := notificationData{
		Shop:     f.shop,
		Currency: f.currency,
		Order:    order,
	}

	if adminHTML, err = f.execute("admin", data); err != nil {
		return "", "", err
	}
	if customerHTML, err = f.execute("customer", data); err != nil {
		return "", "", err
	}
	return adminHTML, customerHTML, nil
}

func (f *NotificationFormatter) execute(name string, data notificationData) (string, error) {
	var buf bytes.Buffer
	if err := f.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s notification: %w", name, err)
	}
	return buf.String(), nil
}
