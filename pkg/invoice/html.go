package invoice

import (
	"bytes"
	"html/template"

	"github.com/keinsta/si-bills-api/pkg/money"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Sale Invoice {{.SerialNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 24px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #1f2937;
      background: #ffffff;
    }
    .invoice { max-width: 820px; margin: 0 auto; border: 1px solid #d1d5db; padding: 32px; }
    .header {
      display: flex;
      justify-content: space-between;
      border-bottom: 1px solid #d1d5db;
      padding-bottom: 16px;
      margin-bottom: 16px;
    }
    .seller h1 { margin: 0 0 4px; font-size: 22px; }
    .seller p { margin: 2px 0; font-size: 12px; color: #4b5563; }
    .meta { text-align: right; font-size: 13px; }
    .meta h2 { margin: 0 0 6px; font-size: 17px; }
    table { width: 100%; border-collapse: collapse; font-size: 13px; margin-bottom: 24px; }
    th, td { padding: 6px 8px; border: 1px solid #d1d5db; }
    th { background: #f3f4f6; }
    td.num, th.num { text-align: right; }
    td.center, th.center { text-align: center; }
    .totals { max-width: 280px; margin-left: auto; font-size: 13px; }
    .totals .row { display: flex; justify-content: space-between; padding: 2px 0; }
    .totals .net { border-top: 1px solid #d1d5db; font-weight: 600; padding-top: 6px; margin-top: 4px; }
    .footer { margin-top: 32px; font-size: 11px; color: #9ca3af; }
    @media print {
      body { padding: 0; }
      .invoice { border: none; }
    }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="header">
      <div class="seller">
        <h1>{{.Seller.Name}}</h1>
        <p>{{.Seller.Tagline}}</p>
        {{range .Seller.Contacts}}<p><strong>{{.Name}}</strong> Cell: {{.Phone}}</p>
        {{end}}
      </div>
      <div class="meta">
        <h2>Sale Invoice</h2>
        <p><strong>Bill No: {{.SerialNumber}}</strong></p>
        <p>Date: {{.Date}}</p>
        <p><strong>Customer Details</strong></p>
        <p>{{.Business.Name}}</p>
        <p>{{.Business.Address}}</p>
        <p>Phone: {{.Business.Contact}}</p>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th class="center">#</th>
          <th>Product</th>
          <th class="center">Quantity</th>
          <th class="num">Price</th>
          <th class="num">Net Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}<tr>
          <td class="center">{{.No}}</td>
          <td>{{.Name}}</td>
          <td class="center">{{.Quantity}} pcs</td>
          <td class="num">{{rs .UnitPrice}}</td>
          <td class="num">{{rs .Amount}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <div class="row"><span>Subtotal:</span><span>{{rs .Breakdown.Subtotal}}</span></div>
      <div class="row"><span>Discount ({{.DiscountPercent}}%):</span><span>{{rs .Breakdown.DiscountAmount}}</span></div>
      <div class="row"><span>Tax ({{.TaxPercent}}%):</span><span>{{rs .Breakdown.TaxAmount}}</span></div>
      <div class="row"><span>Pending Amount:</span><span>{{rs .Breakdown.PendingAmount}}</span></div>
      <div class="row net"><span>Net Amount:</span><span>{{rs .NetTotal}}</span></div>
    </div>

    <div class="footer">{{.Seller.Footer}}</div>
  </div>
</body>
</html>
`

var htmlTemplate = template.Must(
	template.New("invoice").
		Funcs(template.FuncMap{"rs": money.Format}).
		Parse(invoiceHTMLTemplate),
)

// RenderHTML produces the interactive HTML layout.
func RenderHTML(inv *Invoice) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, inv); err != nil {
		return "", err
	}
	return buf.String(), nil
}
