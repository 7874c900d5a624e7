package invoice

import (
	"fmt"

	"github.com/keinsta/si-bills-api/pkg/money"
)

// textWidth is the character width of the print layout.
const textWidth = 56

// RenderText produces the print-oriented fixed-width layout.
func RenderText(inv *Invoice) string {
	doc := NewDocument(textWidth)

	doc.Center(inv.Seller.Name).
		Center(inv.Seller.Tagline)
	for _, c := range inv.Seller.Contacts {
		doc.Center(fmt.Sprintf("%s  Cell: %s", c.Name, c.Phone))
	}

	doc.Separator('=').
		Center("Sale Invoice").
		KeyValue("Bill No:", inv.SerialNumber).
		KeyValue("Date:", inv.Date).
		Separator('-').
		Text("Customer Details").
		Text(inv.Business.Name).
		Text(inv.Business.Address).
		TextF("Phone: %s", inv.Business.Contact).
		Separator('-')

	// Product table: #, name, qty, price, line amount.
	colWidths := []int{3, 22, 8, 10}
	doc.Columns(colWidths, "#", "Product", "Qty", "Price", "Net Amount")
	doc.Separator('-')
	for _, line := range inv.Lines {
		doc.Columns(colWidths,
			fmt.Sprintf("%d", line.No),
			line.Name,
			fmt.Sprintf("%d pcs", line.Quantity),
			money.Format(line.UnitPrice),
			money.Format(line.Amount),
		)
	}

	doc.Separator('-').
		KeyValue("Subtotal:", money.Format(inv.Breakdown.Subtotal)).
		KeyValue(fmt.Sprintf("Discount (%g%%):", inv.DiscountPercent), money.Format(inv.Breakdown.DiscountAmount)).
		KeyValue(fmt.Sprintf("Tax (%g%%):", inv.TaxPercent), money.Format(inv.Breakdown.TaxAmount)).
		KeyValue("Pending Amount:", money.Format(inv.Breakdown.PendingAmount)).
		Separator('-').
		KeyValue("Net Amount:", money.Format(inv.NetTotal)).
		Separator('=').
		BlankLine().
		Center(inv.Seller.Footer)

	return doc.String()
}
