// Package invoice renders persisted bills as printable invoices. All
// variants (fixed-width text, HTML, PDF) render from the same composed
// view model, so a bill always shows identical figures regardless of
// layout or of whether it arrived via submission hand-off or serial
// lookup.
package invoice

import (
	"github.com/keinsta/si-bills-api/internal/domain/billing"
	"github.com/keinsta/si-bills-api/internal/domain/entity"
)

// Seller is the issuing business printed in the invoice header.
type Seller struct {
	Name     string
	Tagline  string
	Contacts []SellerContact
	Footer   string
}

// SellerContact is a named phone line in the header.
type SellerContact struct {
	Name  string
	Phone string
}

// DefaultSeller is the SI Engineering letterhead.
var DefaultSeller = Seller{
	Name:    "SI Engineering",
	Tagline: "Broiler Control House, Parts & Services",
	Contacts: []SellerContact{
		{Name: "Ifikhar Ahmad", Phone: "0300 764 3928"},
		{Name: "M. Sultan Ali", Phone: "0307 764 3434"},
	},
	Footer: "Thank you for doing business with us.",
}

// Line is one row of the numbered product table.
type Line struct {
	No        int
	Name      string
	Quantity  int
	UnitPrice float64
	Amount    float64
}

// Invoice is the composed view model shared by every render variant.
//
// The breakdown figures (subtotal, discount, tax, pending) are recomputed
// from the bill's products with the calculator formula, while NetTotal is
// the server-stored total displayed verbatim. If the two ever disagree,
// the printed breakdown and the net amount will visibly disagree too;
// that drift is surfaced on purpose rather than hidden.
type Invoice struct {
	Seller       Seller
	SerialNumber string
	Date         string
	Business     billing.BusinessInfo
	Lines        []Line

	DiscountPercent float64
	TaxPercent      float64
	Breakdown       billing.Totals
	NetTotal        float64
}

// Compose builds the invoice view model from a persisted bill.
func Compose(bill *entity.Bill) *Invoice {
	items := bill.LineItems()
	lines := make([]Line, len(items))
	for i, item := range items {
		lines[i] = Line{
			No:        i + 1,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Amount:    item.Amount(),
		}
	}

	return &Invoice{
		Seller:       DefaultSeller,
		SerialNumber: bill.SerialNumber,
		Date:         bill.CreatedAt.Format("02/01/2006"),
		Business:     bill.Business,
		Lines:        lines,

		DiscountPercent: bill.Discount,
		TaxPercent:      bill.Tax,
		Breakdown:       billing.Compute(items, bill.Discount, bill.Tax, bill.PendingAmount),
		NetTotal:        bill.Total,
	}
}
