package billing

// LineItem is a single product line on a draft or bill.
type LineItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Amount returns the line total (unit price times quantity).
func (li LineItem) Amount() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// Totals is the full arithmetic breakdown of a bill.
// Total always satisfies:
//
//	Total = (Subtotal - DiscountAmount) + TaxAmount + PendingAmount
//
// No rounding is applied at any step; rounding to whole currency units
// happens only in the display layer (pkg/money).
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	TaxableAmount  float64 `json:"taxableAmount"`
	TaxAmount      float64 `json:"taxAmount"`
	PendingAmount  float64 `json:"pendingAmount"`
	Total          float64 `json:"total"`
}

// Compute calculates the bill breakdown from line items, a discount
// percentage, a tax percentage, and a pending amount carried over from a
// prior balance. Discount applies to the subtotal; tax applies to the
// discounted (taxable) amount; the pending amount is added last.
//
// Compute is pure and does not validate its inputs. Malformed items are
// rejected at the draft boundary (see Draft) before they ever reach here.
func Compute(items []LineItem, discountPercent, taxPercent, pendingAmount float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount()
	}

	discountAmount := subtotal * discountPercent / 100
	taxable := subtotal - discountAmount
	taxAmount := taxable * taxPercent / 100

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxable,
		TaxAmount:      taxAmount,
		PendingAmount:  pendingAmount,
		Total:          taxable + taxAmount + pendingAmount,
	}
}
