package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/keinsta/si-bills-api/pkg/money"
)

// RenderPDF produces a printable A4 PDF of the invoice.
func RenderPDF(inv *Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	// Header: seller on the left, bill meta on the right.
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(110, 9, inv.Seller.Name, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(76, 9, "Sale Invoice", "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(110, 5, inv.Seller.Tagline, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(76, 5, "Bill No: "+inv.SerialNumber, "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for i, c := range inv.Seller.Contacts {
		pdf.CellFormat(110, 5, fmt.Sprintf("%s  Cell: %s", c.Name, c.Phone), "", 0, "L", false, 0, "")
		if i == 0 {
			pdf.CellFormat(76, 5, "Date: "+inv.Date, "", 1, "R", false, 0, "")
		} else {
			pdf.CellFormat(76, 5, "", "", 1, "R", false, 0, "")
		}
	}
	pdf.Ln(3)

	// Customer block.
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(186, 7, "Customer Details", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(93, 6, "Name: "+inv.Business.Name, "LB", 0, "L", false, 0, "")
	pdf.CellFormat(93, 6, "Phone: "+inv.Business.Contact, "RB", 1, "L", false, 0, "")
	pdf.CellFormat(186, 6, "Address: "+inv.Business.Address, "LRB", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Product table.
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(12, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(78, 7, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(26, 7, "Quantity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Net Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, line := range inv.Lines {
		name := line.Name
		if len(name) > 45 {
			name = name[:42] + "..."
		}
		pdf.CellFormat(12, 6, fmt.Sprintf("%d", line.No), "1", 0, "C", false, 0, "")
		pdf.CellFormat(78, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("%d pcs", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, money.Format(line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, money.Format(line.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals block, right-aligned.
	totals := []struct {
		label string
		value float64
	}{
		{"Subtotal:", inv.Breakdown.Subtotal},
		{fmt.Sprintf("Discount (%g%%):", inv.DiscountPercent), inv.Breakdown.DiscountAmount},
		{fmt.Sprintf("Tax (%g%%):", inv.TaxPercent), inv.Breakdown.TaxAmount},
		{"Pending Amount:", inv.Breakdown.PendingAmount},
	}
	pdf.SetFont("Arial", "", 10)
	for _, row := range totals {
		pdf.CellFormat(116, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, money.Format(row.value), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(116, 8, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Net Amount:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, money.Format(inv.NetTotal), "T", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(186, 5, inv.Seller.Footer, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
