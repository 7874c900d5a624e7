package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/keinsta/si-bills-api/internal/domain/billing"
	"github.com/keinsta/si-bills-api/internal/domain/entity"
)

func billForTest() *entity.Bill {
	return &entity.Bill{
		SerialNumber: "BILL-042",
		Business: billing.BusinessInfo{
			Name:    "Chaudhry Poultry Farm",
			Contact: "0300 1234567",
			Address: "GT Road, Sahiwal",
		},
		Products: []entity.BillProduct{
			{Position: 0, Name: "Fan", UnitPrice: 1000, Quantity: 2},
		},
		Discount:      10,
		Tax:           5,
		PendingAmount: 500,
		Total:         2390,
		CreatedAt:     time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestComposeRecomputesBreakdown(t *testing.T) {
	inv := Compose(billForTest())

	if inv.Breakdown.Subtotal != 2000 {
		t.Errorf("Subtotal = %v, want 2000", inv.Breakdown.Subtotal)
	}
	if inv.Breakdown.DiscountAmount != 200 {
		t.Errorf("DiscountAmount = %v, want 200", inv.Breakdown.DiscountAmount)
	}
	if inv.Breakdown.TaxAmount != 90 {
		t.Errorf("TaxAmount = %v, want 90", inv.Breakdown.TaxAmount)
	}
	if inv.NetTotal != 2390 {
		t.Errorf("NetTotal = %v, want 2390", inv.NetTotal)
	}
	if inv.Date != "14/03/2025" {
		t.Errorf("Date = %q, want 14/03/2025", inv.Date)
	}
	if len(inv.Lines) != 1 || inv.Lines[0].No != 1 || inv.Lines[0].Amount != 2000 {
		t.Errorf("Lines = %+v", inv.Lines)
	}
}

func TestComposeDisplaysStoredTotalVerbatim(t *testing.T) {
	// A bill whose stored total disagrees with the recomputed breakdown
	// must show the drift, not hide it.
	bill := billForTest()
	bill.Total = 9999

	inv := Compose(bill)
	if inv.NetTotal != 9999 {
		t.Errorf("NetTotal = %v, want stored 9999", inv.NetTotal)
	}
	if inv.Breakdown.Total == inv.NetTotal {
		t.Error("expected recomputed total to differ from stored total in this scenario")
	}

	text := RenderText(inv)
	if !strings.Contains(text, "Rs 9,999") {
		t.Error("text layout must print the stored net amount")
	}
	if !strings.Contains(text, "Rs 2,000") {
		t.Error("text layout must print the recomputed subtotal")
	}
}

func TestRenderTextLayout(t *testing.T) {
	text := RenderText(Compose(billForTest()))

	for _, want := range []string{
		"SI Engineering",
		"Bill No:",
		"BILL-042",
		"Chaudhry Poultry Farm",
		"Fan",
		"2 pcs",
		"Discount (10%):",
		"Tax (5%):",
		"Pending Amount:",
		"Rs 2,390",
		"Thank you for doing business with us.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text layout missing %q\n%s", want, text)
		}
	}
}

func TestRenderHTMLLayout(t *testing.T) {
	html, err := RenderHTML(Compose(billForTest()))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	for _, want := range []string{
		"Sale Invoice",
		"BILL-042",
		"Chaudhry Poultry Farm",
		"Rs 2,390",
		"Discount (10%)",
		"Pending Amount:",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html layout missing %q", want)
		}
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	data, err := RenderPDF(Compose(billForTest()))
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data[:5]), "%PDF-") {
		t.Fatalf("expected a PDF document, got %d bytes", len(data))
	}
}

func TestRenderVariantsShareComputedValues(t *testing.T) {
	// Interactive and print layouts must agree figure for figure, and a
	// bill fetched by serial renders identically to one handed off after
	// submission: rendering depends only on the bill data.
	bill := billForTest()
	fetched := *bill

	a := Compose(bill)
	b := Compose(&fetched)
	if a.Breakdown != b.Breakdown || a.NetTotal != b.NetTotal {
		t.Fatal("identical bills composed differently")
	}
	if RenderText(a) != RenderText(b) {
		t.Error("text renders of equal bills differ")
	}
	htmlA, _ := RenderHTML(a)
	htmlB, _ := RenderHTML(b)
	if htmlA != htmlB {
		t.Error("html renders of equal bills differ")
	}
}
