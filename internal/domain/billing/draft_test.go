package billing

import (
	"testing"

	"github.com/keinsta/si-bills-api/pkg/apperror"
)

func TestAddItemValidation(t *testing.T) {
	d := NewDraft()

	if err := d.AddItem(LineItem{Name: "", UnitPrice: 100, Quantity: 1}); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := d.AddItem(LineItem{Name: "Fan", UnitPrice: 0, Quantity: 1}); err == nil {
		t.Fatal("expected error for zero price")
	}
	if err := d.AddItem(LineItem{Name: "Fan", UnitPrice: 100, Quantity: 0}); err == nil {
		t.Fatal("expected error for zero quantity")
	}
	if len(d.Items()) != 0 {
		t.Fatalf("draft mutated on failed add: %d items", len(d.Items()))
	}

	if err := d.AddItem(LineItem{Name: "Fan", UnitPrice: 1000, Quantity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Items()) != 1 {
		t.Fatalf("expected 1 item, got %d", len(d.Items()))
	}
}

func TestEditCursorLifecycle(t *testing.T) {
	d := NewDraft()
	_ = d.AddItem(LineItem{Name: "Fan", UnitPrice: 1000, Quantity: 2})
	_ = d.AddItem(LineItem{Name: "Thermostat", UnitPrice: 350, Quantity: 1})

	if d.Editing() {
		t.Fatal("new draft should not be editing")
	}

	item, err := d.StartEdit(1)
	if err != nil {
		t.Fatalf("StartEdit: %v", err)
	}
	if item.Name != "Thermostat" {
		t.Fatalf("StartEdit loaded %q, want Thermostat", item.Name)
	}
	if d.EditIndex() != 1 {
		t.Fatalf("EditIndex = %d, want 1", d.EditIndex())
	}

	// Completing the edit replaces exactly that item and clears the cursor.
	if err := d.UpdateItem(1, LineItem{Name: "Thermostat", UnitPrice: 400, Quantity: 2}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if d.Editing() {
		t.Fatal("edit cursor not cleared after update at cursor")
	}
	if d.Items()[0].Name != "Fan" || d.Items()[1].UnitPrice != 400 {
		t.Fatalf("wrong item replaced: %+v", d.Items())
	}
}

func TestUpdateItemOutOfRange(t *testing.T) {
	d := NewDraft()
	_ = d.AddItem(LineItem{Name: "Fan", UnitPrice: 1000, Quantity: 2})

	if err := d.UpdateItem(5, LineItem{Name: "X", UnitPrice: 1, Quantity: 1}); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if _, err := d.StartEdit(-1); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestRemoveItemReindexes(t *testing.T) {
	d := NewDraft()
	_ = d.AddItem(LineItem{Name: "A", UnitPrice: 10, Quantity: 1})
	_ = d.AddItem(LineItem{Name: "B", UnitPrice: 20, Quantity: 1})
	_ = d.AddItem(LineItem{Name: "C", UnitPrice: 30, Quantity: 1})

	if err := d.RemoveItem(1); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	items := d.Items()
	if len(items) != 2 || items[0].Name != "A" || items[1].Name != "C" {
		t.Fatalf("remove did not re-index contiguously: %+v", items)
	}
	if err := d.RemoveItem(2); err == nil {
		t.Fatal("expected out-of-range error after shrink")
	}
}

func TestRemoveItemAdjustsEditCursor(t *testing.T) {
	d := NewDraft()
	_ = d.AddItem(LineItem{Name: "A", UnitPrice: 10, Quantity: 1})
	_ = d.AddItem(LineItem{Name: "B", UnitPrice: 20, Quantity: 1})
	_ = d.AddItem(LineItem{Name: "C", UnitPrice: 30, Quantity: 1})

	_, _ = d.StartEdit(2)
	if err := d.RemoveItem(0); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if d.EditIndex() != 1 {
		t.Fatalf("EditIndex = %d after removing earlier item, want 1", d.EditIndex())
	}

	// Removing the item under the cursor cancels the edit.
	if err := d.RemoveItem(1); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if d.Editing() {
		t.Fatal("edit should be cancelled when its item is removed")
	}
}

func TestValidateSubmissionPreconditions(t *testing.T) {
	d := NewDraft()
	_ = d.AddItem(LineItem{Name: "Fan", UnitPrice: 1000, Quantity: 2})

	err := d.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty business details")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Fatalf("Code = %d, want 422", appErr.Code)
	}
	if len(appErr.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %+v", len(appErr.Errors), appErr.Errors)
	}

	d.Business = BusinessInfo{Name: "Chaudhry Poultry Farm", Contact: "0300 1234567", Address: "Sahiwal"}
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestDraftTotalPreview(t *testing.T) {
	d := NewDraft()
	_ = d.AddItem(LineItem{Name: "Fan", UnitPrice: 1000, Quantity: 2})
	d.DiscountPercent = 10
	d.TaxPercent = 5
	d.PendingAmount = 500

	if got := d.Total(); got != 2390 {
		t.Errorf("Total = %v, want 2390", got)
	}
}

func TestDraftReset(t *testing.T) {
	d := NewDraft()
	_ = d.AddItem(LineItem{Name: "Fan", UnitPrice: 1000, Quantity: 2})
	d.Business.Name = "Chaudhry Poultry Farm"
	_, _ = d.StartEdit(0)

	d.Reset()
	if len(d.Items()) != 0 || d.Business.Name != "" || d.Editing() {
		t.Fatalf("Reset left state behind: %+v", d)
	}
}
