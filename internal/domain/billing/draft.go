package billing

import (
	"github.com/keinsta/si-bills-api/pkg/apperror"
)

// BusinessInfo identifies the customer the bill is made out to.
// All three fields are required before a draft can be submitted.
type BusinessInfo struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// noEdit marks the edit cursor as cleared.
const noEdit = -1

// Draft is an unpersisted, user-editable bill in progress. It lives only
// in the owning session and is discarded on successful submission.
//
// Item editing is modal: at most one item is being edited at a time,
// tracked by an index cursor. Completing an edit writes back by index
// rather than appending.
type Draft struct {
	Business        BusinessInfo
	DiscountPercent float64
	TaxPercent      float64
	PendingAmount   float64

	items     []LineItem
	editIndex int
}

// NewDraft creates an empty draft with a cleared edit cursor.
func NewDraft() *Draft {
	return &Draft{editIndex: noEdit}
}

// Items returns the current line items in order.
func (d *Draft) Items() []LineItem {
	return d.items
}

// EditIndex returns the index of the item being edited, or -1 when no
// edit is in progress.
func (d *Draft) EditIndex() int {
	return d.editIndex
}

// Editing reports whether an item edit is in progress.
func (d *Draft) Editing() bool {
	return d.editIndex != noEdit
}

func validateItem(item LineItem) error {
	var fieldErrors []apperror.FieldError
	if item.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Product name is required"})
	}
	if item.UnitPrice <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Product price must be greater than zero"})
	}
	if item.Quantity <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "Product quantity must be greater than zero"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// AddItem appends a line item. On validation failure the draft is not
// mutated and the error lists the offending fields.
func (d *Draft) AddItem(item LineItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	d.items = append(d.items, item)
	return nil
}

// StartEdit loads the item at index into the edit cursor and returns it
// so the caller can prefill its input form.
func (d *Draft) StartEdit(index int) (LineItem, error) {
	if index < 0 || index >= len(d.items) {
		return LineItem{}, apperror.NewBadRequestError("Product index out of range")
	}
	d.editIndex = index
	return d.items[index], nil
}

// UpdateItem replaces the item at index in place, applying the same
// validation as AddItem. Completing an edit at the cursor position
// clears the cursor.
func (d *Draft) UpdateItem(index int, item LineItem) error {
	if index < 0 || index >= len(d.items) {
		return apperror.NewBadRequestError("Product index out of range")
	}
	if err := validateItem(item); err != nil {
		return err
	}
	d.items[index] = item
	if d.editIndex == index {
		d.editIndex = noEdit
	}
	return nil
}

// RemoveItem deletes the item at index, keeping the remaining items
// contiguous. Removing the item under the edit cursor cancels the edit.
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.items) {
		return apperror.NewBadRequestError("Product index out of range")
	}
	d.items = append(d.items[:index], d.items[index+1:]...)
	switch {
	case d.editIndex == index:
		d.editIndex = noEdit
	case d.editIndex > index:
		d.editIndex--
	}
	return nil
}

// Validate checks the submission preconditions: complete business details
// and at least one product. Item fields were already validated on entry.
func (d *Draft) Validate() error {
	var fieldErrors []apperror.FieldError
	if d.Business.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "business.name", Message: "Business name is required"})
	}
	if d.Business.Contact == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "business.contact", Message: "Business contact is required"})
	}
	if d.Business.Address == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "business.address", Message: "Business address is required"})
	}
	if len(d.items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "products", Message: "At least one product is required"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Totals previews the bill arithmetic for the current draft state.
func (d *Draft) Totals() Totals {
	return Compute(d.items, d.DiscountPercent, d.TaxPercent, d.PendingAmount)
}

// Total previews the net payable amount for the current draft state.
func (d *Draft) Total() float64 {
	return d.Totals().Total
}

// Reset clears all draft state back to an empty draft.
func (d *Draft) Reset() {
	*d = Draft{editIndex: noEdit}
}
