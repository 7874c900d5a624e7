package service

import (
	"context"
	"fmt"

	"github.com/keinsta/si-bills-api/internal/domain/billing"
	"github.com/keinsta/si-bills-api/internal/domain/entity"
	"github.com/keinsta/si-bills-api/internal/domain/repository"
	"github.com/keinsta/si-bills-api/pkg/apperror"
	"github.com/keinsta/si-bills-api/pkg/pagination"
)

// BillService handles bill creation and lookup
type BillService struct {
	billRepo     repository.BillRepository
	serialPrefix string
}

// NewBillService creates a new bill service
func NewBillService(billRepo repository.BillRepository, serialPrefix string) *BillService {
	if serialPrefix == "" {
		serialPrefix = "BILL"
	}
	return &BillService{
		billRepo:     billRepo,
		serialPrefix: serialPrefix,
	}
}

// CreateBillInput represents the input for creating a bill
type CreateBillInput struct {
	Business      billing.BusinessInfo
	Products      []billing.LineItem
	Discount      float64
	Tax           float64
	PendingAmount float64
}

func (in *CreateBillInput) validate() error {
	var fieldErrors []apperror.FieldError
	if in.Business.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "business.name", Message: "Business name is required"})
	}
	if in.Business.Contact == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "business.contact", Message: "Business contact is required"})
	}
	if in.Business.Address == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "business.address", Message: "Business address is required"})
	}
	if len(in.Products) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "products", Message: "At least one product is required"})
	}
	for i, p := range in.Products {
		if p.Name == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: fmt.Sprintf("products[%d].name", i), Message: "Product name is required"})
		}
		if p.UnitPrice <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: fmt.Sprintf("products[%d].price", i), Message: "Product price must be greater than zero"})
		}
		if p.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: fmt.Sprintf("products[%d].quantity", i), Message: "Product quantity must be greater than zero"})
		}
	}
	if in.PendingAmount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "pendingAmount", Message: "Pending amount cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateBill validates a submission, computes its total, assigns the next
// serial number, and persists the bill with its products. The stored
// total keeps full precision; rounding is a display concern.
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	nextNum, err := s.billRepo.GetNextSerialNumber(ctx)
	if err != nil {
		return nil, err
	}
	serial := fmt.Sprintf("%s-%03d", s.serialPrefix, nextNum)

	totals := billing.Compute(input.Products, input.Discount, input.Tax, input.PendingAmount)

	bill := &entity.Bill{
		SerialNumber:  serial,
		Business:      input.Business,
		Discount:      input.Discount,
		Tax:           input.Tax,
		PendingAmount: input.PendingAmount,
		Total:         totals.Total,
	}
	for i, p := range input.Products {
		bill.Products = append(bill.Products, entity.BillProduct{
			Position:  i,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  p.Quantity,
		})
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// GetBillBySerial retrieves a persisted bill by serial number
func (s *BillService) GetBillBySerial(ctx context.Context, serialNumber string) (*entity.Bill, error) {
	if serialNumber == "" {
		return nil, apperror.NewBadRequestError("Serial number is required")
	}
	bill, err := s.billRepo.GetBySerialNumber(ctx, serialNumber)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists persisted bills, newest first
func (s *BillService) ListBills(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Bill], error) {
	params.Validate()
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}
