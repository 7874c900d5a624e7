package service

import (
	"context"
	"strings"
	"testing"

	"github.com/keinsta/si-bills-api/internal/domain/billing"
	"github.com/keinsta/si-bills-api/internal/domain/entity"
	"github.com/keinsta/si-bills-api/pkg/apperror"
	"github.com/keinsta/si-bills-api/pkg/pagination"
)

// memoryBillRepo is an in-memory BillRepository for service tests.
type memoryBillRepo struct {
	bills []*entity.Bill
}

func (m *memoryBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	m.bills = append(m.bills, bill)
	return nil
}

func (m *memoryBillRepo) GetBySerialNumber(ctx context.Context, serial string) (*entity.Bill, error) {
	for _, b := range m.bills {
		if b.SerialNumber == serial {
			return b, nil
		}
	}
	return nil, nil
}

func (m *memoryBillRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	out := make([]entity.Bill, 0, len(m.bills))
	for _, b := range m.bills {
		out = append(out, *b)
	}
	return out, int64(len(m.bills)), nil
}

func (m *memoryBillRepo) GetNextSerialNumber(ctx context.Context) (int, error) {
	return len(m.bills) + 1, nil
}

func validInput() *CreateBillInput {
	return &CreateBillInput{
		Business: billing.BusinessInfo{
			Name:    "Chaudhry Poultry Farm",
			Contact: "0300 1234567",
			Address: "GT Road, Sahiwal",
		},
		Products: []billing.LineItem{
			{Name: "Fan", UnitPrice: 1000, Quantity: 2},
		},
		Discount:      10,
		Tax:           5,
		PendingAmount: 500,
	}
}

func TestCreateBillComputesTotalAndSerial(t *testing.T) {
	svc := NewBillService(&memoryBillRepo{}, "BILL")

	bill, err := svc.CreateBill(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if bill.SerialNumber != "BILL-001" {
		t.Errorf("SerialNumber = %q, want BILL-001", bill.SerialNumber)
	}
	if bill.Total != 2390 {
		t.Errorf("Total = %v, want 2390", bill.Total)
	}
	if len(bill.Products) != 1 || bill.Products[0].Name != "Fan" {
		t.Errorf("Products = %+v", bill.Products)
	}
}

func TestCreateBillSerialNumbersIncrement(t *testing.T) {
	repo := &memoryBillRepo{}
	svc := NewBillService(repo, "BILL")

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateBill(context.Background(), validInput()); err != nil {
			t.Fatalf("CreateBill #%d: %v", i+1, err)
		}
	}
	if got := repo.bills[2].SerialNumber; got != "BILL-003" {
		t.Errorf("third serial = %q, want BILL-003", got)
	}
}

func TestCreateBillRejectsIncompleteBusiness(t *testing.T) {
	repo := &memoryBillRepo{}
	svc := NewBillService(repo, "BILL")

	input := validInput()
	input.Business.Name = ""

	_, err := svc.CreateBill(context.Background(), input)
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Errorf("Code = %d, want 422", appErr.Code)
	}
	if !strings.Contains(appErr.Errors[0].Field, "business.name") {
		t.Errorf("field = %q, want business.name", appErr.Errors[0].Field)
	}
	if len(repo.bills) != 0 {
		t.Error("bill persisted despite validation failure")
	}
}

func TestCreateBillRejectsMalformedProduct(t *testing.T) {
	svc := NewBillService(&memoryBillRepo{}, "BILL")

	input := validInput()
	input.Products = append(input.Products, billing.LineItem{Name: "Broken", UnitPrice: -5, Quantity: 0})

	_, err := svc.CreateBill(context.Background(), input)
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGetBillBySerial(t *testing.T) {
	repo := &memoryBillRepo{}
	svc := NewBillService(repo, "BILL")

	created, err := svc.CreateBill(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	got, err := svc.GetBillBySerial(context.Background(), created.SerialNumber)
	if err != nil {
		t.Fatalf("GetBillBySerial: %v", err)
	}
	if got.SerialNumber != created.SerialNumber {
		t.Errorf("SerialNumber = %q, want %q", got.SerialNumber, created.SerialNumber)
	}

	_, err = svc.GetBillBySerial(context.Background(), "DOES-NOT-EXIST")
	appErr := apperror.GetAppError(err)
	if appErr == nil || appErr.Code != 404 {
		t.Fatalf("expected 404 for unknown serial, got %v", err)
	}
}

func TestCreateBillKeepsFullPrecisionTotal(t *testing.T) {
	svc := NewBillService(&memoryBillRepo{}, "BILL")

	input := validInput()
	input.Products = []billing.LineItem{{Name: "Hinge", UnitPrice: 33.33, Quantity: 3}}
	input.Discount = 0
	input.Tax = 0
	input.PendingAmount = 0

	bill, err := svc.CreateBill(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if bill.Total != 99.99 {
		t.Errorf("Total = %v, want unrounded 99.99", bill.Total)
	}
}
