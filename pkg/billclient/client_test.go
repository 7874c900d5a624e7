package billclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/keinsta/si-bills-api/internal/domain/billing"
	"github.com/keinsta/si-bills-api/internal/domain/entity"
)

func draftForTest() *billing.Draft {
	d := billing.NewDraft()
	d.Business = billing.BusinessInfo{Name: "Chaudhry Poultry Farm", Contact: "0300 1234567", Address: "Sahiwal"}
	_ = d.AddItem(billing.LineItem{Name: "Fan", UnitPrice: 1000, Quantity: 2})
	d.DiscountPercent = 10
	d.TaxPercent = 5
	d.PendingAmount = 500
	return d
}

func TestSubmitSuccess(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/bill" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"bill": entity.Bill{
			SerialNumber: "BILL-042",
			Total:        2390,
			CreatedAt:    time.Now(),
		}})
	}))
	defer srv.Close()

	bill, err := New(srv.URL).Submit(context.Background(), draftForTest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if bill.SerialNumber != "BILL-042" {
		t.Errorf("SerialNumber = %q, want BILL-042", bill.SerialNumber)
	}
	if gotBody["discount"] != 10.0 || gotBody["tax"] != 5.0 || gotBody["pendingAmount"] != 500.0 {
		t.Errorf("payload = %v", gotBody)
	}
	products, ok := gotBody["products"].([]any)
	if !ok || len(products) != 1 {
		t.Fatalf("products = %v", gotBody["products"])
	}
}

func TestSubmitUsesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Validation failed"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Submit(context.Background(), draftForTest())
	var subErr *SubmitError
	if !errors.As(err, &subErr) {
		t.Fatalf("error = %T %v, want *SubmitError", err, err)
	}
	if subErr.Message != "Validation failed" {
		t.Errorf("Message = %q, want server message", subErr.Message)
	}
	if subErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d", subErr.StatusCode)
	}
}

func TestSubmitGenericFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Submit(context.Background(), draftForTest())
	var subErr *SubmitError
	if !errors.As(err, &subErr) {
		t.Fatalf("error = %T, want *SubmitError", err)
	}
	if subErr.Message != "Error saving bill to server" {
		t.Errorf("Message = %q, want generic fallback", subErr.Message)
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	_, err := New(srv.URL).Submit(context.Background(), draftForTest())
	var subErr *SubmitError
	if !errors.As(err, &subErr) {
		t.Fatalf("error = %T, want *SubmitError", err)
	}
	if subErr.Message != "Error saving bill to server" {
		t.Errorf("Message = %q, want generic fallback", subErr.Message)
	}
}

func TestFetchBySerialSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/bill/BILL-007" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(entity.Bill{SerialNumber: "BILL-007", Total: 1200})
	}))
	defer srv.Close()

	bill, err := New(srv.URL).FetchBySerial(context.Background(), "BILL-007")
	if err != nil {
		t.Fatalf("FetchBySerial: %v", err)
	}
	if bill.SerialNumber != "BILL-007" || bill.Total != 1200 {
		t.Errorf("bill = %+v", bill)
	}
}

func TestFetchBySerialNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Bill not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchBySerial(context.Background(), "DOES-NOT-EXIST")
	if !errors.Is(err, ErrBillNotFound) {
		t.Fatalf("error = %v, want ErrBillNotFound", err)
	}
}

func TestFetchBySerialNetworkErrorIsNotFound(t *testing.T) {
	// Network failure and a true 404 are deliberately indistinguishable.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL).FetchBySerial(context.Background(), "BILL-001")
	if !errors.Is(err, ErrBillNotFound) {
		t.Fatalf("error = %v, want ErrBillNotFound", err)
	}
}
