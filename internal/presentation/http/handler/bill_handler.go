package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/keinsta/si-bills-api/internal/application/service"
	"github.com/keinsta/si-bills-api/internal/domain/billing"
	"github.com/keinsta/si-bills-api/internal/presentation/http/dto/request"
	"github.com/keinsta/si-bills-api/internal/presentation/http/dto/response"
	"github.com/keinsta/si-bills-api/pkg/invoice"
	"github.com/keinsta/si-bills-api/pkg/pagination"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Create handles bill submission. On success the response body is
// `{"bill": ...}` — the shape the invoice view consumes on hand-off.
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateBillInput{
		Business: billing.BusinessInfo{
			Name:    req.Business.Name,
			Contact: req.Business.Contact,
			Address: req.Business.Address,
		},
		Discount:      req.Discount,
		Tax:           req.Tax,
		PendingAmount: req.PendingAmount,
	}
	for _, p := range req.Products {
		input.Products = append(input.Products, billing.LineItem{
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  p.Quantity,
		})
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(201, gin.H{"bill": bill})
}

// GetBySerial returns a persisted bill directly (no envelope); any
// failure is a non-2xx that lookup clients treat as "not found".
func (h *BillHandler) GetBySerial(c *gin.Context) {
	bill, err := h.billService.GetBillBySerial(c.Request.Context(), c.Param("serialNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(200, bill)
}

// List handles listing bills, newest first
func (h *BillHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if p := c.Query("page"); p != "" {
		if parsed, err := parsePositiveInt(p); err == nil {
			params.Page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := parsePositiveInt(pp); err == nil {
			params.PerPage = parsed
		}
	}

	result, err := h.billService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// GetPDF renders a bill as a downloadable PDF invoice
func (h *BillHandler) GetPDF(c *gin.Context) {
	bill, err := h.billService.GetBillBySerial(c.Request.Context(), c.Param("serialNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := invoice.RenderPDF(invoice.Compose(bill))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", bill.SerialNumber))
	c.Data(200, "application/pdf", data)
}

// GetPrintLayout renders a bill in the fixed-width print layout
func (h *BillHandler) GetPrintLayout(c *gin.Context) {
	bill, err := h.billService.GetBillBySerial(c.Request.Context(), c.Param("serialNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(200, invoice.RenderText(invoice.Compose(bill)))
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("value must be positive")
	}
	return n, nil
}
