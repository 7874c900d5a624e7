// Package billclient is the HTTP client for the billing service. It
// submits drafts and looks up persisted bills by serial number. Each call
// is a single attempt; retrying is up to the caller.
package billclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/keinsta/si-bills-api/internal/domain/billing"
	"github.com/keinsta/si-bills-api/internal/domain/entity"
)

// ErrBillNotFound is returned by FetchBySerial for every failure mode:
// a genuine 404, a server error, or a network error. The caller cannot
// distinguish a missing bill from an unreachable service.
var ErrBillNotFound = errors.New("bill not found")

// genericSubmitError is the fallback shown when the server gives no
// usable message of its own.
const genericSubmitError = "Error saving bill to server"

// Client talks to the billing service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a billing service client for the given base URL,
// e.g. "https://si-bills.keinsta.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitError carries the user-facing message for a failed submission.
type SubmitError struct {
	StatusCode int
	Message    string
}

func (e *SubmitError) Error() string {
	return e.Message
}

type submitPayload struct {
	Business      billing.BusinessInfo `json:"business"`
	Products      []billing.LineItem   `json:"products"`
	Discount      float64              `json:"discount"`
	Tax           float64              `json:"tax"`
	PendingAmount float64              `json:"pendingAmount"`
}

type submitResponse struct {
	Bill *entity.Bill `json:"bill"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Submit sends a draft to the billing service and returns the canonical
// bill with its server-assigned serial number, timestamp, and total.
// The submitted total is never rounded; the draft's full-precision values
// go over the wire as-is. On failure the returned error carries the
// server's message when present, else a generic fallback. No retry.
func (c *Client) Submit(ctx context.Context, draft *billing.Draft) (*entity.Bill, error) {
	payload := submitPayload{
		Business:      draft.Business,
		Products:      draft.Items(),
		Discount:      draft.DiscountPercent,
		Tax:           draft.TaxPercent,
		PendingAmount: draft.PendingAmount,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("billclient: encode draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/bill", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("billclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &SubmitError{Message: genericSubmitError}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		msg := errBody.Message
		if msg == "" {
			msg = genericSubmitError
		}
		return nil, &SubmitError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Bill == nil {
		return nil, &SubmitError{StatusCode: resp.StatusCode, Message: genericSubmitError}
	}
	return out.Bill, nil
}

// FetchBySerial retrieves a persisted bill by its serial number.
// Any failure at all reports ErrBillNotFound.
func (c *Client) FetchBySerial(ctx context.Context, serialNumber string) (*entity.Bill, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/bill/"+url.PathEscape(serialNumber), nil)
	if err != nil {
		return nil, fmt.Errorf("billclient: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrBillNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrBillNotFound
	}

	var bill entity.Bill
	if err := json.NewDecoder(resp.Body).Decode(&bill); err != nil {
		return nil, ErrBillNotFound
	}
	return &bill, nil
}
