// Package session holds the per-user billing session: the draft being
// edited and the in-flight submission flag. Each session is owned by one
// user interaction flow; there is no cross-session shared state.
package session

import (
	"context"
	"sync"

	"github.com/keinsta/si-bills-api/internal/domain/billing"
	"github.com/keinsta/si-bills-api/internal/domain/entity"
	"github.com/keinsta/si-bills-api/pkg/apperror"
)

// BillingClient is what a session needs from the billing service.
// *billclient.Client satisfies it.
type BillingClient interface {
	Submit(ctx context.Context, draft *billing.Draft) (*entity.Bill, error)
	FetchBySerial(ctx context.Context, serialNumber string) (*entity.Bill, error)
}

// ErrSubmissionInFlight gates duplicate triggers while a submit or fetch
// is outstanding. Calls are rejected, not queued.
var ErrSubmissionInFlight = apperror.NewAppError(409, "A request is already in progress")

// Session owns one draft and a loading flag. The flag prevents duplicate
// requests from the same session; it does not cancel the underlying call.
type Session struct {
	mu      sync.Mutex
	draft   *billing.Draft
	loading bool
}

// New creates a session with an empty draft.
func New() *Session {
	return &Session{draft: billing.NewDraft()}
}

// Draft returns the session's draft for editing.
func (s *Session) Draft() *billing.Draft {
	return s.draft
}

// Loading reports whether a submit or fetch is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrSubmissionInFlight
	}
	s.loading = true
	return nil
}

func (s *Session) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// Submit validates the draft and sends it to the billing service.
// Validation failures are reported before any network call and leave the
// draft untouched. On success the draft is reset and the canonical bill
// is returned for an in-memory hand-off to the invoice view. On failure
// the draft is preserved unchanged so the user can retry.
func (s *Session) Submit(ctx context.Context, client BillingClient) (*entity.Bill, error) {
	if err := s.draft.Validate(); err != nil {
		return nil, err
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	bill, err := client.Submit(ctx, s.draft)
	if err != nil {
		return nil, err
	}
	s.draft.Reset()
	return bill, nil
}

// Find looks up a bill by serial number. Every failure surfaces as the
// client's not-found condition; no bill is returned.
func (s *Session) Find(ctx context.Context, client BillingClient, serialNumber string) (*entity.Bill, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	return client.FetchBySerial(ctx, serialNumber)
}
