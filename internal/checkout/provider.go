package checkout

import (
	"context"
)

// Outcome is the terminal state of one checkout session. Every session
// resolves to exactly one outcome.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailed    Outcome = "failed"
	OutcomeCancelled Outcome = "cancelled"
)

// Prefill carries the identity fields handed to the provider's checkout UI
type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// OrderRequest describes one checkout session to open. Amounts are in
// minor currency units, the only unit the provider boundary accepts.
type OrderRequest struct {
	AmountMinorUnits int64
	Currency         string
	Description      string
	Prefill          Prefill
	Notes            map[string]string
}

// PaymentResult is the provider's report for a resolved session
type PaymentResult struct {
	Outcome          Outcome
	PaymentID        string
	OrderID          string
	Signature        string
	ErrorDescription string
}

// Provider is the opaque external payment service boundary
type Provider interface {
	// CreateOrder registers the session with the provider and returns
	// the provider's order id
	CreateOrder(ctx context.Context, req OrderRequest) (string, error)

	// AwaitPayment blocks until the session resolves or ctx expires
	AwaitPayment(ctx context.Context, orderID string) (PaymentResult, error)
}
