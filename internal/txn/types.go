package txn

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the terminal outcome of a payment attempt
type Status string

const (
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// StatusAll is the sentinel filter value matching every status
const StatusAll = "all"

// Placeholder values used for redacted and missing fields
const (
	PlaceholderNA             = "N/A"
	PlaceholderAnonymousName  = "Anonymous"
	PlaceholderAnonymousEmail = "anonymous@example.com"
)

// Record is one logged outcome of a payment attempt. Records are immutable
// once created and are only ever appended to the store.
type Record struct {
	ID        string          `json:"id"`
	PaymentID string          `json:"paymentId,omitempty"`
	OrderID   string          `json:"orderId,omitempty"`
	Signature string          `json:"signature,omitempty"`
	Status    Status          `json:"status"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Purpose   string          `json:"purpose"`
	Name      string          `json:"name,omitempty"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Address   string          `json:"address,omitempty"`
	PAN       string          `json:"pan,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// NewRecordID generates a fresh record id. The id is assigned exactly once
// at creation and is the sole lookup key for document regeneration.
func NewRecordID() string {
	return "txn_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Identity carries the contact fields submitted with a payment
type Identity struct {
	Name    string
	Email   string
	Phone   string
	Address string
	PAN     string
}

// Redacted returns the identity with placeholder values substituted for an
// anonymous submission
func (i Identity) Redacted() Identity {
	return Identity{
		Name:    PlaceholderAnonymousName,
		Email:   PlaceholderAnonymousEmail,
		Phone:   PlaceholderNA,
		Address: PlaceholderNA,
		PAN:     PlaceholderNA,
	}
}

// IsDonation reports whether the record's purpose selects the receipt
// template rather than the membership document pair
func (r Record) IsDonation() bool {
	return strings.Contains(r.Purpose, "Donation")
}
