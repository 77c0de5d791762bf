package store

import (
	"nynf/internal/txn"
)

// Storage keys, mirrored from the persisted-state layout
const (
	KeyTransactions    = "transactions"
	KeyDonationDraft   = "donationFormDraft"
	KeyMembershipDraft = "membershipFormDraft"
	KeyLanguage        = "language"
)

// Draft is a partial form snapshot saved for resume-on-restart
type Draft struct {
	Amount string `json:"amount,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Type   string `json:"type,omitempty"`
}

// IsEmpty reports whether the draft carries no data
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// TransactionLog is the append-only record store. It is a best-effort
// cache, not a guaranteed ledger: Append errors are logged by callers and
// never surfaced to the user, and All degrades to an empty sequence when
// the persisted blob is missing or corrupt.
type TransactionLog interface {
	// Append adds one record to the end of the persisted sequence
	Append(record txn.Record) error

	// All returns the full sequence in insertion order
	All() []txn.Record
}

// DraftStore persists partial form snapshots
type DraftStore interface {
	SaveDraft(key string, draft Draft) error
	LoadDraft(key string) (Draft, bool)
	ClearDraft(key string)
}

// PreferenceStore persists small UI preference strings
type PreferenceStore interface {
	SetPreference(key, value string) error
	Preference(key string) string
}

// Store combines every persistence concern behind one interface
type Store interface {
	TransactionLog
	DraftStore
	PreferenceStore
}
