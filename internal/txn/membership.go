package txn

import (
	"fmt"
	"time"
)

// ValidUntilLifetime marks memberships that never expire
const ValidUntilLifetime = "Lifetime"

const memberIDPrefix = "NYNF-M-"

// Membership holds the fields derived from a membership transaction for
// certificate and ID card rendering. None of this is persisted; it is
// recomputed from the record on every render.
type Membership struct {
	MemberID   string
	Name       string
	Category   string
	IssueDate  string
	ValidUntil string
}

// DeriveMembership builds the membership document fields for a record.
// The member id suffix is time-derived; collisions only affect the printed
// label, never record lookup, so no collision check is performed.
func DeriveMembership(r Record, permanent bool) Membership {
	return deriveMembershipAt(r, permanent, time.Now())
}

func deriveMembershipAt(r Record, permanent bool, now time.Time) Membership {
	validUntil := ValidUntilLifetime
	if !permanent {
		validUntil = r.Date.AddDate(1, 0, 0).Format("02/01/2006")
	}

	suffix := fmt.Sprintf("%d", now.UnixMilli())
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}

	return Membership{
		MemberID:   memberIDPrefix + suffix,
		Name:       r.Name,
		Category:   r.Purpose,
		IssueDate:  r.Date.Format("02/01/2006"),
		ValidUntil: validUntil,
	}
}

// QRPayload encodes the machine-readable membership summary embedded in
// both the certificate and the ID card
func (m Membership) QRPayload() string {
	return fmt.Sprintf("Member ID: %s\nName: %s\nType: %s\nValid Until: %s",
		m.MemberID, m.Name, m.Category, m.ValidUntil)
}
