package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"nynf/internal/errors"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,14}$`)
)

// FieldError pins a validation failure to the offending field
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Required checks that a field is non-empty
func Required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: "This field is required"}
	}
	return nil
}

// Email checks a required, well-formed email address
func Email(field, value string) *FieldError {
	if err := Required(field, value); err != nil {
		return err
	}
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		return &FieldError{Field: field, Message: "Invalid email address"}
	}
	return nil
}

// Phone checks a required phone number: optional +, 10 to 14 digits
func Phone(field, value string) *FieldError {
	if err := Required(field, value); err != nil {
		return err
	}
	if !phonePattern.MatchString(strings.TrimSpace(value)) {
		return &FieldError{Field: field, Message: "Invalid phone number (e.g., +911234567890)"}
	}
	return nil
}

// PositiveAmount checks that a payment amount is strictly positive.
// Zero and negative amounts must never open a checkout session.
func PositiveAmount(amount decimal.Decimal) *FieldError {
	if amount.LessThanOrEqual(decimal.Zero) {
		return &FieldError{Field: "amount", Message: "Amount must be positive"}
	}
	return nil
}

// Collect runs the given checks and returns a single validation error
// listing every failed field, or nil when all pass.
func Collect(checks ...*FieldError) error {
	var failed []string
	for _, check := range checks {
		if check != nil {
			failed = append(failed, check.String())
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return errors.Validation(strings.Join(failed, "; "))
}
