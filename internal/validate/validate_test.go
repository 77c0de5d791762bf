package validate

import (
	"testing"

	"github.com/shopspring/decimal"

	"nynf/internal/errors"
)

func TestEmail(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"a@x.com", true},
		{"ravi.kumar@example.org", true},
		{"", false},
		{"not-an-email", false},
		{"missing@tld", false},
		{"two@@signs.com", false},
	}

	for _, tc := range testCases {
		err := Email("email", tc.input)
		if (err == nil) != tc.valid {
			t.Errorf("Email(%q) valid=%v; expected %v", tc.input, err == nil, tc.valid)
		}
	}
}

func TestPhone(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"9999999999", true},
		{"+911234567890", true},
		{"12345678901234", true},
		{"", false},
		{"12345", false},
		{"123456789012345", false},
		{"99999abc99", false},
	}

	for _, tc := range testCases {
		err := Phone("phone", tc.input)
		if (err == nil) != tc.valid {
			t.Errorf("Phone(%q) valid=%v; expected %v", tc.input, err == nil, tc.valid)
		}
	}
}

func TestPositiveAmount(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"500", true},
		{"0.01", true},
		{"0", false},
		{"-5", false},
	}

	for _, tc := range testCases {
		err := PositiveAmount(decimal.RequireFromString(tc.input))
		if (err == nil) != tc.valid {
			t.Errorf("PositiveAmount(%s) valid=%v; expected %v", tc.input, err == nil, tc.valid)
		}
	}
}

func TestCollect(t *testing.T) {
	if err := Collect(nil, nil); err != nil {
		t.Errorf("Collect with no failures returned %v", err)
	}

	err := Collect(
		Required("name", ""),
		Email("email", "bad"),
		nil,
	)
	if err == nil {
		t.Fatal("Collect with failures returned nil")
	}
	if !errors.IsType(err, errors.ErrorTypeValidation) {
		t.Errorf("Collect error type = %v; expected validation", err)
	}
}
