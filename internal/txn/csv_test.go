package txn

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestToCSVLineCount(t *testing.T) {
	records := sampleRecords()

	out, err := ToCSV(records)
	if err != nil {
		t.Fatalf("ToCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(records)+1 {
		t.Errorf("ToCSV produced %d lines; expected %d", len(lines), len(records)+1)
	}
	if lines[0] != strings.Join(csvHeader, ",") {
		t.Errorf("unexpected header row: %s", lines[0])
	}
}

func TestToCSVMissingFieldsRenderedAsNA(t *testing.T) {
	records := []Record{
		{
			ID:      "txn_na",
			Status:  StatusSuccess,
			Date:    time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
			Amount:  decimal.NewFromInt(750),
			Purpose: "Donation",
			Name:    "Asha",
		},
	}

	out, err := ToCSV(records)
	if err != nil {
		t.Fatalf("ToCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	row := lines[1]

	// paymentId, orderId, email, phone, address, pan and error are absent
	if got := strings.Count(row, "N/A"); got != 7 {
		t.Errorf("expected 7 N/A fields in %q, got %d", row, got)
	}
	if !strings.Contains(row, "750.00") {
		t.Errorf("amount not rendered in major units: %q", row)
	}
}

func TestToCSVQuotesFieldsWithCommas(t *testing.T) {
	records := []Record{
		{
			ID:      "txn_q",
			Status:  StatusSuccess,
			Date:    time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
			Amount:  decimal.NewFromInt(100),
			Purpose: "Donation",
			Name:    "Asha",
			Address: "12, Seva Marg, New Delhi",
		},
	}

	out, err := ToCSV(records)
	if err != nil {
		t.Fatalf("ToCSV returned error: %v", err)
	}

	if !strings.Contains(out, `"12, Seva Marg, New Delhi"`) {
		t.Errorf("address with commas not quoted: %q", out)
	}
}

func TestToCSVEmptyInput(t *testing.T) {
	out, err := ToCSV(nil)
	if err != nil {
		t.Fatalf("ToCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("ToCSV(nil) produced %d lines; expected header only", len(lines))
	}
}
