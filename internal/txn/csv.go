package txn

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// csvHeader is the fixed export column order
var csvHeader = []string{
	"Transaction ID", "Payment ID", "Order ID", "Status", "Date", "Amount",
	"Purpose", "Name", "Email", "Phone", "Address", "PAN", "Error",
}

// ExportFilename is the default name for CSV downloads
const ExportFilename = "transactions.csv"

// ToCSV renders records as CSV text: one header row plus one row per
// record. Missing optional fields are rendered as the literal "N/A";
// fields containing commas or quotes are double-quoted.
func ToCSV(records []Record) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			orNA(r.ID),
			orNA(r.PaymentID),
			orNA(r.OrderID),
			orNA(string(r.Status)),
			r.Date.Format(time.RFC3339),
			r.Amount.StringFixed(2),
			orNA(r.Purpose),
			orNA(r.Name),
			orNA(r.Email),
			orNA(r.Phone),
			orNA(r.Address),
			orNA(r.PAN),
			orNA(r.Error),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row for %s: %w", r.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.String(), nil
}

func orNA(value string) string {
	if value == "" {
		return PlaceholderNA
	}
	return value
}
