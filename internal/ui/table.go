package ui

import (
	"fmt"
	"io"

	"nynf/internal/txn"
)

// WriteTransactionTable writes the records as a fixed-width table.
// Column widths match the longest values the record model produces so the
// table stays aligned without a terminal-width dependency.
func WriteTransactionTable(w io.Writer, records []txn.Record) {
	fmt.Fprintf(w, "%-38s %-10s %-12s %10s  %-22s %-20s\n",
		"TRANSACTION ID", "STATUS", "DATE", "AMOUNT", "PURPOSE", "NAME")

	for _, r := range records {
		fmt.Fprintf(w, "%-38s %-10s %-12s %10s  %-22s %-20s\n",
			r.ID,
			string(r.Status),
			r.Date.Format("02/01/2006"),
			r.Amount.StringFixed(2),
			TruncateText(r.Purpose, 22),
			TruncateText(r.Name, 20))
	}

	fmt.Fprintf(w, "\n%d transaction(s)\n", len(records))
}
