package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"nynf/internal/txn"
)

func newBackends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	sqliteStore, err := NewMemorySQLiteStore()
	if err != nil {
		t.Fatalf("NewMemorySQLiteStore failed: %v", err)
	}

	return map[string]Store{"file": fileStore, "sqlite": sqliteStore}
}

func record(i int) txn.Record {
	return txn.Record{
		ID:      fmt.Sprintf("txn_%d", i),
		Status:  txn.StatusSuccess,
		Date:    time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
		Amount:  decimal.NewFromInt(int64(100 * i)),
		Purpose: "Donation",
		Name:    fmt.Sprintf("Donor %d", i),
	}
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 5; i++ {
				if err := s.Append(record(i)); err != nil {
					t.Fatalf("Append(%d) failed: %v", i, err)
				}
			}

			all := s.All()
			if len(all) != 5 {
				t.Fatalf("All() returned %d records; expected 5", len(all))
			}
			for i, r := range all {
				expected := fmt.Sprintf("txn_%d", i+1)
				if r.ID != expected {
					t.Errorf("All()[%d].ID = %s; expected %s", i, r.ID, expected)
				}
			}
		})
	}
}

func TestAllEmptyWhenNothingStored(t *testing.T) {
	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			if all := s.All(); len(all) != 0 {
				t.Errorf("All() on empty store returned %d records", len(all))
			}
		})
	}
}

func TestAllTreatsCorruptBlobAsEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, KeyTransactions+".json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to plant corrupt blob: %v", err)
	}

	if all := s.All(); len(all) != 0 {
		t.Errorf("All() with corrupt blob returned %d records; expected 0", len(all))
	}

	// The store must stay usable after the corrupt read
	if err := s.Append(record(1)); err != nil {
		t.Fatalf("Append after corrupt read failed: %v", err)
	}
	if all := s.All(); len(all) != 1 {
		t.Errorf("All() after recovery returned %d records; expected 1", len(all))
	}
}

func TestRecordRoundTripKeepsFields(t *testing.T) {
	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			in := txn.Record{
				ID:        "txn_full",
				PaymentID: "pay_123",
				OrderID:   "order_456",
				Signature: "sig_789",
				Status:    txn.StatusFailed,
				Date:      time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
				Amount:    decimal.RequireFromString("499.50"),
				Purpose:   "Donation",
				Name:      "Asha",
				Email:     "a@x.com",
				Phone:     "9999999999",
				Address:   "12, Seva Marg",
				PAN:       "ABCDE1234F",
				Error:     "card declined",
			}
			if err := s.Append(in); err != nil {
				t.Fatalf("Append failed: %v", err)
			}

			all := s.All()
			if len(all) != 1 {
				t.Fatalf("All() returned %d records; expected 1", len(all))
			}

			out := all[0]
			if out.ID != in.ID || out.PaymentID != in.PaymentID || out.OrderID != in.OrderID ||
				out.Status != in.Status || out.Error != in.Error || out.Address != in.Address {
				t.Errorf("record fields changed across round trip: %+v", out)
			}
			if !out.Amount.Equal(in.Amount) {
				t.Errorf("amount changed across round trip: %s != %s", out.Amount, in.Amount)
			}
			if !out.Date.Equal(in.Date) {
				t.Errorf("date changed across round trip: %s != %s", out.Date, in.Date)
			}
		})
	}
}

func TestDraftLifecycle(t *testing.T) {
	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok := s.LoadDraft(KeyDonationDraft); ok {
				t.Error("LoadDraft reported a draft before any save")
			}

			draft := Draft{Amount: "500", Name: "Asha", Email: "a@x.com", Phone: "9999999999"}
			if err := s.SaveDraft(KeyDonationDraft, draft); err != nil {
				t.Fatalf("SaveDraft failed: %v", err)
			}

			loaded, ok := s.LoadDraft(KeyDonationDraft)
			if !ok || loaded != draft {
				t.Errorf("LoadDraft = (%+v, %v); expected saved draft", loaded, ok)
			}

			s.ClearDraft(KeyDonationDraft)
			if _, ok := s.LoadDraft(KeyDonationDraft); ok {
				t.Error("LoadDraft reported a draft after clear")
			}
		})
	}
}

func TestPreferences(t *testing.T) {
	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			if lang := s.Preference(KeyLanguage); lang != "" {
				t.Errorf("unset preference = %q; expected empty", lang)
			}

			if err := s.SetPreference(KeyLanguage, "hi"); err != nil {
				t.Fatalf("SetPreference failed: %v", err)
			}
			if lang := s.Preference(KeyLanguage); lang != "hi" {
				t.Errorf("Preference = %q; expected hi", lang)
			}

			// Preferences overwrite, unlike the append-only record log
			if err := s.SetPreference(KeyLanguage, "en"); err != nil {
				t.Fatalf("SetPreference overwrite failed: %v", err)
			}
			if lang := s.Preference(KeyLanguage); lang != "en" {
				t.Errorf("Preference after overwrite = %q; expected en", lang)
			}
		})
	}
}
