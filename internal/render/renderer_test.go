package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	appconfig "nynf/internal/config"
	"nynf/internal/txn"
)

func testRenderer(t *testing.T) (*Renderer, string) {
	t.Helper()

	cfg, err := appconfig.Load()
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}

	dir := t.TempDir()
	return NewRenderer(cfg, dir), dir
}

func donationRecord() txn.Record {
	return txn.Record{
		ID:        "txn_receipt",
		PaymentID: "pay_123",
		OrderID:   "order_456",
		Status:    txn.StatusSuccess,
		Date:      time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(500),
		Purpose:   "Donation",
		Name:      "Asha",
		Email:     "a@x.com",
		Phone:     "9999999999",
		// address and pan deliberately missing
	}
}

func assertPDF(t *testing.T, path string) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read generated file %s: %v", path, err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("%s does not start with a PDF header", path)
	}
}

func TestRenderReceiptWithMissingFieldsRendersPlaceholder(t *testing.T) {
	r, _ := testRenderer(t)

	path, err := r.RenderReceipt(donationRecord())
	if err != nil {
		t.Fatalf("RenderReceipt with missing address returned error: %v", err)
	}
	assertPDF(t, path)
}

func TestRenderDocumentsSelectsReceiptForDonation(t *testing.T) {
	r, dir := testRenderer(t)

	paths, err := r.RenderDocuments(donationRecord(), false)
	if err != nil {
		t.Fatalf("RenderDocuments returned error: %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("donation produced %d documents; expected 1", len(paths))
	}
	expected := filepath.Join(dir, "Donation_Receipt_txn_receipt.pdf")
	if paths[0] != expected {
		t.Errorf("receipt path = %s; expected %s", paths[0], expected)
	}
}

func TestRenderDocumentsSelectsCertificatePairForMembership(t *testing.T) {
	r, dir := testRenderer(t)

	record := donationRecord()
	record.ID = "txn_member"
	record.Purpose = "Life Membership"

	paths, err := r.RenderDocuments(record, true)
	if err != nil {
		t.Fatalf("RenderDocuments returned error: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("membership produced %d documents; expected 2", len(paths))
	}
	if filepath.Base(paths[0]) != "Membership_Certificate_txn_member.pdf" {
		t.Errorf("certificate path = %s", paths[0])
	}
	if filepath.Base(paths[1]) != "Member_ID_Card_txn_member.pdf" {
		t.Errorf("id card path = %s", paths[1])
	}

	for _, p := range paths {
		assertPDF(t, p)
	}
	_ = dir
}

func TestPlaceholder(t *testing.T) {
	if placeholder("") != txn.PlaceholderNA {
		t.Error("empty value did not render placeholder")
	}
	if placeholder("Delhi") != "Delhi" {
		t.Error("non-empty value was replaced")
	}
}
