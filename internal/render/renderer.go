package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"

	"nynf/internal/errors"
	"nynf/internal/logging"
	"nynf/internal/txn"
	appconfig "nynf/internal/config"
)

// Document file name prefixes
const (
	receiptFilePrefix     = "Donation_Receipt"
	certificateFilePrefix = "Membership_Certificate"
	idCardFilePrefix      = "Member_ID_Card"
)

// Renderer projects transaction records onto the receipt, certificate and
// ID-card templates and writes them out as paginated A4 PDFs.
type Renderer struct {
	org            appconfig.Organization
	currencySymbol string
	outputDir      string
	logger         *logging.Logger
}

// NewRenderer creates a renderer writing PDFs into outputDir
func NewRenderer(cfg *appconfig.Config, outputDir string) *Renderer {
	return &Renderer{
		org:            cfg.Organization,
		currencySymbol: cfg.CurrencySymbol,
		outputDir:      outputDir,
		logger:         logging.NewDefaultLogger("render"),
	}
}

// newPage returns a maroto instance configured for the fixed page
// contract: A4 portrait, millimeter measurements, automatic pagination.
func newPage() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	return maroto.New(cfg)
}

// RenderDocuments generates every document the record's purpose selects:
// a receipt for donations, the certificate and ID-card pair for
// memberships. It returns the paths of the files written.
func (r *Renderer) RenderDocuments(record txn.Record, permanent bool) ([]string, error) {
	if record.IsDonation() {
		path, err := r.RenderReceipt(record)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	member := txn.DeriveMembership(record, permanent)

	certPath, err := r.RenderCertificate(member, record.ID)
	if err != nil {
		return nil, err
	}
	cardPath, err := r.RenderIDCard(member, record.ID)
	if err != nil {
		return nil, err
	}
	return []string{certPath, cardPath}, nil
}

// RenderReceipt generates the donation receipt PDF for a record
func (r *Renderer) RenderReceipt(record txn.Record) (string, error) {
	m := newPage()
	r.addReceiptContent(m, record)
	return r.save(m, r.fileName(receiptFilePrefix, record.ID))
}

// RenderCertificate generates the membership certificate PDF. recordID may
// be empty for a document rendered straight from a fresh session.
func (r *Renderer) RenderCertificate(member txn.Membership, recordID string) (string, error) {
	m := newPage()
	r.addCertificateContent(m, member)
	return r.save(m, r.fileName(certificateFilePrefix, recordID))
}

// RenderIDCard generates the member ID card PDF
func (r *Renderer) RenderIDCard(member txn.Membership, recordID string) (string, error) {
	m := newPage()
	r.addIDCardContent(m, member)
	return r.save(m, r.fileName(idCardFilePrefix, recordID))
}

func (r *Renderer) fileName(prefix, recordID string) string {
	if recordID == "" {
		return prefix + ".pdf"
	}
	return fmt.Sprintf("%s_%s.pdf", prefix, recordID)
}

// save generates the PDF and writes it in one step so a rasterization
// failure never leaves a partial file behind.
func (r *Renderer) save(m core.Maroto, name string) (string, error) {
	doc, err := m.Generate()
	if err != nil {
		return "", errors.Render("failed to generate "+name, err)
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", errors.Render("failed to create output directory", err)
	}

	path := filepath.Join(r.outputDir, name)
	if err := os.WriteFile(path, doc.GetBytes(), 0o644); err != nil {
		return "", errors.Render("failed to write "+name, err)
	}

	r.logger.Info("wrote %s", path)
	return path, nil
}
