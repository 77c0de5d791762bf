package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"nynf/internal/txn"
)

// placeholder substitutes the display placeholder for missing optional
// fields so a record with no address still renders.
func placeholder(value string) string {
	if value == "" {
		return txn.PlaceholderNA
	}
	return value
}

func (r *Renderer) addHeader(m core.Maroto, title string) {
	m.AddRow(24,
		col.New(7).Add(
			text.New(r.org.Name, props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
			text.New(r.org.Address, props.Text{
				Size:  9,
				Top:   8,
				Align: align.Left,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Size:  18,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
	)
	m.AddRow(4, line.NewCol(12))
}

func labelValueRow(label, value string) core.Row {
	return row.New(8).Add(
		col.New(4).Add(
			text.New(label, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}),
		),
		col.New(8).Add(
			text.New(value, props.Text{Size: 10, Align: align.Left}),
		),
	)
}

func (r *Renderer) addReceiptContent(m core.Maroto, record txn.Record) {
	r.addHeader(m, "RECEIPT")

	m.AddRows(
		labelValueRow("Receipt No:", record.ID),
		labelValueRow("Date:", record.Date.Format("02/01/2006")),
	)
	m.AddRow(4, line.NewCol(12))

	m.AddRows(
		labelValueRow("Donor Name:", placeholder(record.Name)),
		labelValueRow("Email:", placeholder(record.Email)),
		labelValueRow("Phone:", placeholder(record.Phone)),
		labelValueRow("Address:", placeholder(record.Address)),
		labelValueRow("PAN:", placeholder(record.PAN)),
	)
	m.AddRow(4, line.NewCol(12))

	m.AddRow(12,
		col.New(4).Add(
			text.New("Amount:", props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Left}),
		),
		col.New(8).Add(
			text.New(fmt.Sprintf("%s%s", r.currencySymbol, record.Amount.StringFixed(2)), props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
		),
	)
	m.AddRows(
		labelValueRow("Purpose:", placeholder(record.Purpose)),
		labelValueRow("Transaction Ref:", placeholder(record.PaymentID)),
	)

	m.AddRow(4, line.NewCol(12))
	m.AddRow(10,
		text.NewCol(12, r.org.RegistrationNote, props.Text{
			Size:  8,
			Align: align.Center,
			Top:   3,
		}),
	)
}

func (r *Renderer) addCertificateContent(m core.Maroto, member txn.Membership) {
	r.addHeader(m, "CERTIFICATE")

	m.AddRow(16,
		text.NewCol(12, "Certificate of Membership", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
			Top:   4,
		}),
	)
	m.AddRow(10,
		text.NewCol(12, "This is to certify that", props.Text{
			Size:  11,
			Align: align.Center,
			Top:   2,
		}),
	)
	m.AddRow(14,
		text.NewCol(12, member.Name, props.Text{
			Size:  18,
			Style: fontstyle.BoldItalic,
			Align: align.Center,
			Top:   2,
		}),
	)
	m.AddRow(10,
		text.NewCol(12, fmt.Sprintf("is a registered %s of %s", member.Category, r.org.Name), props.Text{
			Size:  11,
			Align: align.Center,
			Top:   2,
		}),
	)

	m.AddRows(
		labelValueRow("Member ID:", member.MemberID),
		labelValueRow("Issue Date:", member.IssueDate),
		labelValueRow("Valid Until:", member.ValidUntil),
	)

	m.AddRow(40,
		col.New(4),
		code.NewQrCol(4, member.QRPayload(), props.Rect{
			Center:  true,
			Percent: 80,
		}),
		col.New(4),
	)
}

func (r *Renderer) addIDCardContent(m core.Maroto, member txn.Membership) {
	r.addHeader(m, "MEMBER ID")

	m.AddRow(12,
		text.NewCol(12, member.Name, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Left,
			Top:   2,
		}),
	)

	m.AddRows(
		labelValueRow("Member ID:", member.MemberID),
		labelValueRow("Category:", member.Category),
		labelValueRow("Issue Date:", member.IssueDate),
		labelValueRow("Expiry Date:", member.ValidUntil),
	)

	m.AddRow(35,
		col.New(8),
		code.NewQrCol(4, member.QRPayload(), props.Rect{
			Center:  true,
			Percent: 90,
		}),
	)
}
