// Package pdf renders printable credit notes.
//
// Layout of the A4 page:
//
//	Header:   issuer name            | credit note number + date
//	Payer:    name, type, invoice and term
//	Amounts:  invoice net / paid / balance after refund
//	Refund:   amount, disposition, reason
//	Approval: requested by/at, approved by/at
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/utils"
)

const dateFormat = "02 Jan 2006"

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CreditNoteRenderer renders credit notes with maroto.
type CreditNoteRenderer struct {
	issuer    string
	precision int32
}

// NewCreditNoteRenderer creates a renderer that prints issuer in the header and
// amounts with precision decimals.
func NewCreditNoteRenderer(issuer string, precision int32) *CreditNoteRenderer {
	return &CreditNoteRenderer{issuer: issuer, precision: precision}
}

var _ portssvc.CreditNoteRenderer = (*CreditNoteRenderer)(nil)

// RenderCreditNote produces the PDF bytes of one credit note.
func (r *CreditNoteRenderer) RenderCreditNote(ctx context.Context, note domain.CreditNote, invoice domain.Invoice) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Credit note "+note.CreditNoteID, true).
		WithAuthor(r.issuer, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(r.headerRow(note))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(payerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(r.amountRows(note, invoice)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(approvalRow(note))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate credit note %s: %w", note.CreditNoteID, err)
	}
	return doc.GetBytes(), nil
}

func (r *CreditNoteRenderer) headerRow(note domain.CreditNote) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.issuer, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New("CREDIT NOTE", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(note.CreditNoteID, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7}),
			text.New("Issued: "+note.ApprovedAt.Format(dateFormat), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func payerRow(invoice domain.Invoice) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(invoice.PayerName, invoice.PayerID), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Payer type: %s   |   Invoice: %s   |   Term: %s",
				invoice.PayerType, invoice.InvoiceID, invoice.TermID,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func (r *CreditNoteRenderer) amountRows(note domain.CreditNote, invoice domain.Invoice) []core.Row {
	pair := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})),
			col.New(3).Add(text.New(value, props.Text{Style: style, Size: 9, Align: align.Right, Right: 1})),
		)
	}
	money := func(v decimal.Decimal) string { return utils.FormatMoney(v, r.precision) }

	return []core.Row{
		pair("Invoice net amount:", money(invoice.NetAmount), false),
		pair("Amount paid:", money(invoice.AmountPaid), false),
		pair("Balance:", money(invoice.Balance), false),
		pair("Credit amount:", money(note.Amount), true),
		row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Disposition: %s (%s)", dispositionLabel(note.AppliedAs), note.Status),
				props.Text{Size: 8, Top: 2, Color: colorGray}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Reason: "+nonEmpty(note.Reason, "-"), props.Text{Size: 8, Top: 1}),
		)),
	}
}

func approvalRow(note domain.CreditNote) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Requested by "+note.RequestedBy, props.Text{Size: 8, Top: 2}),
			text.New(note.RequestedAt.Format(dateFormat), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Approved by "+note.ApprovedBy, props.Text{Size: 8, Top: 2, Align: align.Right}),
			text.New(note.ApprovedAt.Format(dateFormat), props.Text{Size: 8, Top: 7, Align: align.Right, Color: colorGray}),
		),
	)
}

func dispositionLabel(app domain.RefundApplication) string {
	if app == domain.RefundToPayer {
		return "refund to payer"
	}
	return "credit held for future invoices"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
