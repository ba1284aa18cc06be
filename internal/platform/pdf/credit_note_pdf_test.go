package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNote() (domain.CreditNote, domain.Invoice) {
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	inv := domain.Invoice{
		InvoiceID:   "inv-1",
		TermID:      "term-2025-1",
		PayerType:   domain.PayerParent,
		PayerID:     "parent-7",
		PayerName:   "A. Parent",
		GrossAmount: decimal.NewFromInt(800),
		NetAmount:   decimal.NewFromInt(800),
		Balance:     decimal.NewFromInt(300),
	}
	note := domain.CreditNote{
		CreditNoteID: "cn-1",
		InvoiceID:    inv.InvoiceID,
		AdjustmentID: "adj-1",
		Amount:       decimal.NewFromInt(500),
		Reason:       "course cancelled",
		AppliedAs:    domain.RefundToPayer,
		Status:       domain.CreditNoteCreated,
		RequestedBy:  "staff-1",
		RequestedAt:  at,
		ApprovedBy:   "approver-1",
		ApprovedAt:   at.Add(time.Hour),
	}
	return note, inv
}

func TestRenderCreditNote(t *testing.T) {
	note, inv := sampleNote()
	r := NewCreditNoteRenderer("Springfield Academy", 2)

	doc, err := r.RenderCreditNote(context.Background(), note, inv)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "output should be a PDF document")
}

func TestRenderCreditNote_CancelledContext(t *testing.T) {
	note, inv := sampleNote()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCreditNoteRenderer("Springfield Academy", 2).RenderCreditNote(ctx, note, inv)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDispositionLabel(t *testing.T) {
	assert.Equal(t, "refund to payer", dispositionLabel(domain.RefundToPayer))
	assert.Equal(t, "credit held for future invoices", dispositionLabel(domain.CreditForFuture))
}
