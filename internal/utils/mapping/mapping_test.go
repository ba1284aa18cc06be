package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceMapping_ZeroDueDateIsNull(t *testing.T) {
	m := ToModelInvoice(domain.Invoice{InvoiceID: "inv-1"})
	assert.Nil(t, m.DueDate)

	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	m = ToModelInvoice(domain.Invoice{InvoiceID: "inv-1", DueDate: due})
	if assert.NotNil(t, m.DueDate) {
		assert.Equal(t, due, *m.DueDate)
	}
	assert.Equal(t, due, ToDomainInvoice(m).DueDate)
}

func TestAdjustmentMapping_OptionalFields(t *testing.T) {
	refund := decimal.NewFromInt(250)
	app := domain.RefundToPayer
	d := domain.AdjustmentRequest{
		AdjustmentID:      "adj-1",
		Type:              domain.AdjustmentRefund,
		RefundAmount:      &refund,
		RefundApplication: &app,
		Status:            domain.AdjustmentPending,
	}

	m := ToModelAdjustment(d)
	assert.False(t, m.DiscountAmount.Valid)
	assert.False(t, m.DiscountPercent.Valid)
	assert.True(t, m.RefundAmount.Valid)
	assert.Equal(t, "refund_to_payer", *m.RefundApplication)

	back := ToDomainAdjustment(m)
	assert.Nil(t, back.DiscountAmount)
	assert.Nil(t, back.DiscountPercent)
	assert.True(t, back.RefundAmount.Equal(refund))
	assert.Equal(t, domain.RefundToPayer, *back.RefundApplication)
}
