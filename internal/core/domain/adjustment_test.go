package domain_test

import (
	"testing"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdjustmentRequest_Validate(t *testing.T) {
	toPayer := domain.RefundToPayer
	bogus := domain.RefundApplication("bogus")

	tests := []struct {
		name    string
		req     domain.AdjustmentRequest
		wantErr error
	}{
		{
			name: "discount by amount",
			req:  domain.AdjustmentRequest{Type: domain.AdjustmentDiscount, DiscountAmount: decimalPtr(decimal.NewFromInt(100))},
		},
		{
			name: "discount with neither amount nor percent is a zero discount",
			req:  domain.AdjustmentRequest{Type: domain.AdjustmentDiscount},
		},
		{
			name:    "negative discount amount",
			req:     domain.AdjustmentRequest{Type: domain.AdjustmentDiscount, DiscountAmount: decimalPtr(decimal.NewFromInt(-1))},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "discount percent above 100",
			req:     domain.AdjustmentRequest{Type: domain.AdjustmentDiscount, DiscountPercent: decimalPtr(decimal.NewFromInt(101))},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name: "refund to payer",
			req:  domain.AdjustmentRequest{Type: domain.AdjustmentRefund, RefundAmount: decimalPtr(decimal.NewFromInt(500)), RefundApplication: &toPayer},
		},
		{
			name:    "refund without amount",
			req:     domain.AdjustmentRequest{Type: domain.AdjustmentRefund},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "refund with zero amount",
			req:     domain.AdjustmentRequest{Type: domain.AdjustmentRefund, RefundAmount: decimalPtr(decimal.Zero)},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "refund with unknown application",
			req:     domain.AdjustmentRequest{Type: domain.AdjustmentRefund, RefundAmount: decimalPtr(decimal.NewFromInt(5)), RefundApplication: &bogus},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "unknown type",
			req:     domain.AdjustmentRequest{Type: "waiver"},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdjustmentRequest_DiscountFor(t *testing.T) {
	gross := decimal.NewFromInt(2000)

	byPercent := domain.AdjustmentRequest{DiscountPercent: decimalPtr(decimal.NewFromInt(10))}
	assert.True(t, decimal.NewFromInt(200).Equal(byPercent.DiscountFor(gross, 0)))

	// the absolute amount is authoritative when both are present
	both := domain.AdjustmentRequest{
		DiscountAmount:  decimalPtr(decimal.NewFromInt(150)),
		DiscountPercent: decimalPtr(decimal.NewFromInt(10)),
	}
	assert.True(t, decimal.NewFromInt(150).Equal(both.DiscountFor(gross, 0)))

	assert.True(t, decimal.Zero.Equal(domain.AdjustmentRequest{}.DiscountFor(gross, 0)))
}

func TestCreditNoteStatusFor(t *testing.T) {
	assert.Equal(t, domain.CreditNoteCreated, domain.CreditNoteStatusFor(domain.RefundToPayer))
	assert.Equal(t, domain.CreditNoteAppliedToFuture, domain.CreditNoteStatusFor(domain.CreditForFuture))

	req := domain.AdjustmentRequest{Type: domain.AdjustmentRefund}
	assert.Equal(t, domain.CreditForFuture, req.EffectiveRefundApplication())
}

// Helper functions
func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
