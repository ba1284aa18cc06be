package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// AdjustmentType distinguishes discount requests from refund requests.
type AdjustmentType string

const (
	AdjustmentDiscount AdjustmentType = "discount"
	AdjustmentRefund   AdjustmentType = "refund"
)

// AdjustmentStatus is the approval state of an adjustment request.
type AdjustmentStatus string

const (
	AdjustmentPending  AdjustmentStatus = "pending"
	AdjustmentApproved AdjustmentStatus = "approved"
	AdjustmentRejected AdjustmentStatus = "rejected"
)

// IsValid reports whether s is a known adjustment status.
func (s AdjustmentStatus) IsValid() bool {
	return s == AdjustmentPending || s == AdjustmentApproved || s == AdjustmentRejected
}

// RefundApplication says what happens to refunded money.
type RefundApplication string

const (
	RefundToPayer   RefundApplication = "refund_to_payer"
	CreditForFuture RefundApplication = "credit_for_future"
)

// AdjustmentRequest is a discount or refund proposal that has no financial
// effect until it is approved. Once resolved it never changes again.
type AdjustmentRequest struct {
	AdjustmentID string         `json:"adjustmentID"`
	InvoiceID    string         `json:"invoiceID"`
	Type         AdjustmentType `json:"type"`
	Reason       string         `json:"reason"`

	// Discount only. DiscountAmount wins over DiscountPercent when both are set.
	DiscountScope   string           `json:"discountScope,omitempty"`
	DiscountAmount  *decimal.Decimal `json:"discountAmount,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discountPercent,omitempty"`

	// Refund only.
	RefundAmount      *decimal.Decimal   `json:"refundAmount,omitempty"`
	RefundApplication *RefundApplication `json:"refundApplication,omitempty"`

	Status       AdjustmentStatus `json:"status"`
	RequestedBy  string           `json:"requestedBy"`
	RequestedAt  time.Time        `json:"requestedAt"`
	ApprovedBy   *string          `json:"approvedBy,omitempty"`
	ApprovedAt   *time.Time       `json:"approvedAt,omitempty"`
	RejectedBy   *string          `json:"rejectedBy,omitempty"`
	RejectedAt   *time.Time       `json:"rejectedAt,omitempty"`
	DecisionNote string           `json:"decisionNote,omitempty"`
}

// IsPending reports whether the request can still be approved or rejected.
func (a AdjustmentRequest) IsPending() bool {
	return a.Status == AdjustmentPending
}

// Validate rejects negative or otherwise unusable amounts before a request is filed.
func (a AdjustmentRequest) Validate() error {
	switch a.Type {
	case AdjustmentDiscount:
		if a.DiscountAmount != nil && a.DiscountAmount.IsNegative() {
			return fmt.Errorf("%w: discount amount must not be negative", apperrors.ErrInvalidAmount)
		}
		if a.DiscountPercent != nil {
			if a.DiscountPercent.IsNegative() || a.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
				return fmt.Errorf("%w: discount percent must be between 0 and 100", apperrors.ErrInvalidAmount)
			}
		}
	case AdjustmentRefund:
		if a.RefundAmount == nil || !a.RefundAmount.IsPositive() {
			return fmt.Errorf("%w: refund amount must be positive", apperrors.ErrInvalidAmount)
		}
		if a.RefundApplication != nil && *a.RefundApplication != RefundToPayer && *a.RefundApplication != CreditForFuture {
			return fmt.Errorf("%w: unknown refund application %q", apperrors.ErrValidation, *a.RefundApplication)
		}
	default:
		return fmt.Errorf("%w: unknown adjustment type %q", apperrors.ErrValidation, a.Type)
	}
	return nil
}

// DiscountFor resolves the absolute discount this request grants on an invoice
// with the given gross amount. Percentages are rounded to places decimals.
func (a AdjustmentRequest) DiscountFor(gross decimal.Decimal, places int32) decimal.Decimal {
	if a.DiscountAmount != nil {
		return *a.DiscountAmount
	}
	if a.DiscountPercent != nil {
		return accounting.PercentOf(gross, *a.DiscountPercent, places)
	}
	return decimal.Zero
}

// EffectiveRefundApplication defaults a missing refund application to credit_for_future.
func (a AdjustmentRequest) EffectiveRefundApplication() RefundApplication {
	if a.RefundApplication != nil {
		return *a.RefundApplication
	}
	return CreditForFuture
}

// AdjustmentDecision is the outcome of resolving an adjustment request.
// Invoice is nil when the request was rejected or its invoice no longer exists;
// CreditNote is set only for approved refunds.
type AdjustmentDecision struct {
	Adjustment AdjustmentRequest
	Invoice    *Invoice
	CreditNote *CreditNote
}
