package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentRequest is the row shape of the adjustment_requests table.
// Columns that only apply to one request type are nullable.
type AdjustmentRequest struct {
	AdjustmentID      string              `db:"adjustment_id"`
	InvoiceID         string              `db:"invoice_id"`
	Type              string              `db:"type"`
	Reason            string              `db:"reason"`
	DiscountScope     string              `db:"discount_scope"`
	DiscountAmount    decimal.NullDecimal `db:"discount_amount"`
	DiscountPercent   decimal.NullDecimal `db:"discount_percent"`
	RefundAmount      decimal.NullDecimal `db:"refund_amount"`
	RefundApplication *string             `db:"refund_application"`
	Status            string              `db:"status"`
	RequestedBy       string              `db:"requested_by"`
	RequestedAt       time.Time           `db:"requested_at"`
	ApprovedBy        *string             `db:"approved_by"`
	ApprovedAt        *time.Time          `db:"approved_at"`
	RejectedBy        *string             `db:"rejected_by"`
	RejectedAt        *time.Time          `db:"rejected_at"`
	DecisionNote      string              `db:"decision_note"`
}
