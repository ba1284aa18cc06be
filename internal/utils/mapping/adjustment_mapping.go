package mapping

import (
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/SscSPs/edu_billing_ledger/internal/models"
	"github.com/shopspring/decimal"
)

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

// ToModelAdjustment converts a domain AdjustmentRequest to a model AdjustmentRequest
func ToModelAdjustment(d domain.AdjustmentRequest) models.AdjustmentRequest {
	m := models.AdjustmentRequest{
		AdjustmentID:    d.AdjustmentID,
		InvoiceID:       d.InvoiceID,
		Type:            string(d.Type),
		Reason:          d.Reason,
		DiscountScope:   d.DiscountScope,
		DiscountAmount:  toNullDecimal(d.DiscountAmount),
		DiscountPercent: toNullDecimal(d.DiscountPercent),
		RefundAmount:    toNullDecimal(d.RefundAmount),
		Status:          string(d.Status),
		RequestedBy:     d.RequestedBy,
		RequestedAt:     d.RequestedAt,
		ApprovedBy:      d.ApprovedBy,
		ApprovedAt:      d.ApprovedAt,
		RejectedBy:      d.RejectedBy,
		RejectedAt:      d.RejectedAt,
		DecisionNote:    d.DecisionNote,
	}
	if d.RefundApplication != nil {
		app := string(*d.RefundApplication)
		m.RefundApplication = &app
	}
	return m
}

// ToDomainAdjustment converts a model AdjustmentRequest to a domain AdjustmentRequest
func ToDomainAdjustment(m models.AdjustmentRequest) domain.AdjustmentRequest {
	d := domain.AdjustmentRequest{
		AdjustmentID:    m.AdjustmentID,
		InvoiceID:       m.InvoiceID,
		Type:            domain.AdjustmentType(m.Type),
		Reason:          m.Reason,
		DiscountScope:   m.DiscountScope,
		DiscountAmount:  fromNullDecimal(m.DiscountAmount),
		DiscountPercent: fromNullDecimal(m.DiscountPercent),
		RefundAmount:    fromNullDecimal(m.RefundAmount),
		Status:          domain.AdjustmentStatus(m.Status),
		RequestedBy:     m.RequestedBy,
		RequestedAt:     m.RequestedAt,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		RejectedBy:      m.RejectedBy,
		RejectedAt:      m.RejectedAt,
		DecisionNote:    m.DecisionNote,
	}
	if m.RefundApplication != nil {
		app := domain.RefundApplication(*m.RefundApplication)
		d.RefundApplication = &app
	}
	return d
}
