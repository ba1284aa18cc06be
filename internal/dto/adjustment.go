package dto

import (
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAdjustmentRequest defines a discount or refund request filed against an invoice.
// Amount checks live in domain.AdjustmentRequest.Validate so negative inputs surface as ErrInvalidAmount.
type CreateAdjustmentRequest struct {
	Type              domain.AdjustmentType     `json:"type" binding:"required,oneof=discount refund"`
	Reason            string                    `json:"reason"`
	DiscountScope     string                    `json:"discountScope"`
	DiscountAmount    *decimal.Decimal          `json:"discountAmount,omitempty" swaggertype:"string"`
	DiscountPercent   *decimal.Decimal          `json:"discountPercent,omitempty" swaggertype:"string"`
	RefundAmount      *decimal.Decimal          `json:"refundAmount,omitempty" swaggertype:"string"`
	RefundApplication *domain.RefundApplication `json:"refundApplication,omitempty" binding:"omitempty,oneof=refund_to_payer credit_for_future"`
	RequestedBy       string                    `json:"requestedBy"` // Defaults to the authenticated user
}

// DecideAdjustmentRequest resolves a pending adjustment request.
type DecideAdjustmentRequest struct {
	Decision     domain.AdjustmentStatus `json:"decision" binding:"required,oneof=approved rejected"`
	ApprovedBy   string                  `json:"approvedBy"`
	RejectedBy   string                  `json:"rejectedBy"`
	DecisionNote string                  `json:"decisionNote"`
}

// ListAdjustmentsParams defines query parameters for the adjustment queue.
type ListAdjustmentsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// AdjustmentResponse defines the data returned for an adjustment request.
type AdjustmentResponse struct {
	AdjustmentID      string                    `json:"adjustmentID"`
	InvoiceID         string                    `json:"invoiceID"`
	Type              domain.AdjustmentType     `json:"type"`
	Reason            string                    `json:"reason"`
	DiscountScope     string                    `json:"discountScope,omitempty"`
	DiscountAmount    *decimal.Decimal          `json:"discountAmount,omitempty" swaggertype:"string"`
	DiscountPercent   *decimal.Decimal          `json:"discountPercent,omitempty" swaggertype:"string"`
	RefundAmount      *decimal.Decimal          `json:"refundAmount,omitempty" swaggertype:"string"`
	RefundApplication *domain.RefundApplication `json:"refundApplication,omitempty"`
	Status            domain.AdjustmentStatus   `json:"status"`
	RequestedBy       string                    `json:"requestedBy"`
	RequestedAt       time.Time                 `json:"requestedAt"`
	ApprovedBy        *string                   `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time                `json:"approvedAt,omitempty"`
	RejectedBy        *string                   `json:"rejectedBy,omitempty"`
	RejectedAt        *time.Time                `json:"rejectedAt,omitempty"`
	DecisionNote      string                    `json:"decisionNote,omitempty"`
}

// ToAdjustmentResponse converts a domain.AdjustmentRequest to AdjustmentResponse DTO
func ToAdjustmentResponse(a *domain.AdjustmentRequest) AdjustmentResponse {
	return AdjustmentResponse{
		AdjustmentID:      a.AdjustmentID,
		InvoiceID:         a.InvoiceID,
		Type:              a.Type,
		Reason:            a.Reason,
		DiscountScope:     a.DiscountScope,
		DiscountAmount:    a.DiscountAmount,
		DiscountPercent:   a.DiscountPercent,
		RefundAmount:      a.RefundAmount,
		RefundApplication: a.RefundApplication,
		Status:            a.Status,
		RequestedBy:       a.RequestedBy,
		RequestedAt:       a.RequestedAt,
		ApprovedBy:        a.ApprovedBy,
		ApprovedAt:        a.ApprovedAt,
		RejectedBy:        a.RejectedBy,
		RejectedAt:        a.RejectedAt,
		DecisionNote:      a.DecisionNote,
	}
}

// ToListAdjustmentResponse converts a slice of domain.AdjustmentRequest to a slice of DTOs
func ToListAdjustmentResponse(reqs []domain.AdjustmentRequest) []AdjustmentResponse {
	res := make([]AdjustmentResponse, len(reqs))
	for i := range reqs {
		res[i] = ToAdjustmentResponse(&reqs[i])
	}
	return res
}

// DecideAdjustmentResponse returns the resolved request and whatever it changed.
type DecideAdjustmentResponse struct {
	Adjustment AdjustmentResponse  `json:"adjustment"`
	Invoice    *InvoiceResponse    `json:"invoice,omitempty"`
	CreditNote *CreditNoteResponse `json:"creditNote,omitempty"`
}

// ToDecideAdjustmentResponse converts a domain.AdjustmentDecision to its response DTO.
func ToDecideAdjustmentResponse(d *domain.AdjustmentDecision) DecideAdjustmentResponse {
	resp := DecideAdjustmentResponse{Adjustment: ToAdjustmentResponse(&d.Adjustment)}
	if d.Invoice != nil {
		inv := ToInvoiceResponse(d.Invoice)
		resp.Invoice = &inv
	}
	if d.CreditNote != nil {
		note := ToCreditNoteResponse(d.CreditNote)
		resp.CreditNote = &note
	}
	return resp
}
