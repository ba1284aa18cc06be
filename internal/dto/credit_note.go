package dto

import (
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreditNoteResponse defines the data returned for a credit note.
type CreditNoteResponse struct {
	CreditNoteID string                   `json:"creditNoteID"`
	InvoiceID    string                   `json:"invoiceID"`
	AdjustmentID string                   `json:"adjustmentID"`
	Amount       decimal.Decimal          `json:"amount" swaggertype:"string"`
	Reason       string                   `json:"reason"`
	AppliedAs    domain.RefundApplication `json:"appliedAs"`
	Status       domain.CreditNoteStatus  `json:"status"`
	RequestedBy  string                   `json:"requestedBy"`
	RequestedAt  time.Time                `json:"requestedAt"`
	ApprovedBy   string                   `json:"approvedBy"`
	ApprovedAt   time.Time                `json:"approvedAt"`
}

// ToCreditNoteResponse converts a domain.CreditNote to CreditNoteResponse DTO
func ToCreditNoteResponse(n *domain.CreditNote) CreditNoteResponse {
	return CreditNoteResponse{
		CreditNoteID: n.CreditNoteID,
		InvoiceID:    n.InvoiceID,
		AdjustmentID: n.AdjustmentID,
		Amount:       n.Amount,
		Reason:       n.Reason,
		AppliedAs:    n.AppliedAs,
		Status:       n.Status,
		RequestedBy:  n.RequestedBy,
		RequestedAt:  n.RequestedAt,
		ApprovedBy:   n.ApprovedBy,
		ApprovedAt:   n.ApprovedAt,
	}
}

// ToListCreditNoteResponse converts a slice of domain.CreditNote to a slice of DTOs
func ToListCreditNoteResponse(notes []domain.CreditNote) []CreditNoteResponse {
	res := make([]CreditNoteResponse, len(notes))
	for i := range notes {
		res[i] = ToCreditNoteResponse(&notes[i])
	}
	return res
}
