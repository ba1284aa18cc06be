package mapping

import (
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/SscSPs/edu_billing_ledger/internal/models"
)

// ToModelCreditNote converts a domain CreditNote to a model CreditNote
func ToModelCreditNote(d domain.CreditNote) models.CreditNote {
	return models.CreditNote{
		CreditNoteID: d.CreditNoteID,
		InvoiceID:    d.InvoiceID,
		AdjustmentID: d.AdjustmentID,
		Amount:       d.Amount,
		Reason:       d.Reason,
		AppliedAs:    string(d.AppliedAs),
		Status:       string(d.Status),
		RequestedBy:  d.RequestedBy,
		RequestedAt:  d.RequestedAt,
		ApprovedBy:   d.ApprovedBy,
		ApprovedAt:   d.ApprovedAt,
	}
}

// ToDomainCreditNote converts a model CreditNote to a domain CreditNote
func ToDomainCreditNote(m models.CreditNote) domain.CreditNote {
	return domain.CreditNote{
		CreditNoteID: m.CreditNoteID,
		InvoiceID:    m.InvoiceID,
		AdjustmentID: m.AdjustmentID,
		Amount:       m.Amount,
		Reason:       m.Reason,
		AppliedAs:    domain.RefundApplication(m.AppliedAs),
		Status:       domain.CreditNoteStatus(m.Status),
		RequestedBy:  m.RequestedBy,
		RequestedAt:  m.RequestedAt,
		ApprovedBy:   m.ApprovedBy,
		ApprovedAt:   m.ApprovedAt,
	}
}
