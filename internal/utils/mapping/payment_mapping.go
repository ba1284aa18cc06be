package mapping

import (
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/SscSPs/edu_billing_ledger/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:  d.PaymentID,
		InvoiceID:  d.InvoiceID,
		Amount:     d.Amount,
		Method:     string(d.Method),
		Reference:  d.Reference,
		PaidAt:     d.Date,
		RecordedBy: d.RecordedBy,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:  m.PaymentID,
		InvoiceID:  m.InvoiceID,
		Amount:     m.Amount,
		Method:     domain.PaymentMethod(m.Method),
		Reference:  m.Reference,
		Date:       m.PaidAt,
		RecordedBy: m.RecordedBy,
		CreatedAt:  m.CreatedAt,
	}
}
