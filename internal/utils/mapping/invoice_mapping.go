package mapping

import (
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/SscSPs/edu_billing_ledger/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	var due *time.Time
	if !d.DueDate.IsZero() {
		t := d.DueDate
		due = &t
	}
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		TermID:         d.TermID,
		PayerType:      string(d.PayerType),
		PayerID:        d.PayerID,
		PayerName:      d.PayerName,
		Description:    d.Description,
		GrossAmount:    d.GrossAmount,
		DiscountAmount: d.DiscountAmount,
		NetAmount:      d.NetAmount,
		AmountPaid:     d.AmountPaid,
		Balance:        d.Balance,
		DueDate:        due,
		Status:         models.InvoiceStatus(d.Status),
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	var due time.Time
	if m.DueDate != nil {
		due = *m.DueDate
	}
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		TermID:         m.TermID,
		PayerType:      domain.PayerType(m.PayerType),
		PayerID:        m.PayerID,
		PayerName:      m.PayerName,
		Description:    m.Description,
		GrossAmount:    m.GrossAmount,
		DiscountAmount: m.DiscountAmount,
		NetAmount:      m.NetAmount,
		AmountPaid:     m.AmountPaid,
		Balance:        m.Balance,
		DueDate:        due,
		Status:         domain.InvoiceStatus(m.Status),
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// Invoices are the only mutable table carrying the shared audit columns.
func toModelAudit(d domain.AuditFields) models.AuditFields {
	return models.AuditFields(d)
}

func toDomainAudit(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields(m)
}
