package domain

import (
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "draft"
	InvoiceSent          InvoiceStatus = "sent"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceOverdue       InvoiceStatus = "overdue"
	InvoiceCancelled     InvoiceStatus = "cancelled"
)

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePartiallyPaid, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether a stored status must never be overridden by derivation.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceCancelled || s == InvoicePaid
}

// PayerType classifies who is billed by an invoice.
type PayerType string

const (
	PayerParent       PayerType = "parent"
	PayerSchool       PayerType = "school"
	PayerOrganisation PayerType = "organisation"
)

// Invoice is a charge raised against a payer for a term.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"` // Primary Key (UUID)
	TermID         string          `json:"termID"`
	PayerType      PayerType       `json:"payerType"`
	PayerID        string          `json:"payerID"`
	PayerName      string          `json:"payerName"`
	Description    string          `json:"description"`
	GrossAmount    decimal.Decimal `json:"grossAmount"`    // Original charge, immutable after creation
	DiscountAmount decimal.Decimal `json:"discountAmount"` // Cumulative approved discounts
	NetAmount      decimal.Decimal `json:"netAmount"`      // GrossAmount - DiscountAmount
	AmountPaid     decimal.Decimal `json:"amountPaid"`     // Cumulative recorded payments
	Balance        decimal.Decimal `json:"balance"`        // Outstanding amount, never negative
	DueDate        time.Time       `json:"dueDate"`
	Status         InvoiceStatus   `json:"status"` // Stored status; see EffectiveStatus
	AuditFields
}

// Recalculate restores the amount invariants from gross, discount and paid.
func (i *Invoice) Recalculate() {
	i.NetAmount = i.GrossAmount.Sub(i.DiscountAmount)
	i.Balance = accounting.OutstandingBalance(i.NetAmount, i.AmountPaid)
}

// EffectiveStatus derives the status shown to callers. Balances and the due date
// win over the stored status except for cancelled and paid, which are authoritative.
func (i Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status.IsTerminal() {
		return i.Status
	}
	if !i.Balance.IsPositive() {
		return InvoicePaid
	}
	if !i.DueDate.IsZero() && i.DueDate.Before(now) {
		return InvoiceOverdue
	}
	if i.AmountPaid.IsPositive() {
		return InvoicePartiallyPaid
	}
	return i.Status
}

// WithEffectiveStatus returns a copy of the invoice whose Status is the derived one.
func (i Invoice) WithEffectiveStatus(now time.Time) Invoice {
	i.Status = i.EffectiveStatus(now)
	return i
}

// InvoiceFilter narrows invoice listings. Nil fields are ignored.
type InvoiceFilter struct {
	TermID    *string
	Status    *InvoiceStatus
	PayerType *PayerType
}
