package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the stored status column of the invoices table.
type InvoiceStatus string

// Invoice is the row shape of the invoices table.
type Invoice struct {
	InvoiceID      string          `db:"invoice_id"`
	TermID         string          `db:"term_id"`
	PayerType      string          `db:"payer_type"`
	PayerID        string          `db:"payer_id"`
	PayerName      string          `db:"payer_name"`
	Description    string          `db:"description"`
	GrossAmount    decimal.Decimal `db:"gross_amount"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	NetAmount      decimal.Decimal `db:"net_amount"`
	AmountPaid     decimal.Decimal `db:"amount_paid"`
	Balance        decimal.Decimal `db:"balance"`
	DueDate        *time.Time      `db:"due_date"` // NULL when the invoice has no due date
	Status         InvoiceStatus   `db:"status"`
	AuditFields
}
