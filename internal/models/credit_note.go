package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditNote is the row shape of the credit_notes table.
type CreditNote struct {
	CreditNoteID string          `db:"credit_note_id"`
	InvoiceID    string          `db:"invoice_id"`
	AdjustmentID string          `db:"adjustment_id"`
	Amount       decimal.Decimal `db:"amount"`
	Reason       string          `db:"reason"`
	AppliedAs    string          `db:"applied_as"`
	Status       string          `db:"status"`
	RequestedBy  string          `db:"requested_by"`
	RequestedAt  time.Time       `db:"requested_at"`
	ApprovedBy   string          `db:"approved_by"`
	ApprovedAt   time.Time       `db:"approved_at"`
}
