package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the row shape of the payments table.
type Payment struct {
	PaymentID  string          `db:"payment_id"`
	InvoiceID  string          `db:"invoice_id"`
	Amount     decimal.Decimal `db:"amount"`
	Method     string          `db:"method"`
	Reference  string          `db:"reference"`
	PaidAt     time.Time       `db:"paid_at"`
	RecordedBy string          `db:"recorded_by"`
	CreatedAt  time.Time       `db:"created_at"`
}
