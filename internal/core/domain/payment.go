package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was received.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCard         PaymentMethod = "card"
	PaymentMobileMoney  PaymentMethod = "mobile_money"
	PaymentCheque       PaymentMethod = "cheque"
	PaymentOther        PaymentMethod = "other"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentBankTransfer, PaymentCard, PaymentMobileMoney, PaymentCheque, PaymentOther:
		return true
	}
	return false
}

// Payment is an immutable record of money received against an invoice.
type Payment struct {
	PaymentID  string          `json:"paymentID"`
	InvoiceID  string          `json:"invoiceID"` // FK -> Invoice.InvoiceID
	Amount     decimal.Decimal `json:"amount"`    // Always positive
	Method     PaymentMethod   `json:"method"`
	Reference  string          `json:"reference"` // Optional receipt or bank reference
	Date       time.Time       `json:"date"`      // When the money was received
	RecordedBy string          `json:"recordedBy"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// RecordedPayment is the outcome of applying one payment to an invoice.
type RecordedPayment struct {
	Payment     Payment
	Invoice     Invoice
	Overpayment decimal.Decimal // Amount received beyond what was owed; not kept as credit
}
