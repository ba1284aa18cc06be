package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditNoteStatus records the disposition of refunded money.
type CreditNoteStatus string

const (
	CreditNoteCreated         CreditNoteStatus = "created"           // To be paid back to the payer
	CreditNoteAppliedToFuture CreditNoteStatus = "applied_to_future" // Held as credit for later invoices
)

// CreditNoteStatusFor maps a refund application to the status of the note it produces.
func CreditNoteStatusFor(app RefundApplication) CreditNoteStatus {
	if app == RefundToPayer {
		return CreditNoteCreated
	}
	return CreditNoteAppliedToFuture
}

// CreditNote is issued when a refund adjustment is approved. Immutable.
type CreditNote struct {
	CreditNoteID string            `json:"creditNoteID"`
	InvoiceID    string            `json:"invoiceID"`
	AdjustmentID string            `json:"adjustmentID"` // Originating refund request
	Amount       decimal.Decimal   `json:"amount"`
	Reason       string            `json:"reason"`
	AppliedAs    RefundApplication `json:"appliedAs"`
	Status       CreditNoteStatus  `json:"status"`
	RequestedBy  string            `json:"requestedBy"`
	RequestedAt  time.Time         `json:"requestedAt"`
	ApprovedBy   string            `json:"approvedBy"`
	ApprovedAt   time.Time         `json:"approvedAt"`
}
