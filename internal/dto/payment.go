package dto

import (
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to record a payment against an invoice.
// Amount positivity is checked by the payment service so the caller gets ErrInvalidAmount.
type RecordPaymentRequest struct {
	Amount     decimal.Decimal      `json:"amount" swaggertype:"string" example:"1500"`
	Method     domain.PaymentMethod `json:"method" binding:"required,oneof=cash bank_transfer card mobile_money cheque other"`
	Reference  string               `json:"reference"`
	Date       time.Time            `json:"date"`       // Defaults to now
	RecordedBy string               `json:"recordedBy"` // Defaults to the authenticated user
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID  string               `json:"paymentID"`
	InvoiceID  string               `json:"invoiceID"`
	Amount     decimal.Decimal      `json:"amount" swaggertype:"string"`
	Method     domain.PaymentMethod `json:"method"`
	Reference  string               `json:"reference,omitempty"`
	Date       time.Time            `json:"date"`
	RecordedBy string               `json:"recordedBy"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:  p.PaymentID,
		InvoiceID:  p.InvoiceID,
		Amount:     p.Amount,
		Method:     p.Method,
		Reference:  p.Reference,
		Date:       p.Date,
		RecordedBy: p.RecordedBy,
		CreatedAt:  p.CreatedAt,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to a slice of PaymentResponse DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// RecordPaymentResponse returns the stored payment with the invoice it was applied to.
type RecordPaymentResponse struct {
	Payment     PaymentResponse `json:"payment"`
	Invoice     InvoiceResponse `json:"invoice"`
	Overpayment decimal.Decimal `json:"overpayment" swaggertype:"string"` // Excess over the balance owed; not stored as credit
}

// ToRecordPaymentResponse converts a domain.RecordedPayment to its response DTO.
func ToRecordPaymentResponse(r *domain.RecordedPayment) RecordPaymentResponse {
	return RecordPaymentResponse{
		Payment:     ToPaymentResponse(&r.Payment),
		Invoice:     ToInvoiceResponse(&r.Invoice),
		Overpayment: r.Overpayment,
	}
}
