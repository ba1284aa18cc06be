package dto

import (
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TermSummaryResponse defines the per-term totals returned to finance dashboards.
type TermSummaryResponse struct {
	TermID         string                       `json:"termID"`
	InvoiceCount   int                          `json:"invoiceCount"`
	GrossAmount    decimal.Decimal              `json:"grossAmount" swaggertype:"string"`
	DiscountAmount decimal.Decimal              `json:"discountAmount" swaggertype:"string"`
	NetAmount      decimal.Decimal              `json:"netAmount" swaggertype:"string"`
	AmountPaid     decimal.Decimal              `json:"amountPaid" swaggertype:"string"`
	Balance        decimal.Decimal              `json:"balance" swaggertype:"string"`
	ByStatus       map[domain.InvoiceStatus]int `json:"byStatus"`
}

// ToTermSummaryResponse converts a domain.TermSummary to its response DTO.
func ToTermSummaryResponse(s *domain.TermSummary) TermSummaryResponse {
	return TermSummaryResponse{
		TermID:         s.TermID,
		InvoiceCount:   s.InvoiceCount,
		GrossAmount:    s.GrossAmount,
		DiscountAmount: s.DiscountAmount,
		NetAmount:      s.NetAmount,
		AmountPaid:     s.AmountPaid,
		Balance:        s.Balance,
		ByStatus:       s.ByStatus,
	}
}
