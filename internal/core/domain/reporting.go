package domain

import "github.com/shopspring/decimal"

// TermSummary aggregates the invoices of one term for finance dashboards.
type TermSummary struct {
	TermID         string
	InvoiceCount   int
	GrossAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	NetAmount      decimal.Decimal
	AmountPaid     decimal.Decimal
	Balance        decimal.Decimal
	ByStatus       map[InvoiceStatus]int // Keyed by effective status
}

// NewTermSummary folds invoices (already carrying effective status) into a summary.
func NewTermSummary(termID string, invoices []Invoice) TermSummary {
	summary := TermSummary{
		TermID:         termID,
		GrossAmount:    decimal.Zero,
		DiscountAmount: decimal.Zero,
		NetAmount:      decimal.Zero,
		AmountPaid:     decimal.Zero,
		Balance:        decimal.Zero,
		ByStatus:       make(map[InvoiceStatus]int),
	}
	for _, inv := range invoices {
		summary.InvoiceCount++
		summary.GrossAmount = summary.GrossAmount.Add(inv.GrossAmount)
		summary.DiscountAmount = summary.DiscountAmount.Add(inv.DiscountAmount)
		summary.NetAmount = summary.NetAmount.Add(inv.NetAmount)
		summary.AmountPaid = summary.AmountPaid.Add(inv.AmountPaid)
		summary.Balance = summary.Balance.Add(inv.Balance)
		summary.ByStatus[inv.Status]++
	}
	return summary
}
