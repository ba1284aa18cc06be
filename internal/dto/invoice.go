package dto

import (
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create a new invoice.
type CreateInvoiceRequest struct {
	TermID         string                `json:"termID" binding:"required"`
	PayerType      domain.PayerType      `json:"payerType" binding:"required,oneof=parent school organisation"`
	PayerID        string                `json:"payerID" binding:"required"`
	PayerName      string                `json:"payerName"`
	Description    string                `json:"description"`
	GrossAmount    decimal.Decimal       `json:"grossAmount" binding:"gte=0" swaggertype:"string" example:"3000"`
	DiscountAmount *decimal.Decimal      `json:"discountAmount,omitempty" binding:"omitempty,gte=0" swaggertype:"string"`
	AmountPaid     *decimal.Decimal      `json:"amountPaid,omitempty" binding:"omitempty,gte=0" swaggertype:"string"`
	DueDate        time.Time             `json:"dueDate"`
	Status         *domain.InvoiceStatus `json:"status,omitempty" binding:"omitempty,oneof=draft sent partially_paid paid overdue cancelled"` // Defaults to draft
	CreatedBy      string                `json:"createdBy"`                                                                                // Defaults to the authenticated user
}

// UpdateInvoiceStatusRequest defines an administrative override of the stored status.
type UpdateInvoiceStatusRequest struct {
	Status    domain.InvoiceStatus `json:"status" binding:"required,oneof=draft sent partially_paid paid overdue cancelled"`
	UpdatedBy string               `json:"updatedBy"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	TermID    string `form:"termId"`
	Status    string `form:"status" binding:"omitempty,oneof=draft sent partially_paid paid overdue cancelled"`
	PayerType string `form:"payerType" binding:"omitempty,oneof=parent school organisation"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"` // Zero returns every match
	NextToken string `form:"nextToken"`
}

// ToInvoiceFilter converts query parameters into a domain filter.
func (p ListInvoicesParams) ToInvoiceFilter() domain.InvoiceFilter {
	var filter domain.InvoiceFilter
	if p.TermID != "" {
		termID := p.TermID
		filter.TermID = &termID
	}
	if p.Status != "" {
		status := domain.InvoiceStatus(p.Status)
		filter.Status = &status
	}
	if p.PayerType != "" {
		payerType := domain.PayerType(p.PayerType)
		filter.PayerType = &payerType
	}
	return filter
}

// InvoiceResponse defines the data returned for an invoice.
// Status is always the effective status.
type InvoiceResponse struct {
	InvoiceID      string               `json:"invoiceID"`
	TermID         string               `json:"termID"`
	PayerType      domain.PayerType     `json:"payerType"`
	PayerID        string               `json:"payerID"`
	PayerName      string               `json:"payerName"`
	Description    string               `json:"description"`
	GrossAmount    decimal.Decimal      `json:"grossAmount" swaggertype:"string"`
	DiscountAmount decimal.Decimal      `json:"discountAmount" swaggertype:"string"`
	NetAmount      decimal.Decimal      `json:"netAmount" swaggertype:"string"`
	AmountPaid     decimal.Decimal      `json:"amountPaid" swaggertype:"string"`
	Balance        decimal.Decimal      `json:"balance" swaggertype:"string"`
	DueDate        time.Time            `json:"dueDate"`
	Status         domain.InvoiceStatus `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
	LastUpdatedAt  time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy  string               `json:"lastUpdatedBy"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		TermID:         inv.TermID,
		PayerType:      inv.PayerType,
		PayerID:        inv.PayerID,
		PayerName:      inv.PayerName,
		Description:    inv.Description,
		GrossAmount:    inv.GrossAmount,
		DiscountAmount: inv.DiscountAmount,
		NetAmount:      inv.NetAmount,
		AmountPaid:     inv.AmountPaid,
		Balance:        inv.Balance,
		DueDate:        inv.DueDate,
		Status:         inv.Status,
		CreatedAt:      inv.CreatedAt,
		CreatedBy:      inv.CreatedBy,
		LastUpdatedAt:  inv.LastUpdatedAt,
		LastUpdatedBy:  inv.LastUpdatedBy,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to a slice of InvoiceResponse DTOs
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken string            `json:"nextToken,omitempty"`
}
