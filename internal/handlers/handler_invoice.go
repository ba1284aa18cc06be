package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
	"github.com/SscSPs/edu_billing_ledger/internal/middleware"
	"github.com/SscSPs/edu_billing_ledger/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers routes related to invoices and term reporting.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.PATCH("/:id/status", h.updateInvoiceStatus)
	}
	rg.GET("/terms/:termId/summary", h.getTermSummary)
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Raises a new invoice against a payer for a term. Net amount and balance are derived.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input or amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists invoices in creation order, filtered by term, effective status and payer type.
// @Tags invoices
// @Produce  json
// @Param   termId query string false "Term ID"
// @Param   status query string false "Effective status"
// @Param   payerType query string false "Payer type"
// @Param   limit query int false "Page size (1-500, default all)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), params.ToInvoiceFilter())
	if err != nil {
		respondError(c, err, "Failed to list invoices")
		return
	}

	page, next, err := pagination.Page(invoices, params.Limit, params.NextToken, func(inv domain.Invoice) (time.Time, string) {
		return inv.CreatedAt, inv.InvoiceID
	})
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid pagination token", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListInvoicesResponse{
		Invoices:  dto.ToListInvoiceResponse(page),
		NextToken: next,
	})
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Description Retrieves an invoice with its effective status
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	inv, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// updateInvoiceStatus godoc
// @Summary Override an invoice status
// @Description Administrative override of the stored status. Amounts are untouched.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   status body dto.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to update invoice"
// @Security BearerAuth
// @Router /invoices/{id}/status [patch]
func (h *invoiceHandler) updateInvoiceStatus(c *gin.Context) {
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	if req.UpdatedBy != "" {
		userID = req.UpdatedBy
	}

	inv, err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), c.Param("id"), req.Status, userID)
	if err != nil {
		respondError(c, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// getTermSummary godoc
// @Summary Summarise a term
// @Description Totals and per-status counts over every invoice of a term
// @Tags reporting
// @Produce  json
// @Param   termId path string true "Term ID"
// @Success 200 {object} dto.TermSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to summarise term"
// @Security BearerAuth
// @Router /terms/{termId}/summary [get]
func (h *invoiceHandler) getTermSummary(c *gin.Context) {
	summary, err := h.invoiceService.GetTermSummary(c.Request.Context(), c.Param("termId"))
	if err != nil {
		respondError(c, err, "Failed to summarise term")
		return
	}
	c.JSON(http.StatusOK, dto.ToTermSummaryResponse(summary))
}
