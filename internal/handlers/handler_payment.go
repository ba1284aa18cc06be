package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	rg.POST("/invoices/:id/payments", h.recordPayment)
	rg.GET("/invoices/:id/payments", h.listPayments)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment and updates the invoice totals atomically. Overpayment is reported but not kept as credit.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or non-positive amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /invoices/{id}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	recorded, err := h.paymentService.RecordPayment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecordPaymentResponse(recorded))
}

// listPayments godoc
// @Summary List payments of an invoice
// @Description Payments newest first
// @Tags payments
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /invoices/{id}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPaymentsForInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}
