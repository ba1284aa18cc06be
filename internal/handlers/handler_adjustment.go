package handlers

import (
	"net/http"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// adjustmentHandler handles the discount and refund approval workflow.
type adjustmentHandler struct {
	adjustmentService portssvc.AdjustmentSvcFacade
}

func newAdjustmentHandler(as portssvc.AdjustmentSvcFacade) *adjustmentHandler {
	return &adjustmentHandler{adjustmentService: as}
}

// registerAdjustmentRoutes registers routes related to adjustment requests.
func registerAdjustmentRoutes(rg *gin.RouterGroup, adjustmentService portssvc.AdjustmentSvcFacade) {
	h := newAdjustmentHandler(adjustmentService)

	rg.POST("/invoices/:id/adjustments", h.createAdjustment)
	rg.GET("/invoices/:id/adjustments", h.listAdjustmentsForInvoice)

	adjustments := rg.Group("/adjustments")
	{
		adjustments.GET("", h.listAdjustments)
		adjustments.POST("/:id/decision", h.decideAdjustment)
	}
}

// createAdjustment godoc
// @Summary File an adjustment request
// @Description Files a pending discount or refund request. Nothing changes on the invoice until approval.
// @Tags adjustments
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   adjustment body dto.CreateAdjustmentRequest true "Adjustment details"
// @Success 201 {object} dto.AdjustmentResponse
// @Failure 400 {object} map[string]string "Invalid input or amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to file adjustment request"
// @Security BearerAuth
// @Router /invoices/{id}/adjustments [post]
func (h *adjustmentHandler) createAdjustment(c *gin.Context) {
	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	adj, err := h.adjustmentService.CreateAdjustmentRequest(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to file adjustment request")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAdjustmentResponse(adj))
}

// listAdjustmentsForInvoice godoc
// @Summary List adjustment requests of an invoice
// @Description Requests newest first
// @Tags adjustments
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {array} dto.AdjustmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to list adjustment requests"
// @Security BearerAuth
// @Router /invoices/{id}/adjustments [get]
func (h *adjustmentHandler) listAdjustmentsForInvoice(c *gin.Context) {
	reqs, err := h.adjustmentService.ListAdjustmentsForInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list adjustment requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAdjustmentResponse(reqs))
}

// listAdjustments godoc
// @Summary List the adjustment queue
// @Description Requests in filing order. Without a status every request is returned.
// @Tags adjustments
// @Produce  json
// @Param   status query string false "pending, approved or rejected"
// @Success 200 {array} dto.AdjustmentResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list adjustment requests"
// @Security BearerAuth
// @Router /adjustments [get]
func (h *adjustmentHandler) listAdjustments(c *gin.Context) {
	var params dto.ListAdjustmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	var (
		reqs []domain.AdjustmentRequest
		err  error
	)
	switch params.Status {
	case "":
		reqs, err = h.adjustmentService.ListAdjustments(c.Request.Context(), nil)
	case string(domain.AdjustmentPending):
		reqs, err = h.adjustmentService.ListPendingAdjustments(c.Request.Context())
	default:
		status := domain.AdjustmentStatus(params.Status)
		reqs, err = h.adjustmentService.ListAdjustments(c.Request.Context(), &status)
	}
	if err != nil {
		respondError(c, err, "Failed to list adjustment requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAdjustmentResponse(reqs))
}

// decideAdjustment godoc
// @Summary Approve or reject an adjustment request
// @Description Resolves a pending request. Approved discounts recompute the invoice; approved refunds issue a credit note.
// @Tags adjustments
// @Accept  json
// @Produce  json
// @Param   id path string true "Adjustment ID"
// @Param   decision body dto.DecideAdjustmentRequest true "Decision"
// @Success 200 {object} dto.DecideAdjustmentResponse
// @Failure 400 {object} map[string]string "Invalid decision or amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Adjustment request not found"
// @Failure 409 {object} map[string]string "Already resolved"
// @Failure 500 {object} map[string]string "Failed to resolve adjustment request"
// @Security BearerAuth
// @Router /adjustments/{id}/decision [post]
func (h *adjustmentHandler) decideAdjustment(c *gin.Context) {
	var req dto.DecideAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	decision, err := h.adjustmentService.DecideAdjustment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to resolve adjustment request")
		return
	}
	c.JSON(http.StatusOK, dto.ToDecideAdjustmentResponse(decision))
}
