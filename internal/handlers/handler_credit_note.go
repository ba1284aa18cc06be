package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type creditNoteHandler struct {
	creditNoteService portssvc.CreditNoteReaderSvc
}

func newCreditNoteHandler(cs portssvc.CreditNoteReaderSvc) *creditNoteHandler {
	return &creditNoteHandler{creditNoteService: cs}
}

// registerCreditNoteRoutes registers read-only credit note routes.
func registerCreditNoteRoutes(rg *gin.RouterGroup, creditNoteService portssvc.CreditNoteReaderSvc) {
	h := newCreditNoteHandler(creditNoteService)

	rg.GET("/invoices/:id/credit-notes", h.listCreditNotes)
	notes := rg.Group("/credit-notes")
	{
		notes.GET("/:id", h.getCreditNote)
		notes.GET("/:id/pdf", h.getCreditNotePDF)
	}
}

// listCreditNotes godoc
// @Summary List credit notes of an invoice
// @Tags credit-notes
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {array} dto.CreditNoteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to list credit notes"
// @Security BearerAuth
// @Router /invoices/{id}/credit-notes [get]
func (h *creditNoteHandler) listCreditNotes(c *gin.Context) {
	notes, err := h.creditNoteService.ListCreditNotesForInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list credit notes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCreditNoteResponse(notes))
}

// getCreditNote godoc
// @Summary Get a credit note by ID
// @Tags credit-notes
// @Produce  json
// @Param   id path string true "Credit note ID"
// @Success 200 {object} dto.CreditNoteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Credit note not found"
// @Failure 500 {object} map[string]string "Failed to retrieve credit note"
// @Security BearerAuth
// @Router /credit-notes/{id} [get]
func (h *creditNoteHandler) getCreditNote(c *gin.Context) {
	note, err := h.creditNoteService.GetCreditNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve credit note")
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditNoteResponse(note))
}

// getCreditNotePDF godoc
// @Summary Download a credit note as PDF
// @Tags credit-notes
// @Produce  application/pdf
// @Param   id path string true "Credit note ID"
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Credit note not found"
// @Failure 501 {object} map[string]string "Rendering not configured"
// @Failure 500 {object} map[string]string "Failed to render credit note"
// @Security BearerAuth
// @Router /credit-notes/{id}/pdf [get]
func (h *creditNoteHandler) getCreditNotePDF(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.creditNoteService.RenderCreditNotePDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to render credit note")
		return
	}
	c.Header("Content-Disposition", `inline; filename="credit-note-`+id+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
