package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ErrRendererUnavailable is returned when no document renderer was configured.
var ErrRendererUnavailable = errors.New("credit note rendering is not configured")

type creditNoteService struct {
	BaseService
	creditNoteRepo portsrepo.CreditNoteReader
	invoiceRepo    portsrepo.InvoiceReader
	renderer       portssvc.CreditNoteRenderer
}

// NewCreditNoteService creates the credit note issuer. renderer may be nil,
// in which case RenderCreditNotePDF fails with ErrRendererUnavailable.
func NewCreditNoteService(creditNoteRepo portsrepo.CreditNoteReader, invoiceRepo portsrepo.InvoiceReader, renderer portssvc.CreditNoteRenderer, options ...ServiceOption) portssvc.CreditNoteSvcFacade {
	return &creditNoteService{
		BaseService:    newBaseService(options...),
		creditNoteRepo: creditNoteRepo,
		invoiceRepo:    invoiceRepo,
		renderer:       renderer,
	}
}

func (s *creditNoteService) Issue(invoice domain.Invoice, req domain.AdjustmentRequest, approvedBy string, now time.Time) domain.CreditNote {
	amount := decimal.Zero
	if req.RefundAmount != nil {
		amount = *req.RefundAmount
	}
	appliedAs := req.EffectiveRefundApplication()
	return domain.CreditNote{
		CreditNoteID: s.NewID(),
		InvoiceID:    invoice.InvoiceID,
		AdjustmentID: req.AdjustmentID,
		Amount:       amount,
		Reason:       req.Reason,
		AppliedAs:    appliedAs,
		Status:       domain.CreditNoteStatusFor(appliedAs),
		RequestedBy:  req.RequestedBy,
		RequestedAt:  req.RequestedAt,
		ApprovedBy:   approvedBy,
		ApprovedAt:   now,
	}
}

func (s *creditNoteService) ListCreditNotesForInvoice(ctx context.Context, invoiceID string) ([]domain.CreditNote, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	notes, err := s.creditNoteRepo.FindCreditNotesByInvoiceID(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list credit notes", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	return notes, nil
}

func (s *creditNoteService) GetCreditNote(ctx context.Context, creditNoteID string) (*domain.CreditNote, error) {
	note, err := s.creditNoteRepo.FindCreditNoteByID(ctx, creditNoteID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find credit note", slog.String("credit_note_id", creditNoteID))
		}
		return nil, err
	}
	return note, nil
}

func (s *creditNoteService) RenderCreditNotePDF(ctx context.Context, creditNoteID string) ([]byte, error) {
	if s.renderer == nil {
		return nil, ErrRendererUnavailable
	}
	note, err := s.GetCreditNote(ctx, creditNoteID)
	if err != nil {
		return nil, err
	}
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, note.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("load invoice %s for credit note %s: %w", note.InvoiceID, creditNoteID, err)
	}
	doc, err := s.renderer.RenderCreditNote(ctx, *note, inv.WithEffectiveStatus(s.Now()))
	if err != nil {
		s.LogError(ctx, err, "Failed to render credit note", slog.String("credit_note_id", creditNoteID))
		return nil, err
	}
	return doc, nil
}
