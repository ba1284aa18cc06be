package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
	"github.com/SscSPs/edu_billing_ledger/internal/metrics"
	"github.com/SscSPs/edu_billing_ledger/internal/utils/accounting"
)

type adjustmentService struct {
	BaseService
	invoiceRepo    portsrepo.InvoiceReader
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade
	txManager      portsrepo.TransactionManager
	issuer         portssvc.CreditNoteIssuerSvc
	discountPlaces int32
}

// NewAdjustmentService creates the adjustment workflow. discountPlaces is the
// rounding applied when a percentage discount is converted to an amount.
func NewAdjustmentService(
	invoiceRepo portsrepo.InvoiceReader,
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade,
	txManager portsrepo.TransactionManager,
	issuer portssvc.CreditNoteIssuerSvc,
	discountPlaces int32,
	options ...ServiceOption,
) portssvc.AdjustmentSvcFacade {
	return &adjustmentService{
		BaseService:    newBaseService(options...),
		invoiceRepo:    invoiceRepo,
		adjustmentRepo: adjustmentRepo,
		txManager:      txManager,
		issuer:         issuer,
		discountPlaces: discountPlaces,
	}
}

func (s *adjustmentService) CreateAdjustmentRequest(ctx context.Context, invoiceID string, req dto.CreateAdjustmentRequest, requesterUserID string) (*domain.AdjustmentRequest, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice for adjustment", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	adj := domain.AdjustmentRequest{
		AdjustmentID:      s.NewID(),
		InvoiceID:         invoiceID,
		Type:              req.Type,
		Reason:            req.Reason,
		DiscountScope:     req.DiscountScope,
		DiscountAmount:    req.DiscountAmount,
		DiscountPercent:   req.DiscountPercent,
		RefundAmount:      req.RefundAmount,
		RefundApplication: req.RefundApplication,
		Status:            domain.AdjustmentPending,
		RequestedBy:       firstNonEmpty(req.RequestedBy, requesterUserID),
		RequestedAt:       s.Now(),
	}
	if err := adj.Validate(); err != nil {
		return nil, err
	}

	if err := s.adjustmentRepo.SaveAdjustment(ctx, adj); err != nil {
		s.LogError(ctx, err, "Failed to save adjustment request", slog.String("adjustment_id", adj.AdjustmentID))
		return nil, err
	}

	metrics.AdjustmentsRequested.WithLabelValues(string(adj.Type)).Inc()
	s.LogInfo(ctx, "Adjustment request filed",
		slog.String("adjustment_id", adj.AdjustmentID),
		slog.String("invoice_id", invoiceID),
		slog.String("type", string(adj.Type)))
	return &adj, nil
}

func (s *adjustmentService) DecideAdjustment(ctx context.Context, adjustmentID string, req dto.DecideAdjustmentRequest, deciderUserID string) (*domain.AdjustmentDecision, error) {
	if req.Decision != domain.AdjustmentApproved && req.Decision != domain.AdjustmentRejected {
		return nil, fmt.Errorf("%w: decision must be approved or rejected, got %q", apperrors.ErrValidation, req.Decision)
	}

	// The owning invoice decides which lock to take; pending is re-checked under it.
	existing, err := s.adjustmentRepo.FindAdjustmentByID(ctx, adjustmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find adjustment request", slog.String("adjustment_id", adjustmentID))
		}
		return nil, err
	}
	if !existing.IsPending() {
		return nil, alreadyResolved(existing)
	}

	var decision domain.AdjustmentDecision
	err = s.txManager.RunInInvoiceTx(ctx, existing.InvoiceID, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		adj, err := tx.FindAdjustmentForUpdate(ctx, adjustmentID)
		if err != nil {
			return err
		}
		if !adj.IsPending() {
			return alreadyResolved(adj)
		}

		now := s.Now()
		decision = domain.AdjustmentDecision{}
		if req.Decision == domain.AdjustmentRejected {
			rejectedBy := firstNonEmpty(req.RejectedBy, deciderUserID)
			adj.Status = domain.AdjustmentRejected
			adj.RejectedBy = &rejectedBy
			adj.RejectedAt = &now
			adj.DecisionNote = req.DecisionNote
		} else {
			approvedBy := firstNonEmpty(req.ApprovedBy, deciderUserID)
			if err := s.applyApproval(ctx, tx, adj, approvedBy, &decision); err != nil {
				return err
			}
			adj.Status = domain.AdjustmentApproved
			adj.ApprovedBy = &approvedBy
			adj.ApprovedAt = &now
			adj.DecisionNote = req.DecisionNote
		}

		if err := tx.UpdateAdjustment(ctx, *adj); err != nil {
			return err
		}
		decision.Adjustment = *adj
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrAlreadyResolved) && !errors.Is(err, apperrors.ErrInvalidAmount) {
			s.LogError(ctx, err, "Failed to resolve adjustment request", slog.String("adjustment_id", adjustmentID))
		}
		return nil, err
	}

	metrics.AdjustmentsResolved.WithLabelValues(string(decision.Adjustment.Type), string(decision.Adjustment.Status)).Inc()
	if decision.CreditNote != nil {
		metrics.CreditNotesIssued.WithLabelValues(string(decision.CreditNote.AppliedAs)).Inc()
	}
	s.LogInfo(ctx, "Adjustment request resolved",
		slog.String("adjustment_id", adjustmentID),
		slog.String("invoice_id", decision.Adjustment.InvoiceID),
		slog.String("decision", string(decision.Adjustment.Status)))
	return &decision, nil
}

// applyApproval applies the financial effect of an approved request inside tx.
// A missing invoice leaves the approval without effect.
func (s *adjustmentService) applyApproval(ctx context.Context, tx portsrepo.LedgerTx, adj *domain.AdjustmentRequest, approvedBy string, decision *domain.AdjustmentDecision) error {
	inv, err := tx.FindInvoiceForUpdate(ctx, adj.InvoiceID)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "Invoice missing for approved adjustment; approving without financial effect",
			slog.String("adjustment_id", adj.AdjustmentID),
			slog.String("invoice_id", adj.InvoiceID))
		return nil
	}
	if err != nil {
		return err
	}

	now := s.Now()
	switch adj.Type {
	case domain.AdjustmentDiscount:
		discount := adj.DiscountFor(inv.GrossAmount, s.discountPlaces)
		total := inv.DiscountAmount.Add(discount)
		if total.GreaterThan(inv.GrossAmount) {
			return fmt.Errorf("%w: discount of %s would take net amount below zero (gross %s, already discounted %s)",
				apperrors.ErrInvalidAmount, discount, inv.GrossAmount, inv.DiscountAmount)
		}
		inv.DiscountAmount = total
		inv.Recalculate()
	case domain.AdjustmentRefund:
		if adj.RefundAmount == nil {
			return nil
		}
		note := s.issuer.Issue(*inv, *adj, approvedBy, now)
		if err := tx.SaveCreditNote(ctx, note); err != nil {
			return err
		}
		inv.Balance = accounting.FloorAtZero(inv.Balance.Sub(*adj.RefundAmount))
		decision.CreditNote = &note
	default:
		return fmt.Errorf("%w: unknown adjustment type %q", apperrors.ErrValidation, adj.Type)
	}

	inv.LastUpdatedAt = now
	inv.LastUpdatedBy = approvedBy
	if err := tx.UpdateInvoice(ctx, *inv); err != nil {
		return err
	}
	updated := inv.WithEffectiveStatus(now)
	decision.Invoice = &updated
	return nil
}

func (s *adjustmentService) ListAdjustmentsForInvoice(ctx context.Context, invoiceID string) ([]domain.AdjustmentRequest, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	reqs, err := s.adjustmentRepo.FindAdjustmentsByInvoiceID(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list adjustments", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	slices.SortStableFunc(reqs, func(a, b domain.AdjustmentRequest) int {
		return b.RequestedAt.Compare(a.RequestedAt)
	})
	return reqs, nil
}

func (s *adjustmentService) ListPendingAdjustments(ctx context.Context) ([]domain.AdjustmentRequest, error) {
	pending := domain.AdjustmentPending
	return s.ListAdjustments(ctx, &pending)
}

func (s *adjustmentService) ListAdjustments(ctx context.Context, status *domain.AdjustmentStatus) ([]domain.AdjustmentRequest, error) {
	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown adjustment status %q", apperrors.ErrValidation, *status)
	}
	reqs, err := s.adjustmentRepo.ListAdjustments(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list adjustment queue")
		return nil, err
	}
	return reqs, nil
}

func alreadyResolved(adj *domain.AdjustmentRequest) error {
	return fmt.Errorf("%w: adjustment %s is %s", apperrors.ErrAlreadyResolved, adj.AdjustmentID, adj.Status)
}
