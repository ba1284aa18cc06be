// Package memory provides a mutex-guarded, process-local implementation of the
// ledger repositories. It is the default store and the one used by service tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
)

// Store holds every ledger collection in memory.
type Store struct {
	mu            sync.RWMutex
	invoices      map[string]domain.Invoice
	invoiceOrder  []string
	payments      []domain.Payment
	adjustments   map[string]domain.AdjustmentRequest
	adjustmentSeq []string
	creditNotes   []domain.CreditNote

	locks *invoiceLocks
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		invoices:    make(map[string]domain.Invoice),
		adjustments: make(map[string]domain.AdjustmentRequest),
		locks:       newInvoiceLocks(),
	}
}

// NewRepositoryProvider exposes a store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:    store,
		PaymentRepo:    store,
		AdjustmentRepo: store,
		CreditNoteRepo: store,
		TxManager:      store,
	}
}

var (
	_ portsrepo.InvoiceRepositoryFacade    = (*Store)(nil)
	_ portsrepo.PaymentReader              = (*Store)(nil)
	_ portsrepo.AdjustmentRepositoryFacade = (*Store)(nil)
	_ portsrepo.CreditNoteReader           = (*Store)(nil)
	_ portsrepo.TransactionManager         = (*Store)(nil)
)

// --- invoices ---

func (s *Store) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.invoices[invoice.InvoiceID]; exists {
		return fmt.Errorf("%w: invoice with ID %s already exists", apperrors.ErrDuplicate, invoice.InvoiceID)
	}
	s.invoices[invoice.InvoiceID] = invoice
	s.invoiceOrder = append(s.invoiceOrder, invoice.InvoiceID)
	return nil
}

func (s *Store) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invoices[invoiceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &inv, nil
}

func (s *Store) ListInvoices(_ context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Invoice, 0, len(s.invoiceOrder))
	for _, id := range s.invoiceOrder {
		inv := s.invoices[id]
		if filter.TermID != nil && inv.TermID != *filter.TermID {
			continue
		}
		if filter.PayerType != nil && inv.PayerType != *filter.PayerType {
			continue
		}
		result = append(result, inv)
	}
	return result, nil
}

// --- payments ---

func (s *Store) FindPaymentsByInvoiceID(_ context.Context, invoiceID string) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Payment, 0)
	for _, p := range s.payments {
		if p.InvoiceID == invoiceID {
			result = append(result, p)
		}
	}
	return result, nil
}

// --- adjustments ---

func (s *Store) SaveAdjustment(_ context.Context, req domain.AdjustmentRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.adjustments[req.AdjustmentID]; exists {
		return fmt.Errorf("%w: adjustment with ID %s already exists", apperrors.ErrDuplicate, req.AdjustmentID)
	}
	s.adjustments[req.AdjustmentID] = cloneAdjustment(req)
	s.adjustmentSeq = append(s.adjustmentSeq, req.AdjustmentID)
	return nil
}

func (s *Store) FindAdjustmentByID(_ context.Context, adjustmentID string) (*domain.AdjustmentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.adjustments[adjustmentID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := cloneAdjustment(req)
	return &clone, nil
}

func (s *Store) FindAdjustmentsByInvoiceID(_ context.Context, invoiceID string) ([]domain.AdjustmentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.AdjustmentRequest, 0)
	for _, id := range s.adjustmentSeq {
		if req := s.adjustments[id]; req.InvoiceID == invoiceID {
			result = append(result, cloneAdjustment(req))
		}
	}
	return result, nil
}

func (s *Store) ListAdjustments(_ context.Context, status *domain.AdjustmentStatus) ([]domain.AdjustmentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.AdjustmentRequest, 0)
	for _, id := range s.adjustmentSeq {
		req := s.adjustments[id]
		if status != nil && req.Status != *status {
			continue
		}
		result = append(result, cloneAdjustment(req))
	}
	return result, nil
}

// --- credit notes ---

func (s *Store) FindCreditNoteByID(_ context.Context, creditNoteID string) (*domain.CreditNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.creditNotes {
		if n.CreditNoteID == creditNoteID {
			note := n
			return &note, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindCreditNotesByInvoiceID(_ context.Context, invoiceID string) ([]domain.CreditNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.CreditNote, 0)
	for _, n := range s.creditNotes {
		if n.InvoiceID == invoiceID {
			result = append(result, n)
		}
	}
	return result, nil
}

// cloneAdjustment copies the optional fields so callers never share pointers with the store.
func cloneAdjustment(req domain.AdjustmentRequest) domain.AdjustmentRequest {
	if req.DiscountAmount != nil {
		v := *req.DiscountAmount
		req.DiscountAmount = &v
	}
	if req.DiscountPercent != nil {
		v := *req.DiscountPercent
		req.DiscountPercent = &v
	}
	if req.RefundAmount != nil {
		v := *req.RefundAmount
		req.RefundAmount = &v
	}
	if req.RefundApplication != nil {
		v := *req.RefundApplication
		req.RefundApplication = &v
	}
	if req.ApprovedBy != nil {
		v := *req.ApprovedBy
		req.ApprovedBy = &v
	}
	if req.ApprovedAt != nil {
		v := *req.ApprovedAt
		req.ApprovedAt = &v
	}
	if req.RejectedBy != nil {
		v := *req.RejectedBy
		req.RejectedBy = &v
	}
	if req.RejectedAt != nil {
		v := *req.RejectedAt
		req.RejectedAt = &v
	}
	return req
}
