package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
)

// invoiceLocks hands out one mutex per invoice ID. Invoices are never deleted,
// so entries are never evicted.
type invoiceLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newInvoiceLocks() *invoiceLocks {
	return &invoiceLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *invoiceLocks) lock(invoiceID string) func() {
	l.mu.Lock()
	m, ok := l.locks[invoiceID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[invoiceID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// RunInInvoiceTx serialises fn against every other unit of work on the same invoice.
// Writes are staged on the ledgerTx and applied in one step after fn succeeds.
func (s *Store) RunInInvoiceTx(ctx context.Context, invoiceID string, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.locks.lock(invoiceID)
	defer unlock()

	tx := &ledgerTx{
		store:       s,
		invoiceID:   invoiceID,
		adjustments: make(map[string]domain.AdjustmentRequest),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.commit(tx)
	return nil
}

func (s *Store) commit(tx *ledgerTx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.invoice != nil {
		s.invoices[tx.invoice.InvoiceID] = *tx.invoice
	}
	s.payments = append(s.payments, tx.payments...)
	for _, id := range tx.adjustmentOrder {
		s.adjustments[id] = tx.adjustments[id]
	}
	s.creditNotes = append(s.creditNotes, tx.creditNotes...)
}

// ledgerTx is the staging area of one unit of work.
type ledgerTx struct {
	store     *Store
	invoiceID string

	invoice         *domain.Invoice
	payments        []domain.Payment
	adjustments     map[string]domain.AdjustmentRequest
	adjustmentOrder []string
	creditNotes     []domain.CreditNote
}

var _ portsrepo.LedgerTx = (*ledgerTx)(nil)

func (tx *ledgerTx) checkLocked(invoiceID string) error {
	if invoiceID != tx.invoiceID {
		return fmt.Errorf("invoice %s is not locked by this unit of work (holding %s)", invoiceID, tx.invoiceID)
	}
	return nil
}

func (tx *ledgerTx) FindInvoiceForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if err := tx.checkLocked(invoiceID); err != nil {
		return nil, err
	}
	if tx.invoice != nil {
		inv := *tx.invoice
		return &inv, nil
	}
	return tx.store.FindInvoiceByID(ctx, invoiceID)
}

func (tx *ledgerTx) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	if err := tx.checkLocked(invoice.InvoiceID); err != nil {
		return err
	}
	if tx.invoice == nil {
		if _, err := tx.store.FindInvoiceByID(ctx, invoice.InvoiceID); err != nil {
			return err
		}
	}
	tx.invoice = &invoice
	return nil
}

func (tx *ledgerTx) SavePayment(_ context.Context, payment domain.Payment) error {
	if err := tx.checkLocked(payment.InvoiceID); err != nil {
		return err
	}
	tx.payments = append(tx.payments, payment)
	return nil
}

func (tx *ledgerTx) FindAdjustmentForUpdate(ctx context.Context, adjustmentID string) (*domain.AdjustmentRequest, error) {
	if staged, ok := tx.adjustments[adjustmentID]; ok {
		clone := cloneAdjustment(staged)
		return &clone, nil
	}
	req, err := tx.store.FindAdjustmentByID(ctx, adjustmentID)
	if err != nil {
		return nil, err
	}
	if err := tx.checkLocked(req.InvoiceID); err != nil {
		return nil, err
	}
	return req, nil
}

func (tx *ledgerTx) UpdateAdjustment(ctx context.Context, req domain.AdjustmentRequest) error {
	if err := tx.checkLocked(req.InvoiceID); err != nil {
		return err
	}
	if _, ok := tx.adjustments[req.AdjustmentID]; !ok {
		if _, err := tx.store.FindAdjustmentByID(ctx, req.AdjustmentID); err != nil {
			return fmt.Errorf("update adjustment %s: %w", req.AdjustmentID, apperrors.ErrNotFound)
		}
		tx.adjustmentOrder = append(tx.adjustmentOrder, req.AdjustmentID)
	}
	tx.adjustments[req.AdjustmentID] = cloneAdjustment(req)
	return nil
}

func (tx *ledgerTx) SaveCreditNote(_ context.Context, note domain.CreditNote) error {
	if err := tx.checkLocked(note.InvoiceID); err != nil {
		return err
	}
	tx.creditNotes = append(tx.creditNotes, note)
	return nil
}
