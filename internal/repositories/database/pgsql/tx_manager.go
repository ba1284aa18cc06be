package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionManager runs each unit of work in one pgx transaction holding
// the invoice row lock until commit.
type PgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) portsrepo.TransactionManager {
	return &PgxTransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

func (m *PgxTransactionManager) RunInInvoiceTx(ctx context.Context, invoiceID string, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer m.Rollback(ctx, tx) // no-op once committed

	// A missing row is not an error here; FindInvoiceForUpdate reports it to fn.
	var locked string
	err = tx.QueryRow(ctx, `SELECT invoice_id FROM invoices WHERE invoice_id = $1 FOR UPDATE;`, invoiceID).Scan(&locked)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lock invoice %s: %w", invoiceID, err)
	}

	if err := fn(ctx, &pgxLedgerTx{q: tx, invoiceID: invoiceID}); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}

// pgxLedgerTx binds the statement helpers to one transaction.
type pgxLedgerTx struct {
	q         querier
	invoiceID string
}

var _ portsrepo.LedgerTx = (*pgxLedgerTx)(nil)

func (t *pgxLedgerTx) checkLocked(invoiceID string) error {
	if invoiceID != t.invoiceID {
		return fmt.Errorf("invoice %s is not locked by this unit of work (holding %s)", invoiceID, t.invoiceID)
	}
	return nil
}

func (t *pgxLedgerTx) FindInvoiceForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if err := t.checkLocked(invoiceID); err != nil {
		return nil, err
	}
	return findInvoice(ctx, t.q, invoiceID, true)
}

func (t *pgxLedgerTx) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	if err := t.checkLocked(invoice.InvoiceID); err != nil {
		return err
	}
	return updateInvoice(ctx, t.q, invoice)
}

func (t *pgxLedgerTx) SavePayment(ctx context.Context, payment domain.Payment) error {
	if err := t.checkLocked(payment.InvoiceID); err != nil {
		return err
	}
	return insertPayment(ctx, t.q, payment)
}

func (t *pgxLedgerTx) FindAdjustmentForUpdate(ctx context.Context, adjustmentID string) (*domain.AdjustmentRequest, error) {
	req, err := findAdjustment(ctx, t.q, adjustmentID, true)
	if err != nil {
		return nil, err
	}
	if err := t.checkLocked(req.InvoiceID); err != nil {
		return nil, err
	}
	return req, nil
}

func (t *pgxLedgerTx) UpdateAdjustment(ctx context.Context, req domain.AdjustmentRequest) error {
	if err := t.checkLocked(req.InvoiceID); err != nil {
		return err
	}
	return updateAdjustment(ctx, t.q, req)
}

func (t *pgxLedgerTx) SaveCreditNote(ctx context.Context, note domain.CreditNote) error {
	if err := t.checkLocked(note.InvoiceID); err != nil {
		return err
	}
	return insertCreditNote(ctx, t.q, note)
}
