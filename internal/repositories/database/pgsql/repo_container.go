package pgsql

import (
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:    newPgxInvoiceRepository(dbPool),
		PaymentRepo:    newPgxPaymentRepository(dbPool),
		AdjustmentRepo: newPgxAdjustmentRepository(dbPool),
		CreditNoteRepo: newPgxCreditNoteRepository(dbPool),
		TxManager:      newPgxTransactionManager(dbPool),
	}
}
