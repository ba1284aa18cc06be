package pgsql

import (
	"context"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/edu_billing_ledger/internal/models"
	"github.com/SscSPs/edu_billing_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentReader {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentReader = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, invoice_id, amount, method, reference, paid_at, recorded_by, created_at
		FROM payments
		WHERE invoice_id = $1
		ORDER BY seq ASC;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payments for invoice "+invoiceID, err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.InvoiceID, &m.Amount, &m.Method, &m.Reference, &m.PaidAt, &m.RecordedBy, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}

func insertPayment(ctx context.Context, q querier, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (payment_id, invoice_id, amount, method, reference, paid_at, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := q.Exec(ctx, query, m.PaymentID, m.InvoiceID, m.Amount, m.Method, m.Reference, m.PaidAt, m.RecordedBy, m.CreatedAt); err != nil {
		return insertError(err, "payment", m.PaymentID)
	}
	return nil
}
