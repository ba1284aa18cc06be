package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/edu_billing_ledger/internal/models"
	"github.com/SscSPs/edu_billing_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const invoiceColumns = `invoice_id, term_id, payer_type, payer_id, payer_name, description,
	gross_amount, discount_amount, net_amount, amount_paid, balance, due_date, status,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.TermID,
		&m.PayerType,
		&m.PayerID,
		&m.PayerName,
		&m.Description,
		&m.GrossAmount,
		&m.DiscountAmount,
		&m.NetAmount,
		&m.AmountPaid,
		&m.Balance,
		&m.DueDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`

	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.TermID,
		m.PayerType,
		m.PayerID,
		m.PayerName,
		m.Description,
		m.GrossAmount,
		m.DiscountAmount,
		m.NetAmount,
		m.AmountPaid,
		m.Balance,
		m.DueDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return insertError(err, "invoice", m.InvoiceID)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return findInvoice(ctx, r.Pool, invoiceID, false)
}

func findInvoice(ctx context.Context, q querier, invoiceID string, forUpdate bool) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	m, err := scanInvoice(q.QueryRow(ctx, query, invoiceID))
	if err != nil {
		return nil, notFound(err, "invoice", invoiceID)
	}
	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	var conditions []string
	var args []any
	if filter.TermID != nil {
		args = append(args, *filter.TermID)
		conditions = append(conditions, fmt.Sprintf("term_id = $%d", len(args)))
	}
	if filter.PayerType != nil {
		args = append(args, string(*filter.PayerType))
		conditions = append(conditions, fmt.Sprintf("payer_type = $%d", len(args)))
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY seq ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoices", err)
	}
	defer rows.Close()

	var result []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return mapping.ToDomainInvoiceSlice(result), nil
}

func updateInvoice(ctx context.Context, q querier, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET discount_amount = $2, net_amount = $3, amount_paid = $4, balance = $5,
		    status = $6, last_updated_at = $7, last_updated_by = $8
		WHERE invoice_id = $1;
	`
	tag, err := q.Exec(ctx, query,
		m.InvoiceID,
		m.DiscountAmount,
		m.NetAmount,
		m.AmountPaid,
		m.Balance,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+m.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update invoice %s: %w", m.InvoiceID, apperrors.ErrNotFound)
	}
	return nil
}
