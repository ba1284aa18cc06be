package pgsql

import (
	"context"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/edu_billing_ledger/internal/models"
	"github.com/SscSPs/edu_billing_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const creditNoteColumns = `credit_note_id, invoice_id, adjustment_id, amount, reason, applied_as, status,
	requested_by, requested_at, approved_by, approved_at`

type PgxCreditNoteRepository struct {
	BaseRepository
}

// newPgxCreditNoteRepository creates a new repository for credit notes.
func newPgxCreditNoteRepository(pool *pgxpool.Pool) portsrepo.CreditNoteReader {
	return &PgxCreditNoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CreditNoteReader = (*PgxCreditNoteRepository)(nil)

func scanCreditNote(row pgx.Row) (models.CreditNote, error) {
	var m models.CreditNote
	err := row.Scan(
		&m.CreditNoteID,
		&m.InvoiceID,
		&m.AdjustmentID,
		&m.Amount,
		&m.Reason,
		&m.AppliedAs,
		&m.Status,
		&m.RequestedBy,
		&m.RequestedAt,
		&m.ApprovedBy,
		&m.ApprovedAt,
	)
	return m, err
}

func (r *PgxCreditNoteRepository) FindCreditNoteByID(ctx context.Context, creditNoteID string) (*domain.CreditNote, error) {
	query := `SELECT ` + creditNoteColumns + ` FROM credit_notes WHERE credit_note_id = $1;`
	m, err := scanCreditNote(r.Pool.QueryRow(ctx, query, creditNoteID))
	if err != nil {
		return nil, notFound(err, "credit note", creditNoteID)
	}
	note := mapping.ToDomainCreditNote(m)
	return &note, nil
}

func (r *PgxCreditNoteRepository) FindCreditNotesByInvoiceID(ctx context.Context, invoiceID string) ([]domain.CreditNote, error) {
	query := `SELECT ` + creditNoteColumns + ` FROM credit_notes WHERE invoice_id = $1 ORDER BY seq ASC;`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list credit notes for invoice "+invoiceID, err)
	}
	defer rows.Close()

	notes := make([]domain.CreditNote, 0)
	for rows.Next() {
		m, err := scanCreditNote(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan credit note row", err)
		}
		notes = append(notes, mapping.ToDomainCreditNote(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating credit note rows", err)
	}
	return notes, nil
}

func insertCreditNote(ctx context.Context, q querier, note domain.CreditNote) error {
	m := mapping.ToModelCreditNote(note)
	query := `INSERT INTO credit_notes (` + creditNoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := q.Exec(ctx, query,
		m.CreditNoteID,
		m.InvoiceID,
		m.AdjustmentID,
		m.Amount,
		m.Reason,
		m.AppliedAs,
		m.Status,
		m.RequestedBy,
		m.RequestedAt,
		m.ApprovedBy,
		m.ApprovedAt,
	)
	if err != nil {
		return insertError(err, "credit note", m.CreditNoteID)
	}
	return nil
}
