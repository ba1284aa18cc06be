package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/edu_billing_ledger/internal/models"
	"github.com/SscSPs/edu_billing_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adjustmentColumns = `adjustment_id, invoice_id, type, reason, discount_scope,
	discount_amount, discount_percent, refund_amount, refund_application, status,
	requested_by, requested_at, approved_by, approved_at, rejected_by, rejected_at, decision_note`

type PgxAdjustmentRepository struct {
	BaseRepository
}

// newPgxAdjustmentRepository creates a new repository for adjustment requests.
func newPgxAdjustmentRepository(pool *pgxpool.Pool) portsrepo.AdjustmentRepositoryFacade {
	return &PgxAdjustmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdjustmentRepositoryFacade = (*PgxAdjustmentRepository)(nil)

func scanAdjustment(row pgx.Row) (models.AdjustmentRequest, error) {
	var m models.AdjustmentRequest
	err := row.Scan(
		&m.AdjustmentID,
		&m.InvoiceID,
		&m.Type,
		&m.Reason,
		&m.DiscountScope,
		&m.DiscountAmount,
		&m.DiscountPercent,
		&m.RefundAmount,
		&m.RefundApplication,
		&m.Status,
		&m.RequestedBy,
		&m.RequestedAt,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectedBy,
		&m.RejectedAt,
		&m.DecisionNote,
	)
	return m, err
}

func (r *PgxAdjustmentRepository) SaveAdjustment(ctx context.Context, req domain.AdjustmentRequest) error {
	m := mapping.ToModelAdjustment(req)
	query := `INSERT INTO adjustment_requests (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`

	_, err := r.Pool.Exec(ctx, query,
		m.AdjustmentID,
		m.InvoiceID,
		m.Type,
		m.Reason,
		m.DiscountScope,
		m.DiscountAmount,
		m.DiscountPercent,
		m.RefundAmount,
		m.RefundApplication,
		m.Status,
		m.RequestedBy,
		m.RequestedAt,
		m.ApprovedBy,
		m.ApprovedAt,
		m.RejectedBy,
		m.RejectedAt,
		m.DecisionNote,
	)
	if err != nil {
		return insertError(err, "adjustment", m.AdjustmentID)
	}
	return nil
}

func (r *PgxAdjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.AdjustmentRequest, error) {
	return findAdjustment(ctx, r.Pool, adjustmentID, false)
}

func findAdjustment(ctx context.Context, q querier, adjustmentID string, forUpdate bool) (*domain.AdjustmentRequest, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM adjustment_requests WHERE adjustment_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	m, err := scanAdjustment(q.QueryRow(ctx, query, adjustmentID))
	if err != nil {
		return nil, notFound(err, "adjustment", adjustmentID)
	}
	req := mapping.ToDomainAdjustment(m)
	return &req, nil
}

func (r *PgxAdjustmentRepository) FindAdjustmentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.AdjustmentRequest, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM adjustment_requests WHERE invoice_id = $1 ORDER BY seq ASC;`
	return r.queryAdjustments(ctx, query, invoiceID)
}

func (r *PgxAdjustmentRepository) ListAdjustments(ctx context.Context, status *domain.AdjustmentStatus) ([]domain.AdjustmentRequest, error) {
	if status == nil {
		return r.queryAdjustments(ctx, `SELECT `+adjustmentColumns+` FROM adjustment_requests ORDER BY seq ASC;`)
	}
	query := `SELECT ` + adjustmentColumns + ` FROM adjustment_requests WHERE status = $1 ORDER BY seq ASC;`
	return r.queryAdjustments(ctx, query, string(*status))
}

func (r *PgxAdjustmentRepository) queryAdjustments(ctx context.Context, query string, args ...any) ([]domain.AdjustmentRequest, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list adjustment requests", err)
	}
	defer rows.Close()

	reqs := make([]domain.AdjustmentRequest, 0)
	for rows.Next() {
		m, err := scanAdjustment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan adjustment row", err)
		}
		reqs = append(reqs, mapping.ToDomainAdjustment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating adjustment rows", err)
	}
	return reqs, nil
}

func updateAdjustment(ctx context.Context, q querier, req domain.AdjustmentRequest) error {
	m := mapping.ToModelAdjustment(req)
	query := `
		UPDATE adjustment_requests
		SET status = $2, approved_by = $3, approved_at = $4, rejected_by = $5, rejected_at = $6, decision_note = $7
		WHERE adjustment_id = $1;
	`
	tag, err := q.Exec(ctx, query, m.AdjustmentID, m.Status, m.ApprovedBy, m.ApprovedAt, m.RejectedBy, m.RejectedAt, m.DecisionNote)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update adjustment "+m.AdjustmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update adjustment %s: %w", m.AdjustmentID, apperrors.ErrNotFound)
	}
	return nil
}
