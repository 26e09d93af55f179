package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	q Querier
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextReceiptNumber returns the next receipt number. Backed by a database
// sequence, so concurrent payments never collide and numbers survive
// restarts. Gaps from aborted units of work are acceptable.
func (r *PgxSequenceRepository) NextReceiptNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('receipt_number_seq');`).Scan(&n); err != nil {
		return "", fmt.Errorf("failed to get next receipt number: %w", err)
	}
	return fmt.Sprintf("RCP-%06d", n), nil
}

// NextRefundNumber returns the next refund number.
func (r *PgxSequenceRepository) NextRefundNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('refund_number_seq');`).Scan(&n); err != nil {
		return "", fmt.Errorf("failed to get next refund number: %w", err)
	}
	return fmt.Sprintf("RFD-%06d", n), nil
}
