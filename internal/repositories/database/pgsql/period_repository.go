package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	"github.com/unifin/campus_finance_app/internal/models"
	"github.com/unifin/campus_finance_app/internal/utils/mapping"
)

const periodColumns = `period_id, month, year, status, locked_by, locked_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxPeriodRepository struct {
	q Querier
}

var _ portsrepo.PeriodRepository = (*PgxPeriodRepository)(nil)

func scanPeriod(row pgx.Row) (models.AccountingPeriod, error) {
	var m models.AccountingPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.Month,
		&m.Year,
		&m.Status,
		&m.LockedBy,
		&m.LockedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePeriod inserts a new accounting period. The table carries a unique
// constraint on (month, year); a violation surfaces as ErrDuplicate.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	m := mapping.ToModelPeriod(period)

	query := `
		INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.q.Exec(ctx, query,
		m.PeriodID,
		m.Month,
		m.Year,
		m.Status,
		m.LockedBy,
		m.LockedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return fmt.Errorf("%w: period %02d/%d already exists", apperrors.ErrDuplicate, m.Month, m.Year)
		}
		return fmt.Errorf("failed to save period %s: %w", m.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves a period by its ID.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE period_id = $1;`

	m, err := scanPeriod(r.q.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("period %s: %w", periodID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}

	period := mapping.ToDomainPeriod(m)
	return &period, nil
}

// FindPeriodByMonthYear retrieves the period covering one calendar month.
func (r *PgxPeriodRepository) FindPeriodByMonthYear(ctx context.Context, month int, year int) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE month = $1 AND year = $2;`

	m, err := scanPeriod(r.q.QueryRow(ctx, query, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("period %02d/%d: %w", month, year, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find period %02d/%d: %w", month, year, err)
	}

	period := mapping.ToDomainPeriod(m)
	return &period, nil
}

// UpdatePeriodStatus flips a period between OPEN and LOCKED.
func (r *PgxPeriodRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, lockedBy *string, lockedAt *time.Time, userID string, now time.Time) error {
	query := `
		UPDATE accounting_periods
		SET status = $2, locked_by = $3, locked_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE period_id = $1;
	`
	tag, err := r.q.Exec(ctx, query, periodID, string(status), lockedBy, lockedAt, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update period %s status: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("period %s: %w", periodID, apperrors.ErrNotFound)
	}
	return nil
}

// ListPeriods retrieves every period, newest first.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods ORDER BY year DESC, month DESC;`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	var ms []models.AccountingPeriod
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period rows: %w", err)
	}

	return mapping.ToDomainPeriodSlice(ms), nil
}
