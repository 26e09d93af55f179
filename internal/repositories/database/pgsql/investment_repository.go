package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	"github.com/unifin/campus_finance_app/internal/models"
	"github.com/unifin/campus_finance_app/internal/utils/mapping"
)

type PgxInvestmentRepository struct {
	q Querier
}

var _ portsrepo.InvestmentRepository = (*PgxInvestmentRepository)(nil)

// FindInvestmentByID retrieves an investment. The investment schema is owned
// by the treasury module.
func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	query := `
		SELECT investment_id, name, principal, maturity_amount, status, placed_tx_id, matured_tx_id, created_at, created_by, last_updated_at, last_updated_by
		FROM investments
		WHERE investment_id = $1;
	`
	var m models.Investment
	err := r.q.QueryRow(ctx, query, investmentID).Scan(
		&m.InvestmentID,
		&m.Name,
		&m.Principal,
		&m.MaturityAmount,
		&m.Status,
		&m.PlacedTxID,
		&m.MaturedTxID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("investment %s: %w", investmentID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find investment %s: %w", investmentID, err)
	}

	investment := mapping.ToDomainInvestment(m)
	return &investment, nil
}

// UpdateInvestmentPlacement sets or clears the placement transaction link.
func (r *PgxInvestmentRepository) UpdateInvestmentPlacement(ctx context.Context, investmentID string, placedTxID *string, userID string, now time.Time) error {
	query := `
		UPDATE investments
		SET placed_tx_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE investment_id = $1;
	`
	tag, err := r.q.Exec(ctx, query, investmentID, placedTxID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update investment %s placement: %w", investmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("investment %s: %w", investmentID, apperrors.ErrNotFound)
	}
	return nil
}

// UpdateInvestmentMaturity writes back maturity state, or resets it to
// ACTIVE with the maturity fields cleared when a return is reversed.
func (r *PgxInvestmentRepository) UpdateInvestmentMaturity(ctx context.Context, investmentID string, status domain.InvestmentStatus, maturityAmount *decimal.Decimal, maturedTxID *string, userID string, now time.Time) error {
	query := `
		UPDATE investments
		SET status = $2, maturity_amount = $3, matured_tx_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE investment_id = $1;
	`
	tag, err := r.q.Exec(ctx, query, investmentID, string(status), maturityAmount, maturedTxID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update investment %s maturity: %w", investmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("investment %s: %w", investmentID, apperrors.ErrNotFound)
	}
	return nil
}
