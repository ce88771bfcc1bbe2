package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ReportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure ReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

func (r *ReportingRepository) sumInRange(ctx context.Context, table, amountCol, extraClause, dateCol string, rng domain.DateRange) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(` + amountCol + `), 0) FROM ` + table + ` WHERE 1=1`
	if extraClause != "" {
		query += ` AND ` + extraClause
	}
	args := []interface{}{}
	if !rng.From.IsZero() {
		args = append(args, rng.From)
		query += ` AND ` + dateCol + ` >= $` + strconv.Itoa(len(args))
	}
	if !rng.To.IsZero() {
		args = append(args, rng.To)
		query += ` AND ` + dateCol + ` <= $` + strconv.Itoa(len(args))
	}
	query += `;`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s: %w", table, err)
	}
	return total, nil
}

func (r *ReportingRepository) SumDepositsInRange(ctx context.Context, rng domain.DateRange) (decimal.Decimal, error) {
	return r.sumInRange(ctx, "deposits", "amount", "", "created_at", rng)
}

func (r *ReportingRepository) SumWithdrawalsInRange(ctx context.Context, rng domain.DateRange) (decimal.Decimal, error) {
	return r.sumInRange(ctx, "withdrawals", "amount", "status <> 'REJECTED'", "created_at", rng)
}

func (r *ReportingRepository) SumRunningInvestmentsInRange(ctx context.Context, rng domain.DateRange) (decimal.Decimal, error) {
	return r.sumInRange(ctx, "investments", "principal", "status = 'RUNNING'", "opened_at", rng)
}

func (r *ReportingRepository) GetPlatformTotals(ctx context.Context, rng domain.DateRange) (*domain.PlatformTotals, error) {
	deposits, err := r.SumDepositsInRange(ctx, rng)
	if err != nil {
		return nil, err
	}
	withdrawals, err := r.SumWithdrawalsInRange(ctx, rng)
	if err != nil {
		return nil, err
	}
	running, err := r.SumRunningInvestmentsInRange(ctx, rng)
	if err != nil {
		return nil, err
	}
	profits, err := r.sumInRange(ctx, "profits", "amount", "", "created_at", rng)
	if err != nil {
		return nil, err
	}

	return &domain.PlatformTotals{
		TotalDeposits:         deposits,
		TotalWithdrawals:      withdrawals,
		TotalRunningPrincipal: running,
		TotalProfitsPaid:      profits,
		PlatformBalance:       deposits.Sub(withdrawals),
	}, nil
}

func (r *ReportingRepository) CountUsers(ctx context.Context, activeOnly *bool, rng domain.DateRange) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE 1=1`
	args := []interface{}{}
	if activeOnly != nil {
		args = append(args, *activeOnly)
		query += ` AND active = $` + strconv.Itoa(len(args))
	}
	if !rng.From.IsZero() {
		args = append(args, rng.From)
		query += ` AND created_at >= $` + strconv.Itoa(len(args))
	}
	if !rng.To.IsZero() {
		args = append(args, rng.To)
		query += ` AND created_at <= $` + strconv.Itoa(len(args))
	}
	query += `;`

	var count int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
