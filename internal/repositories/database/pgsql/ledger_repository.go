package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/models"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/utils/mapping"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// lockBalanceForUpdate returns the user's current balance with the cash flow
// row locked for the remainder of the transaction. The row is created lazily
// on first use, so every balance mutation for a user serializes on it.
func (r *PgxLedgerRepository) lockBalanceForUpdate(ctx context.Context, tx pgx.Tx, userID string) (decimal.Decimal, error) {
	insertQuery := `
		INSERT INTO cash_flows (user_id, account_balance, last_updated_at, last_updated_by)
		VALUES ($1, 0, NOW(), $1)
		ON CONFLICT (user_id) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, insertQuery, userID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation, unknown user
			return decimal.Zero, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to ensure cash flow row for user %s: %w", userID, err)
	}

	var balance decimal.Decimal
	lockQuery := `SELECT account_balance FROM cash_flows WHERE user_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, userID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to lock cash flow row for user %s: %w", userID, err)
	}
	return balance, nil
}

// setBalanceInTx writes the new balance to the locked cash flow row.
func (r *PgxLedgerRepository) setBalanceInTx(ctx context.Context, tx pgx.Tx, userID string, newBalance decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE cash_flows SET account_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, userID, newBalance, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update balance for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cash flow row vanished for user %s: %w", userID, apperrors.ErrInternal)
	}
	return nil
}

func (r *PgxLedgerRepository) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `SELECT account_balance FROM cash_flows WHERE user_id = $1;`
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No ledger activity yet; distinguish an unknown user from a
			// zero balance.
			var exists bool
			checkErr := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1);`, userID).Scan(&exists)
			if checkErr != nil {
				return decimal.Zero, fmt.Errorf("failed to check user %s: %w", userID, checkErr)
			}
			if !exists {
				return decimal.Zero, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
			}
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get balance for user %s: %w", userID, err)
	}
	return balance, nil
}

func (r *PgxLedgerRepository) RecomputeBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	// Deposits minus non-rejected withdrawals minus running principals plus
	// profits. A completed investment is neutral on principal (debited at
	// open, credited back at completion); only its profit remains.
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM deposits WHERE user_id = $1), 0)
			- COALESCE((SELECT SUM(amount) FROM withdrawals WHERE user_id = $1 AND status <> 'REJECTED'), 0)
			- COALESCE((SELECT SUM(principal) FROM investments WHERE user_id = $1 AND status = 'RUNNING'), 0)
			+ COALESCE((SELECT SUM(amount) FROM profits WHERE user_id = $1), 0);
	`
	var derived decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&derived); err != nil {
		return decimal.Zero, fmt.Errorf("failed to recompute balance for user %s: %w", userID, err)
	}
	return derived, nil
}

func (r *PgxLedgerRepository) ApplyDelta(ctx context.Context, userID string, delta decimal.Decimal, reason domain.DeltaReason) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	balance, err := r.lockBalanceForUpdate(ctx, tx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	newBalance := balance.Add(delta)
	if newBalance.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s of %s exceeds balance %s: %w", reason, delta.Abs(), balance, apperrors.ErrInsufficientFunds)
	}

	if err := r.setBalanceInTx(ctx, tx, userID, newBalance, userID, time.Now()); err != nil {
		return decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// -- Deposits --

func (r *PgxLedgerRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	balance, err := r.lockBalanceForUpdate(ctx, tx, deposit.UserID)
	if err != nil {
		return decimal.Zero, err
	}

	m := mapping.ToModelDeposit(deposit)
	insertQuery := `
		INSERT INTO deposits (deposit_id, user_id, amount, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, insertQuery, m.DepositID, m.UserID, m.Amount, m.CreatedAt); err != nil {
		return decimal.Zero, fmt.Errorf("failed to insert deposit %s: %w", deposit.DepositID, err)
	}

	newBalance := balance.Add(deposit.Amount)
	if err := r.setBalanceInTx(ctx, tx, deposit.UserID, newBalance, deposit.UserID, deposit.CreatedAt); err != nil {
		return decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

func (r *PgxLedgerRepository) ListDeposits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Deposit, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT deposit_id, user_id, amount, created_at
		FROM deposits
		WHERE user_id = $1
	`
	orderByClause := `ORDER BY created_at DESC, deposit_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (created_at, deposit_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
		query := baseQuery + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query deposits for user %s: %w", userID, err)
	}
	defer rows.Close()

	var deposits []models.Deposit
	for rows.Next() {
		var m models.Deposit
		if err := rows.Scan(&m.DepositID, &m.UserID, &m.Amount, &m.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan deposit row: %w", err)
		}
		deposits = append(deposits, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating deposit rows: %w", err)
	}

	var newToken *string
	if len(deposits) > limit {
		deposits = deposits[:limit]
		last := deposits[len(deposits)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.DepositID)
		newToken = &token
	}

	return mapping.ToDomainDepositSlice(deposits), newToken, nil
}

func (r *PgxLedgerRepository) SumDeposits(ctx context.Context, userID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE user_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum deposits for user %s: %w", userID, err)
	}
	return total, nil
}

// -- Withdrawals --

func (r *PgxLedgerRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal, request domain.WithdrawalRequest) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	balance, err := r.lockBalanceForUpdate(ctx, tx, withdrawal.UserID)
	if err != nil {
		return decimal.Zero, err
	}

	newBalance := balance.Sub(withdrawal.Amount)
	if newBalance.IsNegative() {
		return decimal.Zero, fmt.Errorf("withdrawal of %s exceeds balance %s: %w", withdrawal.Amount, balance, apperrors.ErrInsufficientFunds)
	}

	mw := mapping.ToModelWithdrawal(withdrawal)
	mr := mapping.ToModelWithdrawalRequest(request)

	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO withdrawals (withdrawal_id, user_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, mw.WithdrawalID, mw.UserID, mw.Amount, mw.Status, mw.CreatedAt, mw.UpdatedAt)
	batch.Queue(`
		INSERT INTO withdrawal_requests (request_id, withdrawal_id, user_id, amount, status, gateway_reference, decided_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, mr.RequestID, mr.WithdrawalID, mr.UserID, mr.Amount, mr.Status, mr.GatewayReference, mr.DecidedBy, mr.CreatedAt, mr.UpdatedAt)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to insert withdrawal %s: %w", withdrawal.WithdrawalID, err)
	}

	if err := r.setBalanceInTx(ctx, tx, withdrawal.UserID, newBalance, withdrawal.UserID, withdrawal.CreatedAt); err != nil {
		return decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

func (r *PgxLedgerRepository) ApproveWithdrawalRequest(ctx context.Context, requestID string, adminID string, gatewayReference string, decidedAt time.Time) (*domain.WithdrawalRequest, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	request, err := r.transitionRequestInTx(ctx, tx, requestID, adminID, domain.WithdrawalApproved, gatewayReference, decidedAt)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *PgxLedgerRepository) RejectWithdrawalRequest(ctx context.Context, requestID string, adminID string, decidedAt time.Time) (*domain.WithdrawalRequest, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	request, err := r.transitionRequestInTx(ctx, tx, requestID, adminID, domain.WithdrawalRejected, "", decidedAt)
	if err != nil {
		return nil, err
	}

	// Rejection returns the debited amount to the user.
	balance, err := r.lockBalanceForUpdate(ctx, tx, request.UserID)
	if err != nil {
		return nil, err
	}
	if err := r.setBalanceInTx(ctx, tx, request.UserID, balance.Add(request.Amount), adminID, decidedAt); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return request, nil
}

// transitionRequestInTx moves a PENDING request and its withdrawal to the
// given status. The status predicate makes the transition a compare-and-swap;
// zero affected rows means the request was not PENDING.
func (r *PgxLedgerRepository) transitionRequestInTx(ctx context.Context, tx pgx.Tx, requestID string, adminID string, status domain.WithdrawalStatus, gatewayReference string, decidedAt time.Time) (*domain.WithdrawalRequest, error) {
	query := `
		UPDATE withdrawal_requests
		SET status = $2, decided_by = $3, gateway_reference = NULLIF($4, ''), updated_at = $5
		WHERE request_id = $1 AND status = 'PENDING'
		RETURNING request_id, withdrawal_id, user_id, amount, status, gateway_reference, decided_by, created_at, updated_at;
	`
	var m models.WithdrawalRequest
	err := tx.QueryRow(ctx, query, requestID, string(status), adminID, gatewayReference, decidedAt).Scan(
		&m.RequestID, &m.WithdrawalID, &m.UserID, &m.Amount, &m.Status, &m.GatewayReference, &m.DecidedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the request does not exist or it was already decided.
			var exists bool
			checkErr := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM withdrawal_requests WHERE request_id = $1);`, requestID).Scan(&exists)
			if checkErr != nil {
				return nil, fmt.Errorf("failed to check withdrawal request %s: %w", requestID, checkErr)
			}
			if !exists {
				return nil, fmt.Errorf("withdrawal request %s: %w", requestID, apperrors.ErrNotFound)
			}
			return nil, fmt.Errorf("withdrawal request %s already decided: %w", requestID, apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to transition withdrawal request %s: %w", requestID, err)
	}

	withdrawalQuery := `UPDATE withdrawals SET status = $2, updated_at = $3 WHERE withdrawal_id = $1;`
	if _, err := tx.Exec(ctx, withdrawalQuery, m.WithdrawalID, string(status), decidedAt); err != nil {
		return nil, fmt.Errorf("failed to transition withdrawal %s: %w", m.WithdrawalID, err)
	}

	d := mapping.ToDomainWithdrawalRequest(m)
	return &d, nil
}

func (r *PgxLedgerRepository) FindWithdrawalRequestByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	query := `
		SELECT request_id, withdrawal_id, user_id, amount, status, gateway_reference, decided_by, created_at, updated_at
		FROM withdrawal_requests
		WHERE request_id = $1;
	`
	var m models.WithdrawalRequest
	err := r.Pool.QueryRow(ctx, query, requestID).Scan(
		&m.RequestID, &m.WithdrawalID, &m.UserID, &m.Amount, &m.Status, &m.GatewayReference, &m.DecidedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find withdrawal request %s: %w", requestID, err)
	}
	d := mapping.ToDomainWithdrawalRequest(m)
	return &d, nil
}

func (r *PgxLedgerRepository) ListWithdrawals(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Withdrawal, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT withdrawal_id, user_id, amount, status, created_at, updated_at
		FROM withdrawals
		WHERE user_id = $1
	`
	orderByClause := `ORDER BY created_at DESC, withdrawal_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (created_at, withdrawal_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
		query := baseQuery + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query withdrawals for user %s: %w", userID, err)
	}
	defer rows.Close()

	var withdrawals []models.Withdrawal
	for rows.Next() {
		var m models.Withdrawal
		if err := rows.Scan(&m.WithdrawalID, &m.UserID, &m.Amount, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan withdrawal row: %w", err)
		}
		withdrawals = append(withdrawals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating withdrawal rows: %w", err)
	}

	var newToken *string
	if len(withdrawals) > limit {
		withdrawals = withdrawals[:limit]
		last := withdrawals[len(withdrawals)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.WithdrawalID)
		newToken = &token
	}

	return mapping.ToDomainWithdrawalSlice(withdrawals), newToken, nil
}

func (r *PgxLedgerRepository) ListWithdrawalRequests(ctx context.Context, status domain.WithdrawalStatus, userID string, rng domain.DateRange, limit int, nextToken *string) ([]domain.WithdrawalRequest, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `
		SELECT request_id, withdrawal_id, user_id, amount, status, gateway_reference, decided_by, created_at, updated_at
		FROM withdrawal_requests
		WHERE 1=1
	`
	args := []interface{}{}

	if status != "" {
		args = append(args, string(status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if userID != "" {
		args = append(args, userID)
		query += ` AND user_id = $` + strconv.Itoa(len(args))
	}
	if !rng.From.IsZero() {
		args = append(args, rng.From)
		query += ` AND created_at >= $` + strconv.Itoa(len(args))
	}
	if !rng.To.IsZero() {
		args = append(args, rng.To)
		query += ` AND created_at <= $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt, lastID)
		query += ` AND (created_at, request_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY created_at DESC, request_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query withdrawal requests: %w", err)
	}
	defer rows.Close()

	var requests []models.WithdrawalRequest
	for rows.Next() {
		var m models.WithdrawalRequest
		if err := rows.Scan(&m.RequestID, &m.WithdrawalID, &m.UserID, &m.Amount, &m.Status, &m.GatewayReference, &m.DecidedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan withdrawal request row: %w", err)
		}
		requests = append(requests, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating withdrawal request rows: %w", err)
	}

	var newToken *string
	if len(requests) > limit {
		requests = requests[:limit]
		last := requests[len(requests)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.RequestID)
		newToken = &token
	}

	return mapping.ToDomainWithdrawalRequestSlice(requests), newToken, nil
}

func (r *PgxLedgerRepository) SumWithdrawals(ctx context.Context, userID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE user_id = $1 AND status <> 'REJECTED';`
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum withdrawals for user %s: %w", userID, err)
	}
	return total, nil
}

// -- Investments --

func (r *PgxLedgerRepository) SaveInvestment(ctx context.Context, investment domain.Investment) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	balance, err := r.lockBalanceForUpdate(ctx, tx, investment.UserID)
	if err != nil {
		return decimal.Zero, err
	}

	newBalance := balance.Sub(investment.Principal)
	if newBalance.IsNegative() {
		return decimal.Zero, fmt.Errorf("principal %s exceeds balance %s: %w", investment.Principal, balance, apperrors.ErrInsufficientFunds)
	}

	m := mapping.ToModelInvestment(investment)
	insertQuery := `
		INSERT INTO investments (investment_id, user_id, principal, duration_days, interest_rate, status, opened_at, maturity_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	if _, err := tx.Exec(ctx, insertQuery,
		m.InvestmentID, m.UserID, m.Principal, m.DurationDays, m.InterestRate, m.Status, m.OpenedAt, m.MaturityAt, m.CompletedAt,
	); err != nil {
		return decimal.Zero, fmt.Errorf("failed to insert investment %s: %w", investment.InvestmentID, err)
	}

	if err := r.setBalanceInTx(ctx, tx, investment.UserID, newBalance, investment.UserID, investment.OpenedAt); err != nil {
		return decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

func (r *PgxLedgerRepository) CompleteInvestment(ctx context.Context, investment domain.Investment, profit domain.Profit) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	// (a) Compare-and-swap the status. Zero affected rows means another
	// sweep already resolved this investment.
	casQuery := `
		UPDATE investments SET status = 'COMPLETED', completed_at = $2
		WHERE investment_id = $1 AND status = 'RUNNING';
	`
	cmdTag, err := tx.Exec(ctx, casQuery, investment.InvestmentID, profit.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to complete investment %s: %w", investment.InvestmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return false, nil
	}

	// (b) Insert the single profit record. The unique index on
	// investment_id backstops the CAS above.
	mp := mapping.ToModelProfit(profit)
	profitQuery := `
		INSERT INTO profits (profit_id, investment_id, user_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := tx.Exec(ctx, profitQuery, mp.ProfitID, mp.InvestmentID, mp.UserID, mp.Amount, mp.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return false, fmt.Errorf("profit already recorded for investment %s: %w", investment.InvestmentID, apperrors.ErrInvariantViolation)
		}
		return false, fmt.Errorf("failed to insert profit for investment %s: %w", investment.InvestmentID, err)
	}

	// (c) Credit principal plus profit back to the balance.
	balance, err := r.lockBalanceForUpdate(ctx, tx, investment.UserID)
	if err != nil {
		return false, err
	}
	payout := investment.Principal.Add(profit.Amount)
	if err := r.setBalanceInTx(ctx, tx, investment.UserID, balance.Add(payout), investment.UserID, profit.CreatedAt); err != nil {
		return false, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *PgxLedgerRepository) ListMaturedRunning(ctx context.Context, asOf time.Time, limit int) ([]domain.Investment, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT investment_id, user_id, principal, duration_days, interest_rate, status, opened_at, maturity_at, completed_at
		FROM investments
		WHERE status = 'RUNNING' AND maturity_at <= $1
		ORDER BY maturity_at ASC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matured investments: %w", err)
	}
	defer rows.Close()

	investments, err := collectInvestments(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainInvestmentSlice(investments), nil
}

func (r *PgxLedgerRepository) ListInvestments(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Investment, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT investment_id, user_id, principal, duration_days, interest_rate, status, opened_at, maturity_at, completed_at
		FROM investments
		WHERE user_id = $1
	`
	orderByClause := `ORDER BY opened_at DESC, investment_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		lastOpenedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (opened_at, investment_id) < ($2, $3)`
		args = append(args, lastOpenedAt, lastID)
		query := baseQuery + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query investments for user %s: %w", userID, err)
	}
	defer rows.Close()

	investments, err := collectInvestments(rows)
	if err != nil {
		return nil, nil, err
	}

	var newToken *string
	if len(investments) > limit {
		investments = investments[:limit]
		last := investments[len(investments)-1]
		token := pagination.EncodeToken(last.OpenedAt, last.InvestmentID)
		newToken = &token
	}

	return mapping.ToDomainInvestmentSlice(investments), newToken, nil
}

func collectInvestments(rows pgx.Rows) ([]models.Investment, error) {
	var investments []models.Investment
	for rows.Next() {
		var m models.Investment
		if err := rows.Scan(&m.InvestmentID, &m.UserID, &m.Principal, &m.DurationDays, &m.InterestRate, &m.Status, &m.OpenedAt, &m.MaturityAt, &m.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", err)
		}
		investments = append(investments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment rows: %w", err)
	}
	return investments, nil
}

func (r *PgxLedgerRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	query := `
		SELECT investment_id, user_id, principal, duration_days, interest_rate, status, opened_at, maturity_at, completed_at
		FROM investments
		WHERE investment_id = $1;
	`
	var m models.Investment
	err := r.Pool.QueryRow(ctx, query, investmentID).Scan(
		&m.InvestmentID, &m.UserID, &m.Principal, &m.DurationDays, &m.InterestRate, &m.Status, &m.OpenedAt, &m.MaturityAt, &m.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment %s: %w", investmentID, err)
	}
	d := mapping.ToDomainInvestment(m)
	return &d, nil
}

func (r *PgxLedgerRepository) SumRunningPrincipal(ctx context.Context, userID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(principal), 0) FROM investments WHERE user_id = $1 AND status = 'RUNNING';`
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum running principal for user %s: %w", userID, err)
	}
	return total, nil
}

func (r *PgxLedgerRepository) ListProfits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Profit, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT profit_id, investment_id, user_id, amount, created_at
		FROM profits
		WHERE user_id = $1
	`
	orderByClause := `ORDER BY created_at DESC, profit_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (created_at, profit_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
		query := baseQuery + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query profits for user %s: %w", userID, err)
	}
	defer rows.Close()

	var profits []models.Profit
	for rows.Next() {
		var m models.Profit
		if err := rows.Scan(&m.ProfitID, &m.InvestmentID, &m.UserID, &m.Amount, &m.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan profit row: %w", err)
		}
		profits = append(profits, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating profit rows: %w", err)
	}

	var newToken *string
	if len(profits) > limit {
		profits = profits[:limit]
		last := profits[len(profits)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ProfitID)
		newToken = &token
	}

	return mapping.ToDomainProfitSlice(profits), newToken, nil
}
