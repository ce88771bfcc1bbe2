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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, password_hash, account_id, active, role, referral_code, referrer,
		auth_provider, provider_user_id, email_token, email_token_expires_at,
		reset_password_token, reset_password_expires_at, refresh_token_hash, refresh_token_expiry_time,
		created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.AccountID,
		&m.Active,
		&m.Role,
		&m.ReferralCode,
		&m.Referrer,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.EmailToken,
		&m.EmailTokenExpiresAt,
		&m.ResetPasswordToken,
		&m.ResetPasswordExpiresAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Email, m.PasswordHash, m.AccountID, m.Active, m.Role, m.ReferralCode, m.Referrer,
		m.AuthProvider, m.ProviderUserID, m.EmailToken, m.EmailTokenExpiresAt,
		m.ResetPasswordToken, m.ResetPasswordExpiresAt, m.RefreshTokenHash, m.RefreshTokenExpiryTime,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("user with conflicting email, account ID or referral code: %w", apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users SET
			email = $2,
			password_hash = $3,
			active = $4,
			role = $5,
			email_token = $6,
			email_token_expires_at = $7,
			reset_password_token = $8,
			reset_password_expires_at = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE user_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Email, m.PasswordHash, m.Active, m.Role,
		m.EmailToken, m.EmailTokenExpiresAt,
		m.ResetPasswordToken, m.ResetPasswordExpiresAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	query := `
		UPDATE users SET refresh_token_hash = $2, refresh_token_expiry_time = $3, last_updated_at = NOW()
		WHERE user_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, refreshTokenHash, expiryTime)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
		UPDATE users SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL, last_updated_at = NOW()
		WHERE user_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) findUserBy(ctx context.Context, whereClause string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + whereClause + `;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserBy(ctx, "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserBy(ctx, "LOWER(email) = LOWER($1)", email)
}

func (r *PgxUserRepository) FindUserByAccountID(ctx context.Context, accountID string) (*domain.User, error) {
	return r.findUserBy(ctx, "account_id = $1", accountID)
}

func (r *PgxUserRepository) FindUserByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return r.findUserBy(ctx, "referral_code = $1", code)
}

func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, string(provider), providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider ID: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUsersReferredBy(ctx context.Context, referralCode string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE referrer = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, referralCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query referred users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, activeOnly *bool, rng domain.DateRange, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
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

	args = append(args, limit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
