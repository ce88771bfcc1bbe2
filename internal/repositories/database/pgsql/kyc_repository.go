package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/models"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxKYCRepository struct {
	BaseRepository
}

func newPgxKYCRepository(pool *pgxpool.Pool) portsrepo.KYCRepositoryFacade {
	return &PgxKYCRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxKYCRepository implements portsrepo.KYCRepositoryFacade
var _ portsrepo.KYCRepositoryFacade = (*PgxKYCRepository)(nil)

func (r *PgxKYCRepository) SaveKYC(ctx context.Context, kyc domain.UserKYC) error {
	m := mapping.ToModelUserKYC(kyc)
	query := `
		INSERT INTO user_kyc (
			kyc_id, user_id, first_name, last_name, phone_number, address, city, zip, state, country, base_currency,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.KYCID, m.UserID, m.FirstName, m.LastName, m.PhoneNumber, m.Address, m.City, m.Zip, m.State, m.Country, m.BaseCurrency,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("KYC profile already exists for user %s: %w", kyc.UserID, apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to save KYC profile: %w", err)
	}
	return nil
}

func (r *PgxKYCRepository) UpdateKYC(ctx context.Context, kyc domain.UserKYC) error {
	m := mapping.ToModelUserKYC(kyc)
	query := `
		UPDATE user_kyc SET
			first_name = $2, last_name = $3, phone_number = $4, address = $5, city = $6,
			zip = $7, state = $8, country = $9, base_currency = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE user_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.FirstName, m.LastName, m.PhoneNumber, m.Address, m.City,
		m.Zip, m.State, m.Country, m.BaseCurrency,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update KYC profile for user %s: %w", kyc.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxKYCRepository) FindKYCByUserID(ctx context.Context, userID string) (*domain.UserKYC, error) {
	query := `
		SELECT kyc_id, user_id, first_name, last_name, phone_number, address, city, zip, state, country, base_currency,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM user_kyc
		WHERE user_id = $1;
	`
	var m models.UserKYC
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.KYCID, &m.UserID, &m.FirstName, &m.LastName, &m.PhoneNumber, &m.Address, &m.City, &m.Zip, &m.State, &m.Country, &m.BaseCurrency,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find KYC profile for user %s: %w", userID, err)
	}

	d := mapping.ToDomainUserKYC(m)
	return &d, nil
}
