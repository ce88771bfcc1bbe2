package mapping

import (
	"database/sql"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:                 d.UserID,
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		AccountID:              d.AccountID,
		Active:                 d.Active,
		Role:                   string(d.Role),
		ReferralCode:           d.ReferralCode,
		AuthProvider:           string(d.AuthProvider),
		Referrer:               nullString(d.Referrer),
		ProviderUserID:         nullString(d.ProviderUserID),
		EmailToken:             nullString(d.EmailToken),
		EmailTokenExpiresAt:    nullTime(d.EmailTokenExpiresAt),
		ResetPasswordToken:     nullString(d.ResetPasswordToken),
		ResetPasswordExpiresAt: nullTime(d.ResetPasswordExpiresAt),
		RefreshTokenHash:       nullString(d.RefreshTokenHash),
		RefreshTokenExpiryTime: nullTime(d.RefreshTokenExpiryTime),
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                 m.UserID,
		Email:                  m.Email,
		PasswordHash:           m.PasswordHash,
		AccountID:              m.AccountID,
		Active:                 m.Active,
		Role:                   domain.Role(m.Role),
		ReferralCode:           m.ReferralCode,
		AuthProvider:           domain.AuthProvider(m.AuthProvider),
		Referrer:               fromNullString(m.Referrer),
		ProviderUserID:         fromNullString(m.ProviderUserID),
		EmailToken:             fromNullString(m.EmailToken),
		EmailTokenExpiresAt:    fromNullTime(m.EmailTokenExpiresAt),
		ResetPasswordToken:     fromNullString(m.ResetPasswordToken),
		ResetPasswordExpiresAt: fromNullTime(m.ResetPasswordExpiresAt),
		RefreshTokenHash:       fromNullString(m.RefreshTokenHash),
		RefreshTokenExpiryTime: fromNullTime(m.RefreshTokenExpiryTime),
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
