package models

import (
	"database/sql"
)

// User is the persistence shape of a platform user.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AccountID    string `db:"account_id"`
	Active       bool   `db:"active"`
	Role         string `db:"role"`
	ReferralCode string `db:"referral_code"`
	AuthProvider string `db:"auth_provider"`
	AuditFields

	// Nullable columns.
	Referrer               sql.NullString `db:"referrer"`
	ProviderUserID         sql.NullString `db:"provider_user_id"`
	EmailToken             sql.NullString `db:"email_token"`
	EmailTokenExpiresAt    sql.NullTime   `db:"email_token_expires_at"`
	ResetPasswordToken     sql.NullString `db:"reset_password_token"`
	ResetPasswordExpiresAt sql.NullTime   `db:"reset_password_expires_at"`
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
