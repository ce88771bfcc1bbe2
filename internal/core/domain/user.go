package domain

import "time"

// Role is the authorization level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a platform user within the core domain.
// AccountID is the short public identifier shown to the user; UserID is the
// internal primary key referenced by every ledger record.
type User struct {
	UserID       string       `json:"userID"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	AccountID    string       `json:"accountID"`
	Active       bool         `json:"active"`
	Role         Role         `json:"role"`
	ReferralCode string       `json:"referralCode"`
	Referrer     string       `json:"referrer,omitempty"` // referral code of the referring user
	AuthProvider AuthProvider `json:"authProvider"`

	// ProviderUserID is the subject claim from the external identity
	// provider when AuthProvider is not LOCAL.
	ProviderUserID string `json:"-"`

	EmailToken             string     `json:"-"`
	EmailTokenExpiresAt    *time.Time `json:"-"`
	ResetPasswordToken     string     `json:"-"`
	ResetPasswordExpiresAt *time.Time `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}
