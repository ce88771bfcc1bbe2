package repositories

import (
	"context"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByAccountID retrieves a user by their public account ID.
	FindUserByAccountID(ctx context.Context, accountID string) (*domain.User, error)

	// FindUserByReferralCode retrieves a user by their referral code.
	FindUserByReferralCode(ctx context.Context, code string) (*domain.User, error)

	// FindUserByProviderID retrieves a user by OAuth provider subject.
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// FindUsersReferredBy retrieves users whose referrer matches the given referral code.
	FindUsersReferredBy(ctx context.Context, referralCode string) ([]domain.User, error)

	// FindUsers retrieves a paginated list of users, optionally filtered by
	// active flag and creation date range.
	FindUsers(ctx context.Context, activeOnly *bool, rng domain.DateRange, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the refresh token hash and expiry for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
