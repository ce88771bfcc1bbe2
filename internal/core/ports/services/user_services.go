package services

import (
	"context"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByAccountID retrieves a user by public account ID.
	GetUserByAccountID(ctx context.Context, accountID string) (*domain.User, error)

	// ListReferredUsers lists the users who signed up with this user's
	// referral code.
	ListReferredUsers(ctx context.Context, userID string) ([]domain.User, error)

	// ListUsers retrieves a paginated list of users for the admin surface.
	ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Signup registers a new user and dispatches the activation mail.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// Activate marks a user active given a valid, unexpired email token.
	Activate(ctx context.Context, email string, token string) error

	// ForgotPassword issues a reset token and mails it to the user.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword sets a new password given a valid reset token.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error

	// UpdatePassword changes the password of an authenticated user.
	UpdatePassword(ctx context.Context, userID string, req dto.UpdatePasswordRequest) error

	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	// Inactive users fail with ErrUnauthorized.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// UpsertOAuthUser finds or creates the user matching an external
	// identity. OAuth users are active immediately.
	UpsertOAuthUser(ctx context.Context, provider domain.AuthProvider, info *domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
