package dto

import (
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
)

// SignupRequest defines the data needed to register a new user.
type SignupRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Referrer        string `json:"referrer"` // Optional referral code of the referring user
}

// ActivateRequest defines the data needed to activate a new account.
type ActivateRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required,len=6"`
}

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest starts the password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the password reset flow.
type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// UpdatePasswordRequest changes the password of an authenticated user.
type UpdatePasswordRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// ListUsersParams defines query parameters for the admin users listing.
type ListUsersParams struct {
	Limit  int        `form:"limit,default=20"`
	Offset int        `form:"offset,default=0"`
	Active *bool      `form:"active"`
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Email        string    `json:"email"`
	AccountID    string    `json:"accountID"`
	Active       bool      `json:"active"`
	Role         string    `json:"role"`
	ReferralCode string    `json:"referralCode"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Email:        user.Email,
		AccountID:    user.AccountID,
		Active:       user.Active,
		Role:         string(user.Role),
		ReferralCode: user.ReferralCode,
		CreatedAt:    user.CreatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}

// SignupResponse defines the data returned after a successful signup.
type SignupResponse struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	AccountID    string `json:"accountID"`
	ReferralCode string `json:"referralCode"`
}
