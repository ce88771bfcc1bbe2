package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/gateways"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/utils"
	"github.com/google/uuid"
)

const (
	accountIDLength      = 8
	referralCodeLength   = 8
	emailTokenLength     = 6
	emailTokenTTL        = 15 * time.Minute
	resetTokenTTL        = 15 * time.Minute
	codeGenerationTries  = 3
	activationSubject    = "Activate your FundWise account"
	passwordResetSubject = "Reset your FundWise password"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	mailer   gateways.Mailer
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, mailer gateways.Mailer) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, mailer: mailer}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Referral codes are optional but must resolve when given.
	referrer := strings.TrimSpace(req.Referrer)
	if referrer != "" {
		if _, err := s.userRepo.FindUserByReferralCode(ctx, referrer); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("unknown referral code %s: %w", referrer, apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to validate referral code: %w", err)
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	emailToken, err := utils.GenerateNumericCode(emailTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate activation token: %w", err)
	}

	now := time.Now()
	tokenExpiry := now.Add(emailTokenTTL)
	userID := uuid.NewString()

	// Short codes can collide; retry with fresh codes a few times before
	// giving up. An email collision surfaces as ErrDuplicate immediately.
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %s already registered: %w", email, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}

	var user domain.User
	for attempt := 0; attempt < codeGenerationTries; attempt++ {
		accountID, err := utils.GenerateShortCode(accountIDLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate account ID: %w", err)
		}
		referralCode, err := utils.GenerateShortCode(referralCodeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate referral code: %w", err)
		}

		user = domain.User{
			UserID:              userID,
			Email:               email,
			PasswordHash:        passwordHash,
			AccountID:           accountID,
			Active:              false,
			Role:                domain.RoleUser,
			ReferralCode:        referralCode,
			Referrer:            referrer,
			AuthProvider:        domain.ProviderLocal,
			EmailToken:          emailToken,
			EmailTokenExpiresAt: &tokenExpiry,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}

		err = s.userRepo.SaveUser(ctx, user)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrDuplicate) && attempt < codeGenerationTries-1 {
			continue
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	body := fmt.Sprintf("Welcome to FundWise!\n\nYour activation code is %s. It expires in %d minutes.\n\nYour account ID is %s.",
		emailToken, int(emailTokenTTL.Minutes()), user.AccountID)
	if err := s.mailer.Send(ctx, email, activationSubject, body); err != nil {
		// Activation can be re-requested; a mail failure does not undo signup.
		logger.Error("Failed to send activation mail", slog.String("error", err.Error()))
	}

	logger.Info("User signed up", slog.String("new_user_id", user.UserID))
	return &user, nil
}

func (s *userService) Activate(ctx context.Context, email string, token string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if user.Active {
		return fmt.Errorf("account already active: %w", apperrors.ErrConflict)
	}
	if user.EmailToken == "" || user.EmailToken != token {
		return fmt.Errorf("invalid activation token: %w", apperrors.ErrValidation)
	}
	if user.EmailTokenExpiresAt == nil || time.Now().After(*user.EmailTokenExpiresAt) {
		return fmt.Errorf("activation token expired: %w", apperrors.ErrValidation)
	}

	user.Active = true
	user.EmailToken = ""
	user.EmailTokenExpiresAt = nil
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to activate user %s: %w", user.UserID, err)
	}
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}
	if !user.Active {
		return nil, fmt.Errorf("account not activated: %w", apperrors.ErrForbidden)
	}

	return user, nil
}

func (s *userService) UpsertOAuthUser(ctx context.Context, provider domain.AuthProvider, info *domain.GoogleUserInfo) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	email := strings.ToLower(strings.TrimSpace(info.Email))

	user, err := s.userRepo.FindUserByProviderID(ctx, provider, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up OAuth user: %w", err)
	}

	// A local account with the same email keeps its identity; the OAuth
	// login simply resolves to it.
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()

	var created domain.User
	for attempt := 0; attempt < codeGenerationTries; attempt++ {
		accountID, err := utils.GenerateShortCode(accountIDLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate account ID: %w", err)
		}
		referralCode, err := utils.GenerateShortCode(referralCodeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate referral code: %w", err)
		}

		created = domain.User{
			UserID:         userID,
			Email:          email,
			AccountID:      accountID,
			Active:         true, // provider already verified the email
			Role:           domain.RoleUser,
			ReferralCode:   referralCode,
			AuthProvider:   provider,
			ProviderUserID: info.ID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}

		err = s.userRepo.SaveUser(ctx, created)
		if err == nil {
			logger.Info("OAuth user created", slog.String("new_user_id", userID))
			return &created, nil
		}
		if errors.Is(err, apperrors.ErrDuplicate) && attempt < codeGenerationTries-1 {
			continue
		}
		return nil, fmt.Errorf("failed to create OAuth user: %w", err)
	}
	return nil, fmt.Errorf("failed to create OAuth user: %w", apperrors.ErrInternal)
}

func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Do not reveal whether the address is registered.
			logger.Info("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up user for password reset: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().Add(resetTokenTTL)
	user.ResetPasswordToken = token
	user.ResetPasswordExpiresAt = &expiry
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	body := fmt.Sprintf("Your password reset code is %s. It expires in %d minutes.\n\nIf you did not request this, ignore this mail.",
		token, int(resetTokenTTL.Minutes()))
	if err := s.mailer.Send(ctx, user.Email, passwordResetSubject, body); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return err
	}

	if user.ResetPasswordToken == "" || user.ResetPasswordToken != req.Token {
		return fmt.Errorf("invalid reset token: %w", apperrors.ErrValidation)
	}
	if user.ResetPasswordExpiresAt == nil || time.Now().After(*user.ResetPasswordExpiresAt) {
		return fmt.Errorf("reset token expired: %w", apperrors.ErrValidation)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	user.PasswordHash = newHash
	user.ResetPasswordToken = ""
	user.ResetPasswordExpiresAt = nil
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	// Existing sessions are revoked with the password change.
	if err := s.userRepo.ClearRefreshToken(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to clear refresh token after reset: %w", err)
	}
	return nil
}

func (s *userService) UpdatePassword(ctx context.Context, userID string, req dto.UpdatePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return fmt.Errorf("current password incorrect: %w", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	user.PasswordHash = newHash
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *userService) GetUserByAccountID(ctx context.Context, accountID string) (*domain.User, error) {
	return s.userRepo.FindUserByAccountID(ctx, accountID)
}

func (s *userService) ListReferredUsers(ctx context.Context, userID string) ([]domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindUsersReferredBy(ctx, user.ReferralCode)
}

func (s *userService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error) {
	var rng domain.DateRange
	if params.From != nil {
		rng.From = *params.From
	}
	if params.To != nil {
		rng.To = *params.To
	}
	return s.userRepo.FindUsers(ctx, params.Active, rng, params.Limit, params.Offset)
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}
