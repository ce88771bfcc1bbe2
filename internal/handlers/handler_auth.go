package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/platform/config"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, cfg)

	// 5 requests per minute per IP on the credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/signup", limitMiddleware, h.Signup)
		auth.POST("/activate", limitMiddleware, h.Activate)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.POST("/forgot-password", limitMiddleware, h.ForgotPassword)
		auth.POST("/reset-password", limitMiddleware, h.ResetPassword)
	}
}

// The refresh cookie carries "<userID>:<rawToken>" so the refresh endpoint
// can locate the stored hash without a separate identity claim.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, userID, rawToken string, expiry time.Time) {
	maxAge := int(time.Until(expiry).Seconds())
	c.SetCookie(h.cfg.RefreshTokenCookieName, userID+":"+rawToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *AuthHandler) refreshCookieParts(c *gin.Context) (userID string, rawToken string, ok bool) {
	cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(cookie, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// issueSession generates the access token and rotates the refresh token for
// the user, setting the refresh cookie on the response.
func (h *AuthHandler) issueSession(c *gin.Context, user *domain.User) (string, error) {
	ctx := c.Request.Context()

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", err
	}

	rawRefresh, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return "", err
	}
	if err := h.userService.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(rawRefresh), refreshExpiry); err != nil {
		return "", err
	}

	h.setRefreshCookie(c, user.UserID, rawRefresh, refreshExpiry)
	return accessToken, nil
}

// Signup godoc
// @Summary Register a new account
// @Description Creates an inactive account and mails a 6-digit activation code.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup details"
// @Success 201 {object} dto.SignupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	user, err := h.userService.Signup(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{
		UserID:       user.UserID,
		Email:        user.Email,
		AccountID:    user.AccountID,
		ReferralCode: user.ReferralCode,
	})
}

// Activate godoc
// @Summary Activate an account
// @Description Activates an account using the emailed 6-digit code.
// @Tags auth
// @Accept json
// @Produce json
// @Param activate body dto.ActivateRequest true "Activation details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid or expired token"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Account already active"
// @Router /auth/activate [post]
func (h *AuthHandler) Activate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.userService.Activate(c.Request.Context(), req.Email, req.Token); err != nil {
		respondServiceError(c, logger, err, "Failed to activate account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account activated"})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user, returns a JWT access token and sets a refresh cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Account not activated"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to log in")
		return
	}

	accessToken, err := h.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to issue session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: accessToken, User: dto.ToUserResponse(user)})
}

// Refresh godoc
// @Summary Refresh access token
// @Description Rotates the refresh token cookie and returns a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, rawToken, ok := h.refreshCookieParts(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing refresh token"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), userID, rawToken)
	if err != nil {
		h.clearRefreshCookie(c)
		respondServiceError(c, logger, err, "Failed to refresh session")
		return
	}

	accessToken, err := h.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to rotate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: accessToken})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the refresh token and clears the cookie.
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if userID, _, ok := h.refreshCookieParts(c); ok {
		if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
			// Cookie is cleared regardless; log and move on.
			logger.Warn("Failed to clear stored refresh token", slog.String("error", err.Error()))
		}
	}

	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Mails a reset code if the address is registered. Always returns 200.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgot body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.userService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondServiceError(c, logger, err, "Failed to start password reset")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the address is registered, a reset code has been sent"})
}

// ResetPassword godoc
// @Summary Complete a password reset
// @Description Sets a new password using the mailed reset code. Existing sessions are revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetPasswordRequest true "Reset details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid or expired token"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), req); err != nil {
		respondServiceError(c, logger, err, "Failed to reset password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
