package handlers

import (
	"net/http"

	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to the authenticated user.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PUT("/me/password", h.updatePassword)
		users.GET("/me/referrals", h.listReferrals)
	}
}

// getMe godoc
// @Summary Get own profile
// @Description Retrieves the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updatePassword godoc
// @Summary Change own password
// @Description Changes the authenticated user's password given the current one
// @Tags users
// @Accept json
// @Produce json
// @Param password body dto.UpdatePasswordRequest true "Password change details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Current password incorrect"
// @Security BearerAuth
// @Router /users/me/password [put]
func (h *userHandler) updatePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), userID, req); err != nil {
		respondServiceError(c, logger, err, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// listReferrals godoc
// @Summary List referred accounts
// @Description Lists the users who signed up with the authenticated user's referral code
// @Tags users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/referrals [get]
func (h *userHandler) listReferrals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	users, err := h.userService.ListReferredUsers(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list referred users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}
