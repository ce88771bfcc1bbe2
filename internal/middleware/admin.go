package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
)

// RequireAdmin creates a Gin middleware that loads the authenticated user and
// rejects the request unless they hold the ADMIN role. Must run after
// AuthMiddleware.
func RequireAdmin(userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to load user for role check", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify permissions"})
			return
		}

		if user.Role != domain.RoleAdmin {
			logger.Warn("Non-admin user attempted admin operation")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
