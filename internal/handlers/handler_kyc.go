package handlers

import (
	"net/http"

	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// kycHandler handles HTTP requests for the KYC profile.
type kycHandler struct {
	kycService portssvc.KYCSvcFacade
}

func newKYCHandler(ks portssvc.KYCSvcFacade) *kycHandler {
	return &kycHandler{kycService: ks}
}

// registerKYCRoutes registers the KYC routes.
func registerKYCRoutes(rg *gin.RouterGroup, kycService portssvc.KYCSvcFacade) {
	h := newKYCHandler(kycService)

	kyc := rg.Group("/kyc")
	{
		kyc.PUT("", h.submitKYC)
		kyc.GET("", h.getKYC)
	}
}

// submitKYC godoc
// @Summary Submit KYC details
// @Description Creates or replaces the authenticated user's KYC profile
// @Tags kyc
// @Accept json
// @Produce json
// @Param kyc body dto.SubmitKYCRequest true "KYC details"
// @Success 200 {object} dto.KYCResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /kyc [put]
func (h *kycHandler) submitKYC(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	kyc, err := h.kycService.SubmitKYC(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit KYC")
		return
	}

	c.JSON(http.StatusOK, dto.ToKYCResponse(kyc))
}

// getKYC godoc
// @Summary Get own KYC details
// @Description Retrieves the authenticated user's KYC profile
// @Tags kyc
// @Produce json
// @Success 200 {object} dto.KYCResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No KYC profile submitted"
// @Security BearerAuth
// @Router /kyc [get]
func (h *kycHandler) getKYC(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	kyc, err := h.kycService.GetKYC(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve KYC")
		return
	}

	c.JSON(http.StatusOK, dto.ToKYCResponse(kyc))
}
