package handlers

import (
	"log/slog"
	"net/http"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/gateways"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// adminHandler handles the admin-only surface: platform rollups, withdrawal
// approvals, user lookups, gateway payouts and the maturity sweep.
type adminHandler struct {
	userService       portssvc.UserSvcFacade
	ledgerService     portssvc.LedgerSvcFacade
	withdrawalService portssvc.WithdrawalSvcFacade
	maturityService   portssvc.MaturitySvcFacade
	reportingService  portssvc.ReportingService
}

func newAdminHandler(services *portssvc.ServiceContainer) *adminHandler {
	return &adminHandler{
		userService:       services.User,
		ledgerService:     services.Ledger,
		withdrawalService: services.Withdrawal,
		maturityService:   services.Maturity,
		reportingService:  services.Reporting,
	}
}

// registerAdminRoutes registers the admin routes. The group is expected to
// already carry the RequireAdmin middleware.
func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAdminHandler(services)

	rg.GET("/totals", h.platformTotals)

	requests := rg.Group("/withdrawal-requests")
	{
		requests.GET("", h.listWithdrawalRequests)
		requests.GET("/:id", h.getWithdrawalRequest)
		requests.POST("/:id/approve", h.approveWithdrawal)
		requests.POST("/:id/reject", h.rejectWithdrawal)
	}

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/lookup", h.lookupUser)
		users.POST("/:id/reconcile", h.reconcileUser)
	}

	rg.GET("/gateway/balance", h.gatewayBalance)
	rg.POST("/transfers", h.transfer)
	rg.POST("/investments/sweep", h.sweepInvestments)
}

// platformTotals godoc
// @Summary Platform totals
// @Description Platform-wide deposit, withdrawal, investment and profit totals over an optional date range
// @Tags admin
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.PlatformTotalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/totals [get]
func (h *adminHandler) platformTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	totals, err := h.reportingService.PlatformTotals(c.Request.Context(), params.DateRange())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute platform totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToPlatformTotalsResponse(totals))
}

// listWithdrawalRequests godoc
// @Summary List withdrawal requests
// @Description Lists withdrawal approval requests, filtered by status, user and date range
// @Tags admin
// @Produce json
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Param userID query string false "Filter by user"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListWithdrawalRequestsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/withdrawal-requests [get]
func (h *adminHandler) listWithdrawalRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListWithdrawalRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var rng domain.DateRange
	if params.From != nil {
		rng.From = *params.From
	}
	if params.To != nil {
		rng.To = *params.To
	}

	requests, nextToken, err := h.withdrawalService.ListWithdrawalRequests(
		c.Request.Context(),
		domain.WithdrawalStatus(params.Status),
		params.UserID,
		rng,
		params.Limit,
		params.NextToken,
	)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list withdrawal requests")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWithdrawalRequestsResponse(requests, nextToken))
}

// getWithdrawalRequest godoc
// @Summary Get a withdrawal request
// @Description Retrieves a single withdrawal approval request
// @Tags admin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.WithdrawalRequestResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/withdrawal-requests/{id} [get]
func (h *adminHandler) getWithdrawalRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	request, err := h.withdrawalService.GetWithdrawalRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve withdrawal request")
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawalRequestResponse(request))
}

// approveWithdrawal godoc
// @Summary Approve a withdrawal request
// @Description Marks a pending withdrawal request APPROVED. The amount was already debited at request time.
// @Tags admin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.WithdrawalRequestResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Security BearerAuth
// @Router /admin/withdrawal-requests/{id}/approve [post]
func (h *adminHandler) approveWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	request, err := h.withdrawalService.Approve(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve withdrawal request")
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawalRequestResponse(request))
}

// rejectWithdrawal godoc
// @Summary Reject a withdrawal request
// @Description Marks a pending withdrawal request REJECTED and credits the amount back
// @Tags admin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.WithdrawalRequestResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Security BearerAuth
// @Router /admin/withdrawal-requests/{id}/reject [post]
func (h *adminHandler) rejectWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	request, err := h.withdrawalService.Reject(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject withdrawal request")
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawalRequestResponse(request))
}

// listUsers godoc
// @Summary List users
// @Description Lists users with optional activity and signup-date filters
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Param active query bool false "Filter by activation state"
// @Param from query string false "Signup range start (YYYY-MM-DD)"
// @Param to query string false "Signup range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// lookupUser godoc
// @Summary Look up a user
// @Description Finds a user by account ID or email
// @Tags admin
// @Produce json
// @Param accountID query string false "Public account ID"
// @Param email query string false "Email address"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Neither accountID nor email given"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/lookup [get]
func (h *adminHandler) lookupUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID := c.Query("accountID")
	email := c.Query("email")

	var (
		user *domain.User
		err  error
	)
	switch {
	case accountID != "":
		user, err = h.userService.GetUserByAccountID(c.Request.Context(), accountID)
	case email != "":
		user, err = h.userService.GetUserByEmail(c.Request.Context(), email)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "accountID or email query parameter required"})
		return
	}
	if err != nil {
		respondServiceError(c, logger, err, "Failed to look up user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// reconcileUser godoc
// @Summary Reconcile a user's balance
// @Description Compares the stored balance against the balance derived from transaction history
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Stored and derived balances diverge"
// @Security BearerAuth
// @Router /admin/users/{id}/reconcile [post]
func (h *adminHandler) reconcileUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	balance, err := h.ledgerService.Reconcile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Balance reconciliation failed")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{UserID: userID, Balance: balance})
}

// gatewayBalance godoc
// @Summary Gateway balance
// @Description Returns the payment gateway's available balance for a currency
// @Tags admin
// @Produce json
// @Param currency query string true "3-letter currency code"
// @Success 200 {object} dto.GatewayBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Gateway error"
// @Security BearerAuth
// @Router /admin/gateway/balance [get]
func (h *adminHandler) gatewayBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency := c.Query("currency")

	balance, err := h.reportingService.GatewayBalance(c.Request.Context(), currency)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve gateway balance")
		return
	}

	c.JSON(http.StatusOK, dto.GatewayBalanceResponse{Currency: currency, Balance: balance})
}

// transfer godoc
// @Summary Initiate a gateway payout
// @Description Sends a bank transfer through the payment gateway, typically to settle an approved withdrawal
// @Tags admin
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Gateway rejected the transfer"
// @Security BearerAuth
// @Router /admin/transfers [post]
func (h *adminHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	receipt, err := h.reportingService.Transfer(c.Request.Context(), gateways.TransferOrder{
		AccountBank:   req.AccountBank,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Narration:     req.Narration,
		Reference:     req.Reference,
	})
	if err != nil {
		respondServiceError(c, logger, err, "Failed to initiate transfer")
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{Reference: receipt.Reference, Status: receipt.Status})
}

// sweepInvestments godoc
// @Summary Run the maturity sweep
// @Description Completes every matured RUNNING investment and credits principal plus profit
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SweepResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/investments/sweep [post]
func (h *adminHandler) sweepInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resolved, err := h.maturityService.ResolveMatured(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Maturity sweep failed")
		return
	}

	logger.Info("Manual maturity sweep completed", slog.Int("resolved", resolved))
	c.JSON(http.StatusOK, dto.SweepResponse{Resolved: resolved})
}
