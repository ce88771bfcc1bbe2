package handlers

import (
	"net/http"

	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// cashflowHandler handles balance, deposit, withdrawal and investment
// requests for the authenticated user.
type cashflowHandler struct {
	ledgerService     portssvc.LedgerSvcFacade
	depositService    portssvc.DepositSvcFacade
	withdrawalService portssvc.WithdrawalSvcFacade
	investmentService portssvc.InvestmentSvcFacade
}

func newCashflowHandler(services *portssvc.ServiceContainer) *cashflowHandler {
	return &cashflowHandler{
		ledgerService:     services.Ledger,
		depositService:    services.Deposit,
		withdrawalService: services.Withdrawal,
		investmentService: services.Investment,
	}
}

// RegisterCashflowRoutes registers the ledger routes.
func RegisterCashflowRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCashflowHandler(services)

	rg.GET("/balance", h.getBalance)

	deposits := rg.Group("/deposits")
	{
		deposits.POST("", h.deposit)
		deposits.GET("", h.listDeposits)
	}

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.POST("", h.requestWithdrawal)
		withdrawals.GET("", h.listWithdrawals)
	}

	investments := rg.Group("/investments")
	{
		investments.POST("", h.openInvestment)
		investments.GET("", h.listInvestments)
	}

	rg.GET("/profits", h.listProfits)
}

// getBalance godoc
// @Summary Get account balance
// @Description Returns the authenticated user's current balance
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance [get]
func (h *cashflowHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{UserID: userID, Balance: balance})
}

// deposit godoc
// @Summary Record a deposit
// @Description Credits the authenticated user's balance
// @Tags cashflow
// @Accept json
// @Produce json
// @Param deposit body dto.DepositRequest true "Deposit amount"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} ErrorResponse "Non-positive or below-minimum amount"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /deposits [post]
func (h *cashflowHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	deposit, newBalance, err := h.depositService.Deposit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record deposit")
		return
	}

	resp := dto.ToDepositResponse(deposit)
	resp.NewBalance = &newBalance
	c.JSON(http.StatusCreated, resp)
}

// listDeposits godoc
// @Summary List deposits
// @Description Retrieves a page of the authenticated user's deposits, newest first
// @Tags cashflow
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListDepositsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /deposits [get]
func (h *cashflowHandler) listDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	deposits, nextToken, err := h.depositService.ListDeposits(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list deposits")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDepositsResponse(deposits, nextToken))
}

// requestWithdrawal godoc
// @Summary Request a withdrawal
// @Description Debits the balance immediately and records a pending approval request
// @Tags cashflow
// @Accept json
// @Produce json
// @Param withdrawal body dto.WithdrawRequest true "Withdrawal amount"
// @Success 201 {object} dto.WithdrawalResponse
// @Failure 400 {object} ErrorResponse "Non-positive or below-minimum amount"
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Security BearerAuth
// @Router /withdrawals [post]
func (h *cashflowHandler) requestWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	withdrawal, newBalance, err := h.withdrawalService.RequestWithdrawal(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to request withdrawal")
		return
	}

	resp := dto.ToWithdrawalResponse(withdrawal)
	resp.NewBalance = &newBalance
	c.JSON(http.StatusCreated, resp)
}

// listWithdrawals godoc
// @Summary List withdrawals
// @Description Retrieves a page of the authenticated user's withdrawals, newest first
// @Tags cashflow
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListWithdrawalsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /withdrawals [get]
func (h *cashflowHandler) listWithdrawals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	withdrawals, nextToken, err := h.withdrawalService.ListWithdrawals(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list withdrawals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWithdrawalsResponse(withdrawals, nextToken))
}

// openInvestment godoc
// @Summary Open an investment
// @Description Debits the principal and opens a fixed-term investment
// @Tags cashflow
// @Accept json
// @Produce json
// @Param investment body dto.OpenInvestmentRequest true "Investment terms"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} ErrorResponse "Invalid principal, duration or rate"
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Security BearerAuth
// @Router /investments [post]
func (h *cashflowHandler) openInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.OpenInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	investment, newBalance, err := h.investmentService.OpenInvestment(c.Request.Context(), userID, req.Principal, req.DurationDays, req.InterestRate)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to open investment")
		return
	}

	resp := dto.ToInvestmentResponse(investment)
	resp.NewBalance = &newBalance
	c.JSON(http.StatusCreated, resp)
}

// listInvestments godoc
// @Summary List investments
// @Description Retrieves a page of the authenticated user's investments, newest first
// @Tags cashflow
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListInvestmentsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *cashflowHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	investments, nextToken, err := h.investmentService.ListInvestments(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list investments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvestmentsResponse(investments, nextToken))
}

// listProfits godoc
// @Summary List profit payouts
// @Description Retrieves a page of the authenticated user's matured investment payouts
// @Tags cashflow
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListProfitsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profits [get]
func (h *cashflowHandler) listProfits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	profits, nextToken, err := h.investmentService.ListProfits(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list profits")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProfitsResponse(profits, nextToken))
}
