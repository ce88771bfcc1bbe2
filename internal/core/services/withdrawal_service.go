package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type withdrawalService struct {
	storageTimeouts
	ledgerRepo portsrepo.LedgerRepositoryFacade
	minAmount  decimal.Decimal
}

// NewWithdrawalService creates a new instance of withdrawalService.
func NewWithdrawalService(ledgerRepo portsrepo.LedgerRepositoryFacade, minAmount decimal.Decimal, storageTimeout time.Duration) portssvc.WithdrawalSvcFacade {
	return &withdrawalService{
		storageTimeouts: storageTimeouts{storageTimeout: storageTimeout},
		ledgerRepo:      ledgerRepo,
		minAmount:       minAmount,
	}
}

var _ portssvc.WithdrawalSvcFacade = (*withdrawalService)(nil)

func (s *withdrawalService) RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Withdrawal, decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("withdrawal amount must be positive, got %s: %w", amount, apperrors.ErrValidation)
	}
	if amount.LessThan(s.minAmount) {
		return nil, decimal.Zero, fmt.Errorf("withdrawal amount %s below minimum %s: %w", amount, s.minAmount, apperrors.ErrValidation)
	}

	now := time.Now()
	withdrawal := domain.Withdrawal{
		WithdrawalID: uuid.NewString(),
		UserID:       userID,
		Amount:       amount,
		Status:       domain.WithdrawalPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	request := domain.WithdrawalRequest{
		RequestID:    uuid.NewString(),
		WithdrawalID: withdrawal.WithdrawalID,
		UserID:       userID,
		Amount:       amount,
		Status:       domain.WithdrawalPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	newBalance, err := s.ledgerRepo.SaveWithdrawal(ctx, withdrawal, request)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to record withdrawal for user %s: %w", userID, err)
	}

	logger.Info("Withdrawal requested",
		slog.String("withdrawal_id", withdrawal.WithdrawalID),
		slog.String("request_id", request.RequestID),
		slog.String("amount", amount.String()),
	)
	return &withdrawal, newBalance, nil
}

func (s *withdrawalService) Approve(ctx context.Context, requestID string, adminID string) (*domain.WithdrawalRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	request, err := s.ledgerRepo.ApproveWithdrawalRequest(ctx, requestID, adminID, "", time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to approve withdrawal request %s: %w", requestID, err)
	}

	logger.Info("Withdrawal request approved",
		slog.String("request_id", requestID),
		slog.String("admin_id", adminID),
	)
	return request, nil
}

func (s *withdrawalService) Reject(ctx context.Context, requestID string, adminID string) (*domain.WithdrawalRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	request, err := s.ledgerRepo.RejectWithdrawalRequest(ctx, requestID, adminID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to reject withdrawal request %s: %w", requestID, err)
	}

	logger.Info("Withdrawal request rejected, amount credited back",
		slog.String("request_id", requestID),
		slog.String("admin_id", adminID),
		slog.String("amount", request.Amount.String()),
	)
	return request, nil
}

func (s *withdrawalService) GetWithdrawalRequest(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.ledgerRepo.FindWithdrawalRequestByID(ctx, requestID)
}

func (s *withdrawalService) ListWithdrawals(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Withdrawal, *string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.ledgerRepo.ListWithdrawals(ctx, userID, limit, nextToken)
}

func (s *withdrawalService) ListWithdrawalRequests(ctx context.Context, status domain.WithdrawalStatus, userID string, rng domain.DateRange, limit int, nextToken *string) ([]domain.WithdrawalRequest, *string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.ledgerRepo.ListWithdrawalRequests(ctx, status, userID, rng, limit, nextToken)
}

func (s *withdrawalService) TotalWithdrawals(ctx context.Context, userID string) (decimal.Decimal, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.ledgerRepo.SumWithdrawals(ctx, userID)
}
