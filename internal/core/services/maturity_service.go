package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"
	"github.com/google/uuid"
)

type maturityService struct {
	storageTimeouts
	ledgerRepo portsrepo.LedgerRepositoryFacade
	batchSize  int
}

// NewMaturityService creates a new instance of maturityService.
func NewMaturityService(ledgerRepo portsrepo.LedgerRepositoryFacade, batchSize int, storageTimeout time.Duration) portssvc.MaturitySvcFacade {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &maturityService{
		storageTimeouts: storageTimeouts{storageTimeout: storageTimeout},
		ledgerRepo:      ledgerRepo,
		batchSize:       batchSize,
	}
}

var _ portssvc.MaturitySvcFacade = (*maturityService)(nil)

// ResolveMatured completes every RUNNING investment whose maturity has
// passed. Each investment is resolved in its own transaction: the status
// swap is a compare-and-swap, so concurrent sweeps pay out each investment
// exactly once. A failure on one investment is logged and does not abort the
// rest of the sweep.
func (s *maturityService) ResolveMatured(ctx context.Context) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	listCtx, cancel := s.withTimeout(ctx)
	matured, err := s.ledgerRepo.ListMaturedRunning(listCtx, now, s.batchSize)
	cancel()
	if err != nil {
		return 0, err
	}
	if len(matured) == 0 {
		return 0, nil
	}

	resolved := 0
	for _, investment := range matured {
		if err := ctx.Err(); err != nil {
			return resolved, err
		}

		profit := domain.Profit{
			ProfitID:     uuid.NewString(),
			InvestmentID: investment.InvestmentID,
			UserID:       investment.UserID,
			Amount:       investment.ProfitAmount(),
			CreatedAt:    now,
		}

		completeCtx, cancel := s.withTimeout(ctx)
		done, err := s.ledgerRepo.CompleteInvestment(completeCtx, investment, profit)
		cancel()
		if err != nil {
			logger.Error("Failed to resolve matured investment",
				slog.String("investment_id", investment.InvestmentID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !done {
			// Another sweep got there first.
			continue
		}

		resolved++
		logger.Info("Investment matured and paid out",
			slog.String("investment_id", investment.InvestmentID),
			slog.String("principal", investment.Principal.String()),
			slog.String("profit", profit.Amount.String()),
		)
	}

	return resolved, nil
}
