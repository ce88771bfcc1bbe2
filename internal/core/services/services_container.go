package services

import (
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/gateways"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories and outbound
// gateways. Handlers receive this container and never touch repositories
// directly.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gateway gateways.PaymentGateway, mailer gateways.Mailer) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo, mailer)

	return &portssvc.ServiceContainer{
		User:        userSvc,
		Token:       NewTokenService(cfg, userSvc),
		GoogleOAuth: NewGoogleOAuthHandlerService(cfg),
		KYC:         NewKYCService(repos.KYCRepo),
		Ledger:      NewLedgerService(repos.LedgerRepo, cfg.StorageTimeout),
		Deposit:     NewDepositService(repos.LedgerRepo, cfg.MinDepositAmount, cfg.StorageTimeout),
		Withdrawal:  NewWithdrawalService(repos.LedgerRepo, cfg.MinWithdrawAmount, cfg.StorageTimeout),
		Investment:  NewInvestmentService(repos.LedgerRepo, cfg.StorageTimeout),
		Maturity:    NewMaturityService(repos.LedgerRepo, cfg.SweepBatchSize, cfg.StorageTimeout),
		Reporting:   NewReportingService(repos.ReportingRepo, gateway, cfg.StorageTimeout),
	}
}
