package pgsql

import (
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	kycRepo := newPgxKYCRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:      userRepo,
		KYCRepo:       kycRepo,
		LedgerRepo:    ledgerRepo,
		ReportingRepo: reportingRepo,
	}
}
