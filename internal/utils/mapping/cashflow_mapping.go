package mapping

import (
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/models"
)

// ToDomainCashFlow converts a model CashFlow to a domain CashFlow
func ToDomainCashFlow(m models.CashFlow) domain.CashFlow {
	return domain.CashFlow{
		UserID:         m.UserID,
		AccountBalance: m.AccountBalance,
		LastUpdatedAt:  m.LastUpdatedAt,
		LastUpdatedBy:  m.LastUpdatedBy,
	}
}

// ToModelDeposit converts a domain Deposit to a model Deposit
func ToModelDeposit(d domain.Deposit) models.Deposit {
	return models.Deposit{
		DepositID: d.DepositID,
		UserID:    d.UserID,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainDeposit converts a model Deposit to a domain Deposit
func ToDomainDeposit(m models.Deposit) domain.Deposit {
	return domain.Deposit{
		DepositID: m.DepositID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainDepositSlice converts a slice of model Deposits to domain Deposits
func ToDomainDepositSlice(ms []models.Deposit) []domain.Deposit {
	ds := make([]domain.Deposit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeposit(m)
	}
	return ds
}

// ToModelWithdrawal converts a domain Withdrawal to a model Withdrawal
func ToModelWithdrawal(d domain.Withdrawal) models.Withdrawal {
	return models.Withdrawal{
		WithdrawalID: d.WithdrawalID,
		UserID:       d.UserID,
		Amount:       d.Amount,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainWithdrawal converts a model Withdrawal to a domain Withdrawal
func ToDomainWithdrawal(m models.Withdrawal) domain.Withdrawal {
	return domain.Withdrawal{
		WithdrawalID: m.WithdrawalID,
		UserID:       m.UserID,
		Amount:       m.Amount,
		Status:       domain.WithdrawalStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToDomainWithdrawalSlice converts model Withdrawals to domain Withdrawals
func ToDomainWithdrawalSlice(ms []models.Withdrawal) []domain.Withdrawal {
	ds := make([]domain.Withdrawal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWithdrawal(m)
	}
	return ds
}

// ToModelWithdrawalRequest converts a domain WithdrawalRequest to its model
func ToModelWithdrawalRequest(d domain.WithdrawalRequest) models.WithdrawalRequest {
	return models.WithdrawalRequest{
		RequestID:        d.RequestID,
		WithdrawalID:     d.WithdrawalID,
		UserID:           d.UserID,
		Amount:           d.Amount,
		Status:           string(d.Status),
		GatewayReference: nullString(d.GatewayReference),
		DecidedBy:        nullString(d.DecidedBy),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// ToDomainWithdrawalRequest converts a model WithdrawalRequest to its domain form
func ToDomainWithdrawalRequest(m models.WithdrawalRequest) domain.WithdrawalRequest {
	return domain.WithdrawalRequest{
		RequestID:        m.RequestID,
		WithdrawalID:     m.WithdrawalID,
		UserID:           m.UserID,
		Amount:           m.Amount,
		Status:           domain.WithdrawalStatus(m.Status),
		GatewayReference: fromNullString(m.GatewayReference),
		DecidedBy:        fromNullString(m.DecidedBy),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToDomainWithdrawalRequestSlice converts model WithdrawalRequests to domain form
func ToDomainWithdrawalRequestSlice(ms []models.WithdrawalRequest) []domain.WithdrawalRequest {
	ds := make([]domain.WithdrawalRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWithdrawalRequest(m)
	}
	return ds
}

// ToModelInvestment converts a domain Investment to a model Investment
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID: d.InvestmentID,
		UserID:       d.UserID,
		Principal:    d.Principal,
		DurationDays: d.DurationDays,
		InterestRate: d.InterestRate,
		Status:       string(d.Status),
		OpenedAt:     d.OpenedAt,
		MaturityAt:   d.MaturityAt,
		CompletedAt:  nullTime(d.CompletedAt),
	}
}

// ToDomainInvestment converts a model Investment to a domain Investment
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID: m.InvestmentID,
		UserID:       m.UserID,
		Principal:    m.Principal,
		DurationDays: m.DurationDays,
		InterestRate: m.InterestRate,
		Status:       domain.InvestmentStatus(m.Status),
		OpenedAt:     m.OpenedAt,
		MaturityAt:   m.MaturityAt,
		CompletedAt:  fromNullTime(m.CompletedAt),
	}
}

// ToDomainInvestmentSlice converts model Investments to domain Investments
func ToDomainInvestmentSlice(ms []models.Investment) []domain.Investment {
	ds := make([]domain.Investment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestment(m)
	}
	return ds
}

// ToModelProfit converts a domain Profit to a model Profit
func ToModelProfit(d domain.Profit) models.Profit {
	return models.Profit{
		ProfitID:     d.ProfitID,
		InvestmentID: d.InvestmentID,
		UserID:       d.UserID,
		Amount:       d.Amount,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainProfit converts a model Profit to a domain Profit
func ToDomainProfit(m models.Profit) domain.Profit {
	return domain.Profit{
		ProfitID:     m.ProfitID,
		InvestmentID: m.InvestmentID,
		UserID:       m.UserID,
		Amount:       m.Amount,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainProfitSlice converts model Profits to domain Profits
func ToDomainProfitSlice(ms []models.Profit) []domain.Profit {
	ds := make([]domain.Profit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfit(m)
	}
	return ds
}
