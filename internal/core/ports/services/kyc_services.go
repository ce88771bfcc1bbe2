package services

import (
	"context"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
)

// KYCSvcFacade defines operations for managing KYC profiles.
type KYCSvcFacade interface {
	// SubmitKYC creates or updates the KYC profile for a user.
	SubmitKYC(ctx context.Context, userID string, req dto.SubmitKYCRequest) (*domain.UserKYC, error)

	// GetKYC retrieves the KYC profile for a user.
	GetKYC(ctx context.Context, userID string) (*domain.UserKYC, error)
}
