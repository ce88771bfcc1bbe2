package repositories

import (
	"context"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
)

// KYCRepositoryFacade defines persistence operations for KYC profiles.
type KYCRepositoryFacade interface {
	// SaveKYC persists a new KYC profile. A second profile for the same user
	// fails with ErrDuplicate.
	SaveKYC(ctx context.Context, kyc domain.UserKYC) error

	// UpdateKYC updates an existing KYC profile.
	UpdateKYC(ctx context.Context, kyc domain.UserKYC) error

	// FindKYCByUserID retrieves the KYC profile for a user.
	FindKYCByUserID(ctx context.Context, userID string) (*domain.UserKYC, error)
}
