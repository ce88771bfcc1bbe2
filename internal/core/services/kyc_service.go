package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"
	"github.com/google/uuid"
)

type kycService struct {
	kycRepo portsrepo.KYCRepositoryFacade
}

// NewKYCService creates a new instance of kycService.
func NewKYCService(kycRepo portsrepo.KYCRepositoryFacade) portssvc.KYCSvcFacade {
	return &kycService{kycRepo: kycRepo}
}

var _ portssvc.KYCSvcFacade = (*kycService)(nil)

// SubmitKYC creates the KYC profile on first submission and replaces it on
// resubmission. The profile is keyed by user, one record per user.
func (s *kycService) SubmitKYC(ctx context.Context, userID string, req dto.SubmitKYCRequest) (*domain.UserKYC, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	kyc := domain.UserKYC{
		UserID:       userID,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		Address:      strings.TrimSpace(req.Address),
		City:         strings.TrimSpace(req.City),
		Zip:          strings.TrimSpace(req.Zip),
		State:        strings.TrimSpace(req.State),
		Country:      strings.TrimSpace(req.Country),
		BaseCurrency: strings.ToUpper(strings.TrimSpace(req.BaseCurrency)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	existing, err := s.kycRepo.FindKYCByUserID(ctx, userID)
	switch {
	case err == nil:
		kyc.KYCID = existing.KYCID
		kyc.CreatedAt = existing.CreatedAt
		kyc.CreatedBy = existing.CreatedBy
		if err := s.kycRepo.UpdateKYC(ctx, kyc); err != nil {
			return nil, fmt.Errorf("failed to update KYC for user %s: %w", userID, err)
		}
		logger.Info("KYC profile updated", slog.String("kyc_id", kyc.KYCID))
	case errors.Is(err, apperrors.ErrNotFound):
		kyc.KYCID = uuid.NewString()
		if err := s.kycRepo.SaveKYC(ctx, kyc); err != nil {
			return nil, fmt.Errorf("failed to save KYC for user %s: %w", userID, err)
		}
		logger.Info("KYC profile created", slog.String("kyc_id", kyc.KYCID))
	default:
		return nil, fmt.Errorf("failed to look up KYC for user %s: %w", userID, err)
	}

	return &kyc, nil
}

func (s *kycService) GetKYC(ctx context.Context, userID string) (*domain.UserKYC, error) {
	return s.kycRepo.FindKYCByUserID(ctx, userID)
}
