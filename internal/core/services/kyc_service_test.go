package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockKYCRepository is a mock type for the KYCRepositoryFacade interface
type MockKYCRepository struct {
	mock.Mock
}

func (m *MockKYCRepository) SaveKYC(ctx context.Context, kyc domain.UserKYC) error {
	args := m.Called(ctx, kyc)
	return args.Error(0)
}

func (m *MockKYCRepository) UpdateKYC(ctx context.Context, kyc domain.UserKYC) error {
	args := m.Called(ctx, kyc)
	return args.Error(0)
}

func (m *MockKYCRepository) FindKYCByUserID(ctx context.Context, userID string) (*domain.UserKYC, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserKYC), args.Error(1)
}

var _ portsrepo.KYCRepositoryFacade = (*MockKYCRepository)(nil)

type KYCServiceTestSuite struct {
	suite.Suite
	mockRepo *MockKYCRepository
	service  portssvc.KYCSvcFacade
}

func (suite *KYCServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockKYCRepository)
	suite.service = services.NewKYCService(suite.mockRepo)
}

func submitKYCRequest() dto.SubmitKYCRequest {
	return dto.SubmitKYCRequest{
		FirstName:    "  Ada ",
		LastName:     "Obi",
		PhoneNumber:  "+2348012345678",
		Address:      "12 Marina Road",
		City:         "Lagos",
		Zip:          "101241",
		State:        "Lagos",
		Country:      "Nigeria",
		BaseCurrency: "ngn",
	}
}

func (suite *KYCServiceTestSuite) TestSubmitKYC_CreatesProfile() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindKYCByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveKYC", ctx, mock.MatchedBy(func(kyc domain.UserKYC) bool {
		return kyc.UserID == userID &&
			kyc.KYCID != "" &&
			kyc.FirstName == "Ada" &&
			kyc.BaseCurrency == "NGN"
	})).Return(nil).Once()

	kyc, err := suite.service.SubmitKYC(ctx, userID, submitKYCRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(kyc)
	suite.NotEmpty(kyc.KYCID)
	suite.Equal("Ada", kyc.FirstName)
	suite.Equal("NGN", kyc.BaseCurrency)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateKYC")
}

func (suite *KYCServiceTestSuite) TestSubmitKYC_ReplacesExistingProfile() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.UserKYC{
		KYCID:  uuid.NewString(),
		UserID: userID,
		City:   "Abuja",
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().Add(-48 * time.Hour),
			CreatedBy: userID,
		},
	}

	suite.mockRepo.On("FindKYCByUserID", ctx, userID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateKYC", ctx, mock.MatchedBy(func(kyc domain.UserKYC) bool {
		// Identity and creation audit survive a resubmission.
		return kyc.KYCID == existing.KYCID &&
			kyc.CreatedAt.Equal(existing.CreatedAt) &&
			kyc.City == "Lagos"
	})).Return(nil).Once()

	kyc, err := suite.service.SubmitKYC(ctx, userID, submitKYCRequest())

	suite.Require().NoError(err)
	suite.Equal(existing.KYCID, kyc.KYCID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveKYC")
}

func (suite *KYCServiceTestSuite) TestSubmitKYC_LookupError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindKYCByUserID", ctx, userID).Return(nil, context.DeadlineExceeded).Once()

	kyc, err := suite.service.SubmitKYC(ctx, userID, submitKYCRequest())

	suite.Require().Error(err)
	suite.Nil(kyc)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveKYC")
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateKYC")
}

func (suite *KYCServiceTestSuite) TestGetKYC() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.UserKYC{KYCID: uuid.NewString(), UserID: userID}

	suite.mockRepo.On("FindKYCByUserID", ctx, userID).Return(stored, nil).Once()

	kyc, err := suite.service.GetKYC(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(stored.KYCID, kyc.KYCID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *KYCServiceTestSuite) TestGetKYC_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindKYCByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	kyc, err := suite.service.GetKYC(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(kyc)
}

func TestKYCServiceTestSuite(t *testing.T) {
	suite.Run(t, new(KYCServiceTestSuite))
}
