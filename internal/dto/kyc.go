package dto

import (
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
)

// SubmitKYCRequest defines the data needed to create or update a KYC profile.
type SubmitKYCRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required"`
	Zip          string `json:"zip"`
	State        string `json:"state" binding:"required"`
	Country      string `json:"country" binding:"required"`
	BaseCurrency string `json:"baseCurrency" binding:"required,len=3"`
}

// KYCResponse defines the data returned for a KYC profile.
type KYCResponse struct {
	KYCID        string `json:"kycID"`
	UserID       string `json:"userID"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Zip          string `json:"zip"`
	State        string `json:"state"`
	Country      string `json:"country"`
	BaseCurrency string `json:"baseCurrency"`
}

// ToKYCResponse converts a domain.UserKYC to KYCResponse DTO
func ToKYCResponse(kyc *domain.UserKYC) KYCResponse {
	return KYCResponse{
		KYCID:        kyc.KYCID,
		UserID:       kyc.UserID,
		FirstName:    kyc.FirstName,
		LastName:     kyc.LastName,
		PhoneNumber:  kyc.PhoneNumber,
		Address:      kyc.Address,
		City:         kyc.City,
		Zip:          kyc.Zip,
		State:        kyc.State,
		Country:      kyc.Country,
		BaseCurrency: kyc.BaseCurrency,
	}
}
