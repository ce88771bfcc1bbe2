package mapping

import (
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/models"
)

// ToModelUserKYC converts a domain UserKYC to a model UserKYC
func ToModelUserKYC(d domain.UserKYC) models.UserKYC {
	return models.UserKYC{
		KYCID:        d.KYCID,
		UserID:       d.UserID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		PhoneNumber:  d.PhoneNumber,
		Address:      d.Address,
		City:         d.City,
		Zip:          d.Zip,
		State:        d.State,
		Country:      d.Country,
		BaseCurrency: d.BaseCurrency,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUserKYC converts a model UserKYC to a domain UserKYC
func ToDomainUserKYC(m models.UserKYC) domain.UserKYC {
	return domain.UserKYC{
		KYCID:        m.KYCID,
		UserID:       m.UserID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		PhoneNumber:  m.PhoneNumber,
		Address:      m.Address,
		City:         m.City,
		Zip:          m.Zip,
		State:        m.State,
		Country:      m.Country,
		BaseCurrency: m.BaseCurrency,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
