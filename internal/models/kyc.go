package models

// UserKYC is the persistence shape of a KYC profile.
type UserKYC struct {
	KYCID        string `db:"kyc_id"`
	UserID       string `db:"user_id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	PhoneNumber  string `db:"phone_number"`
	Address      string `db:"address"`
	City         string `db:"city"`
	Zip          string `db:"zip"`
	State        string `db:"state"`
	Country      string `db:"country"`
	BaseCurrency string `db:"base_currency"`
	AuditFields
}
