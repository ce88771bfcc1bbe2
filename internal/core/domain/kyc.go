package domain

// UserKYC holds identity-verification details collected about a user.
// One record per user; referenced by user_id.
type UserKYC struct {
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
	AuditFields
}
