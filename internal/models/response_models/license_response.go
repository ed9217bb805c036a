package response_models

import "time"

type LicenseValidationResponse struct {
	IsValid    bool       `json:"isValid"`
	Features   []string   `json:"features"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	// Token is presented as a bearer credential on feature-gated
	// endpoints. Empty when the key is invalid.
	Token string `json:"token,omitempty"`
}

type LicenseKeyResponse struct {
	ID         string     `json:"id"`
	Key        string     `json:"key"`
	IsActive   bool       `json:"isActive"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	Features   []string   `json:"features"`
}
